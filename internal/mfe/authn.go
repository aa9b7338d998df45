package mfe

import (
	"fmt"

	"github.com/ihworker/custom-authn-mfe/internal/hooks"
)

const (
	// ConfigKey is the configuration setting holding all MFE descriptors.
	ConfigKey = "MFE_APPS"
	// AppName keys the authn descriptor inside MFE_APPS.
	AppName = "authn"
	// UsernameEnv names the variable selecting the GitHub fork owner.
	UsernameEnv = "GITHUB_USERNAME"
	// DefaultUsername is used when UsernameEnv is absent or empty.
	DefaultUsername = "ihworker"
	// Version is the branch checked out for the authn fork.
	Version = "custom-modifications"
	// Port serves the authn MFE in development.
	Port = 1999
	// PatchName identifies the environment patch.
	PatchName = "custom-authn-env"
	// PluginName is the name the plugin is discovered under.
	PluginName = "custom-authn-mfe"

	repositoryTemplate = "https://github.com/%s/frontend-app-authn.git"
)

// PatchText is appended to the generated environment file.
const PatchText = `
# Custom MFE Environment Variables for Task Assignment
AUTHN_CUSTOM_BRANDING=true
PLATFORM_NAME="Custom Open edX Platform - Task Assignment"
`

// Username returns the fork owner. An unset variable and a variable set to
// the empty string are checked separately; both fall back to DefaultUsername.
func Username(lookup LookupFunc) string {
	if lookup == nil {
		return DefaultUsername
	}
	value, ok := lookup(UsernameEnv)
	if !ok {
		return DefaultUsername
	}
	if value == "" {
		return DefaultUsername
	}
	return value
}

// RepositoryURL returns the authn fork location for the given owner.
func RepositoryURL(username string) string {
	return fmt.Sprintf(repositoryTemplate, username)
}

// ConfigDefault builds the MFE_APPS default.
func ConfigDefault(lookup LookupFunc) (string, Apps) {
	return ConfigKey, Apps{
		AppName: {
			Repository: RepositoryURL(Username(lookup)),
			Version:    Version,
			Port:       Port,
		},
	}
}

// EnvPatch returns the environment patch.
func EnvPatch() (string, string) {
	return PatchName, PatchText
}

// Register contributes the configuration default and then the environment
// patch to reg, and returns both.
func Register(reg hooks.Registrar, lookup LookupFunc) Contributions {
	key, apps := ConfigDefault(lookup)
	reg.AddConfigDefault(key, apps)

	name, text := EnvPatch()
	reg.AddEnvPatch(name, text)

	return Contributions{
		ConfigKey:   key,
		ConfigValue: apps,
		PatchName:   name,
		PatchText:   text,
	}
}

// Plugin exposes Register under PluginName for discovery.
type Plugin struct{}

// Name returns PluginName.
func (Plugin) Name() string {
	return PluginName
}

// Register delegates to the package-level Register.
func (Plugin) Register(reg hooks.Registrar, lookup LookupFunc) {
	Register(reg, lookup)
}
