package hooks

const (
	// ConfigDefaultsFilter is the extension point for configuration defaults.
	ConfigDefaultsFilter = "CONFIG_DEFAULTS"
	// EnvPatchesFilter is the extension point for environment-file patches.
	EnvPatchesFilter = "ENV_PATCHES"
)

// ConfigDefault pairs a configuration key with its default value.
type ConfigDefault struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// EnvPatch is a named block of KEY=VALUE text merged into a generated
// environment file.
type EnvPatch struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Registrar is the narrow surface plugins contribute through.
type Registrar interface {
	AddConfigDefault(key string, value any)
	AddEnvPatch(name, text string)
}

// Registry owns the filters plugins contribute to.
type Registry struct {
	ConfigDefaults *Filter[ConfigDefault]
	EnvPatches     *Filter[EnvPatch]
}

// NewRegistry returns a registry with empty filters.
func NewRegistry() *Registry {
	return &Registry{
		ConfigDefaults: NewFilter[ConfigDefault](ConfigDefaultsFilter),
		EnvPatches:     NewFilter[EnvPatch](EnvPatchesFilter),
	}
}

// AddConfigDefault appends a configuration default.
func (r *Registry) AddConfigDefault(key string, value any) {
	r.ConfigDefaults.AddItem(ConfigDefault{Key: key, Value: value})
}

// AddEnvPatch appends a named environment patch.
func (r *Registry) AddEnvPatch(name, text string) {
	r.EnvPatches.AddItem(EnvPatch{Name: name, Text: text})
}

// Reset clears every filter.
func (r *Registry) Reset() {
	r.ConfigDefaults.Clear()
	r.EnvPatches.Clear()
}
