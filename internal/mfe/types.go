package mfe

// App describes a micro-frontend by its source repository, branch and port.
type App struct {
	Repository string `json:"repository" yaml:"repository"`
	Version    string `json:"version" yaml:"version"`
	Port       int    `json:"port" yaml:"port"`
}

// Apps maps an MFE name to its descriptor.
type Apps map[string]App

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Contributions holds what Register handed to the registrar.
type Contributions struct {
	ConfigKey   string
	ConfigValue Apps
	PatchName   string
	PatchText   string
}
