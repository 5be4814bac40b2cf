package config

// File is the structure of .gemnix.yaml and .gemnix.toml.
// Unset fields keep their defaults, so every scalar is a pointer.
type File struct {
	Gemfile        *string  `yaml:"gemfile" toml:"gemfile"`
	Lockfile       *string  `yaml:"lockfile" toml:"lockfile"`
	Gemset         *string  `yaml:"gemset" toml:"gemset"`
	Platform       *string  `yaml:"platform" toml:"platform"`
	Platforms      []string `yaml:"platforms" toml:"platforms"`
	CacheDir       *string  `yaml:"cacheDir" toml:"cacheDir"`
	LocalCaches    []string `yaml:"localCaches" toml:"localCaches"`
	CommandTimeout *string  `yaml:"commandTimeout" toml:"commandTimeout"`
	HTTPTimeout    *string  `yaml:"httpTimeout" toml:"httpTimeout"`
	Jobs           *int     `yaml:"jobs" toml:"jobs"`
	Quiet          *bool    `yaml:"quiet" toml:"quiet"`
	LogJSON        *bool    `yaml:"logJSON" toml:"logJSON"`
}
