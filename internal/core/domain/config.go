package domain

import "time"

const (
	// DefaultGemfile is the Gemfile read when none is configured.
	DefaultGemfile = "Gemfile"
	// DefaultLockfile is the lockfile read when none is configured.
	DefaultLockfile = "Gemfile.lock"
	// DefaultGemset is the gemset written when none is configured.
	DefaultGemset = "gemset.nix"
	// DefaultCommandTimeout bounds each nix helper invocation.
	DefaultCommandTimeout = 10 * time.Minute
	// DefaultHTTPTimeout bounds each remote request.
	DefaultHTTPTimeout = 5 * time.Minute
	// DefaultJobs is the number of platforms converted concurrently.
	DefaultJobs = 1
)

// Config is the fully merged run configuration.
type Config struct {
	// Gemfile is the path of the Gemfile whose dependencies seed groups and platforms.
	Gemfile string

	// Lockfile is the path of the Gemfile.lock to convert.
	Lockfile string

	// Gemset is the output path. With several platforms it is suffixed per platform.
	Gemset string

	// Platform is the single target platform. Empty means the generic ruby platform.
	Platform string

	// Platforms lists several target platforms converted in one run.
	Platforms []string

	// CacheDir holds downloaded artifacts.
	CacheDir string

	// LocalCaches are extra directories searched for already packaged .gem files.
	LocalCaches []string

	// CommandTimeout bounds every external process.
	CommandTimeout time.Duration

	// HTTPTimeout bounds every remote request.
	HTTPTimeout time.Duration

	// Jobs is the number of platforms converted concurrently.
	Jobs int

	// Quiet suppresses informational output.
	Quiet bool

	// LogJSON switches log output to JSON.
	LogJSON bool
}

// DefaultConfig returns the configuration used when neither a config file nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Gemfile:        DefaultGemfile,
		Lockfile:       DefaultLockfile,
		Gemset:         DefaultGemset,
		CacheDir:       DefaultCacheDir(),
		CommandTimeout: DefaultCommandTimeout,
		HTTPTimeout:    DefaultHTTPTimeout,
		Jobs:           DefaultJobs,
	}
}

// TargetPlatforms returns the platforms to convert for, in order. No configured platform means generic.
func (c Config) TargetPlatforms() []string {
	if len(c.Platforms) > 0 {
		return c.Platforms
	}
	return []string{c.Platform}
}
