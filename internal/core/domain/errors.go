package domain

import "go.trai.ch/zerr"

var (
	// ErrResolution is returned when no hash can be obtained for a package from any source.
	ErrResolution = zerr.New("couldn't fetch hash")

	// ErrGraphIntegrity is returned when a lockfile entry depends on a gem that is declared nowhere.
	ErrGraphIntegrity = zerr.New("gem dependency not specified in lockfile")

	// ErrAuthentication is returned when a remote answers 401 or 403 to a download.
	ErrAuthentication = zerr.New("authentication required")

	// ErrExternalTool is returned when an external command exits unsuccessfully.
	ErrExternalTool = zerr.New("command execution failed")

	// ErrUnknownSource is returned when a package carries a source kind gemnix cannot convert.
	ErrUnknownSource = zerr.New("unknown bundler source")

	// ErrPlatformNotLocked is returned when the target platform is missing from the lockfile PLATFORMS.
	ErrPlatformNotLocked = zerr.New("platform not listed in lockfile")

	// ErrLockfileReadFailed is returned when the lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParse is returned when the lockfile contains a line that cannot be parsed.
	ErrLockfileParse = zerr.New("failed to parse lockfile")

	// ErrManifestLoadFailed is returned when the Gemfile dependencies cannot be evaluated.
	ErrManifestLoadFailed = zerr.New("failed to load Gemfile dependencies")

	// ErrGemsetLoadFailed is returned when an existing gemset cannot be evaluated.
	ErrGemsetLoadFailed = zerr.New("failed to load existing gemset")

	// ErrGemsetPathInvalid is returned when a per-platform gemset path cannot be derived.
	ErrGemsetPathInvalid = zerr.New("gemset path must end in .nix")

	// ErrManifestWriteFailed is returned when the gemset cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write gemset")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheCreateFailed is returned when the download cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create download cache directory")

	// ErrCacheWriteFailed is returned when a downloaded artifact cannot be stored.
	ErrCacheWriteFailed = zerr.New("failed to write download cache entry")

	// ErrDownloadFailed is returned when an artifact download fails.
	ErrDownloadFailed = zerr.New("failed to download artifact")

	// ErrDownloadEmpty is returned when a download finished without producing any bytes.
	ErrDownloadEmpty = zerr.New("downloaded artifact is empty")

	// ErrIndexRequestFailed is returned when a remote compact index cannot be queried.
	ErrIndexRequestFailed = zerr.New("failed to query remote index")

	// ErrVersionNotPublished is returned when a remote index does not list the requested version.
	ErrVersionNotPublished = zerr.New("version not published on remote")

	// ErrInvalidJobs is returned when the configured job count is below one.
	ErrInvalidJobs = zerr.New("jobs must be at least 1")
)
