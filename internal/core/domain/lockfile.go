package domain

// Lockfile is the parsed content of a Gemfile.lock.
type Lockfile struct {
	// Path is where the lockfile was read from.
	Path string

	// Specs lists every locked gem variant in lockfile order.
	Specs []PackageSpec

	// Platforms are the platforms listed under PLATFORMS.
	Platforms []Platform

	// Dependencies are the top-level names listed under DEPENDENCIES.
	Dependencies []string

	// BundlerVersion is the version recorded under BUNDLED WITH, if any.
	BundlerVersion string

	// Fingerprint is a content hash of the lockfile bytes.
	Fingerprint string
}

// HasPlatform reports whether p is listed under PLATFORMS.
func (l *Lockfile) HasPlatform(p Platform) bool {
	for _, locked := range l.Platforms {
		if locked == p {
			return true
		}
	}
	return false
}
