// Package build holds build-time information about the gemnix binary.
package build

// Version is the gemnix release version.
// It defaults to "dev" and is set with -ldflags "-X go.trai.ch/gemnix/internal/build.Version=...".
var Version = "dev"
