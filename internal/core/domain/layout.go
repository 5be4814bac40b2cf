package domain

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// AppName names the cache directory and config files.
	AppName = "gemnix"

	// YAMLConfigFileName is the YAML form of the project configuration file.
	YAMLConfigFileName = ".gemnix.yaml"

	// TOMLConfigFileName is the TOML form of the project configuration file.
	TOMLConfigFileName = ".gemnix.toml"

	// VendorCacheDir is where `bundle package` stores .gem files, relative to the lockfile.
	VendorCacheDir = "vendor/cache"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns $XDG_CACHE_HOME/gemnix, falling back to $HOME/.cache/gemnix.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	return filepath.Join(os.Getenv("HOME"), ".cache", AppName)
}

// PlatformGemsetPath turns "gemset.nix" into "gemset.<platform>.nix". The generic platform keeps the path.
func PlatformGemsetPath(path, platform string) (string, error) {
	if platform == "" || platform == GenericPlatformName {
		return path, nil
	}
	base, ok := strings.CutSuffix(path, ".nix")
	if !ok {
		return "", zerr.With(zerr.Wrap(ErrGemsetPathInvalid, "couldn't add platform to path"), "path", path)
	}
	return base + "." + platform + ".nix", nil
}
