// Package config provides the configuration loader for gemnix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a configuration file.
type Format string

const (
	// FormatYAML is .gemnix.yaml.
	FormatYAML Format = "yaml"
	// FormatTOML is .gemnix.toml.
	FormatTOML Format = "toml"
)

// Loader implements ports.ConfigLoader over YAML and TOML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load merges the nearest configuration file at or above cwd over the defaults.
// Relative paths in the file are resolved against the directory holding it.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, format, found := l.findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	switch format {
	case FormatYAML:
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
	case FormatTOML:
		undecoded, err := readAndDecodeTOML(configPath, &file)
		if err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
		for _, key := range undecoded {
			l.Logger.Warn(fmt.Sprintf("unknown key %q in %s is ignored", key, configPath))
		}
	}

	if err := apply(&cfg, &file, filepath.Dir(configPath)); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, Format, bool) {
	currentDir := cwd
	for {
		yamlPath := filepath.Join(currentDir, domain.YAMLConfigFileName)
		tomlPath := filepath.Join(currentDir, domain.TOMLConfigFileName)
		_, yamlErr := os.Stat(yamlPath)
		_, tomlErr := os.Stat(tomlPath)

		switch {
		case yamlErr == nil && tomlErr == nil:
			l.Logger.Warn(fmt.Sprintf("both %s and %s found in %s, using %s",
				domain.YAMLConfigFileName, domain.TOMLConfigFileName, currentDir, domain.YAMLConfigFileName))
			return yamlPath, FormatYAML, true
		case yamlErr == nil:
			return yamlPath, FormatYAML, true
		case tomlErr == nil:
			return tomlPath, FormatTOML, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *File, root string) error {
	setPath(&cfg.Gemfile, file.Gemfile, root)
	setPath(&cfg.Lockfile, file.Lockfile, root)
	setPath(&cfg.Gemset, file.Gemset, root)
	setPath(&cfg.CacheDir, file.CacheDir, root)

	if file.Platform != nil {
		cfg.Platform = *file.Platform
	}
	if len(file.Platforms) > 0 {
		cfg.Platforms = file.Platforms
	}
	for _, dir := range file.LocalCaches {
		cfg.LocalCaches = append(cfg.LocalCaches, resolvePath(root, dir))
	}

	if err := setDuration(&cfg.CommandTimeout, file.CommandTimeout, "commandTimeout"); err != nil {
		return err
	}
	if err := setDuration(&cfg.HTTPTimeout, file.HTTPTimeout, "httpTimeout"); err != nil {
		return err
	}

	if file.Jobs != nil {
		if *file.Jobs < 1 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidJobs, domain.ErrConfigParseFailed.Error()), "jobs", *file.Jobs)
		}
		cfg.Jobs = *file.Jobs
	}
	if file.Quiet != nil {
		cfg.Quiet = *file.Quiet
	}
	if file.LogJSON != nil {
		cfg.LogJSON = *file.LogJSON
	}
	return nil
}

func setPath(dst, value *string, root string) {
	if value != nil && *value != "" {
		*dst = resolvePath(root, *value)
	}
}

func setDuration(dst *time.Duration, value *string, field string) error {
	if value == nil {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", field)
	}
	if d <= 0 {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "timeout must be positive"), "field", field)
	}
	*dst = d
	return nil
}

// resolvePath anchors relative paths at root and expands a leading "~/".
func resolvePath(root, path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// readAndDecodeTOML decodes configPath into target and returns the keys it did not recognise.
func readAndDecodeTOML[T any](configPath string, target *T) ([]string, error) {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	meta, err := toml.Decode(string(configFile), target)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	undecoded := make([]string, 0, len(meta.Undecoded()))
	for _, key := range meta.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}
