package bundler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CredentialStore implements ports.CredentialStore over Bundler settings.
// Local settings win over the environment, which wins over global settings.
type CredentialStore struct {
	logger    ports.Logger
	local     string
	global    string
	getenv    func(string) string
	mu        sync.Mutex
	loaded    bool
	localSet  map[string]string
	globalSet map[string]string
}

// NewCredentialStore reads settings from <projectDir>/.bundle/config and <home>/.bundle/config.
// BUNDLE_APP_CONFIG and BUNDLE_USER_CONFIG relocate them as they do for Bundler.
func NewCredentialStore(logger ports.Logger, projectDir, home string) *CredentialStore {
	return newCredentialStore(logger, projectDir, home, os.Getenv)
}

func newCredentialStore(logger ports.Logger, projectDir, home string, getenv func(string) string) *CredentialStore {
	var global string
	if home != "" {
		global = filepath.Join(home, ".bundle", "config")
	}
	if path := getenv("BUNDLE_USER_CONFIG"); path != "" {
		global = path
	}
	return &CredentialStore{logger: logger, local: localSettingsPath(projectDir, getenv), global: global, getenv: getenv}
}

func localSettingsPath(projectDir string, getenv func(string) string) string {
	if dir := getenv("BUNDLE_APP_CONFIG"); dir != "" {
		return filepath.Join(dir, "config")
	}
	return filepath.Join(projectDir, ".bundle", "config")
}

// SetProjectDir points local settings at <dir>/.bundle/config, the directory of the Gemfile in use.
// Settings are read again on the next lookup.
func (s *CredentialStore) SetProjectDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := localSettingsPath(dir, s.getenv)
	if local == s.local {
		return
	}
	s.local = local
	s.loaded = false
}

// Lookup returns the credentials configured for host as "user:password".
func (s *CredentialStore) Lookup(host string) (string, string, bool) {
	s.mu.Lock()
	if !s.loaded {
		s.load()
		s.loaded = true
	}
	localSet, globalSet := s.localSet, s.globalSet
	s.mu.Unlock()

	key := SettingKey(host)
	value, ok := localSet[key]
	if !ok {
		value = s.getenv(key)
		ok = value != ""
	}
	if !ok {
		value, ok = globalSet[key]
	}
	if !ok || value == "" {
		return "", "", false
	}

	user, password, _ := strings.Cut(value, ":")
	return user, password, true
}

func (s *CredentialStore) load() {
	s.localSet = s.readSettings(s.local)
	s.globalSet = s.readSettings(s.global)
}

func (s *CredentialStore) readSettings(path string) map[string]string {
	if path == "" {
		return map[string]string{}
	}
	settings, err := ReadSettings(path)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("ignoring Bundler settings in %s", path))
		s.logger.Error(err)
		return map[string]string{}
	}
	return settings
}

// ReadSettings parses a Bundler config file. A missing file has no settings.
func ReadSettings(path string) (map[string]string, error) {
	// #nosec G304 -- Bundler settings live at well-known paths
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		settings[key] = fmt.Sprint(value)
	}
	return settings, nil
}

// SettingKey returns the Bundler setting key for a host, e.g. BUNDLE_GEMS__EXAMPLE___CORP__COM.
func SettingKey(host string) string {
	key := strings.ReplaceAll(host, ".", "__")
	key = strings.ReplaceAll(key, "-", "___")
	return "BUNDLE_" + strings.ToUpper(key)
}
