package bundler

import "go.trai.ch/gemnix/internal/core/ports"

// NewCredentialStoreWithEnv creates a CredentialStore reading the environment from env.
func NewCredentialStoreWithEnv(logger ports.Logger, projectDir, home string, env map[string]string) *CredentialStore {
	return newCredentialStore(logger, projectDir, home, func(key string) string {
		return env[key]
	})
}
