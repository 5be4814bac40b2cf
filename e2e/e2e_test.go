//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var gemnixBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "gemnix-e2e-*")
	if err != nil {
		panic(err)
	}

	gemnixBinary = filepath.Join(tmpDir, "gemnix")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", gemnixBinary, "./cmd/gemnix")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build gemnix binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	// Scripts shadow the nix helpers with fakes placed in $WORK/bin.
	binDir := filepath.Dir(gemnixBinary)
	fakeDir := filepath.Join(env.WorkDir, "bin")
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", fakeDir+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
