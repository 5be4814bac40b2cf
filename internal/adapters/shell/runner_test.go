package shell_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemnix/internal/adapters/shell"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRunner_Run_CapturesStdout(t *testing.T) {
	runner := shell.NewRunner()

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello; echo ignored >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestRunner_Run_EnvOverrideIsScoped(t *testing.T) {
	runner := shell.NewRunner()
	home := os.Getenv("HOME")

	out, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf %s \"$HOME\""},
		Env:  map[string]string{"HOME": "/homeless-shelter"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/homeless-shelter", string(out))
	assert.Equal(t, home, os.Getenv("HOME"), "the parent environment must not change")
}

func TestRunner_Run_FailureCarriesDiagnostics(t *testing.T) {
	runner := shell.NewRunner()

	_, err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo broken >&2; exit 3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command execution failed")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "sh -c echo broken >&2; exit 3", meta["command"])
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "broken", meta["output"])
}

func TestRunner_Run_Timeout(t *testing.T) {
	runner := shell.NewRunner()

	start := time.Now()
	_, err := runner.Run(context.Background(), domain.Command{
		Name:    "sleep",
		Args:    []string{"10"},
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "50ms", zErr.Metadata()["timeout"])
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	runner := shell.NewRunnerWithEnviron([]string{"PATH=/nonexistent"})

	_, err := runner.Run(context.Background(), domain.Command{Name: "definitely-not-a-tool"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "command execution failed"))
}

func TestResolveEnvironment(t *testing.T) {
	got := shell.ResolveEnvironment(
		[]string{"PATH=/bin", "HOME=/root", "MALFORMED"},
		map[string]string{"HOME": "/homeless-shelter"},
	)
	assert.Equal(t, []string{"HOME=/homeless-shelter", "PATH=/bin"}, got)
}
