package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/gemnix/internal/ui/output"
	"go.trai.ch/gemnix/internal/ui/style"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestPaint(t *testing.T) {
	t.Run("plain without color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		o := output.New(&bytes.Buffer{})
		assert.Equal(t, "denied", output.Paint(o, "denied", style.Red))
	})

	t.Run("escape codes with color", func(t *testing.T) {
		o := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor), termenv.WithTTY(true))
		painted := output.Paint(o, "denied", style.Red)
		assert.Contains(t, painted, "denied")
		assert.NotEqual(t, "denied", painted)
	})
}

func TestNew_DefaultsToStderr(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
