package linear_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gemnix/internal/adapters/linear"
	"go.trai.ch/zerr"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return linear.NewRenderer(&buf), &buf
}

func TestRenderer_GemLifecycle(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPlanEmit([]string{"rack", "thor"})
	assert.Equal(t, "→ converting 2 gem(s)\n", buf.String())
	buf.Reset()

	start := time.Now()
	r.OnGemStart("span1", "rack", start)
	assert.Empty(t, buf.String(), "start is silent")

	r.OnGemLog("span1", []byte("first line\n"))
	r.OnGemLog("span1", []byte("second line\n"))
	r.OnGemComplete("span1", start.Add(1500*time.Millisecond), nil)

	assert.Equal(t, "[rack] first line\n[rack] second line\n✓ rack (1.5s)\n", buf.String())
}

func TestRenderer_PartialLines(t *testing.T) {
	r, buf := newRenderer(t)

	start := time.Now()
	r.OnGemStart("span1", "rack", start)

	r.OnGemLog("span1", []byte("partial"))
	assert.NotContains(t, buf.String(), "partial")

	r.OnGemLog("span1", []byte(" line\n"))
	assert.Contains(t, buf.String(), "[rack] partial line\n")

	r.OnGemLog("span1", []byte("unflushed"))
	r.OnGemComplete("span1", start, nil)
	assert.Contains(t, buf.String(), "[rack] unflushed\n")
}

func TestRenderer_GemError(t *testing.T) {
	r, buf := newRenderer(t)

	start := time.Now()
	r.OnGemStart("span1", "nokogiri", start)
	r.OnGemComplete("span1", start, zerr.New("couldn't fetch hash"))

	assert.Equal(t, "✗ nokogiri: couldn't fetch hash\n", buf.String())
}

func TestRenderer_Quiet(t *testing.T) {
	r, buf := newRenderer(t)
	r.SetQuiet(true)

	start := time.Now()
	r.OnPlanEmit([]string{"rack"})
	r.OnGemStart("span1", "rack", start)
	r.OnGemLog("span1", []byte("noise\n"))
	r.OnGemComplete("span1", start, nil)
	assert.Empty(t, buf.String())

	r.OnGemStart("span2", "thor", start)
	r.OnGemComplete("span2", start, zerr.New("boom"))
	assert.Equal(t, "✗ thor: boom\n", buf.String(), "failures are printed even when quiet")
}

func TestRenderer_InterleavedGems(t *testing.T) {
	r, buf := newRenderer(t)

	start := time.Now()
	r.OnGemStart("span1", "rack", start)
	r.OnGemStart("span2", "thor", start)

	r.OnGemLog("span1", []byte("rack 1\n"))
	r.OnGemLog("span2", []byte("thor 1\n"))
	r.OnGemLog("span1", []byte("rack 2\n"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"[rack] rack 1", "[thor] thor 1", "[rack] rack 2"}, lines)
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnGemLog("unknown", []byte("ignored\n"))
	r.OnGemComplete("unknown", time.Now(), nil)

	assert.Empty(t, buf.String())
}

func TestRenderer_EmptyLines(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnGemStart("span1", "rack", time.Now())
	r.OnGemLog("span1", []byte("\n"))
	r.OnGemLog("span1", []byte("\r\n"))

	assert.Empty(t, buf.String())
}
