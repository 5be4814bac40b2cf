// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/gemnix/internal/ui/output"
	"go.trai.ch/gemnix/internal/ui/style"
)

// Renderer implements ports.Renderer.
// It prints one line per finished gem and prefixes diagnostic output with the gem name.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu      sync.Mutex
	quiet   bool
	gems    map[string]*gemState // spanID -> gem state
	buffers map[string]*bytes.Buffer
}

type gemState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w, defaulting to stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:       w,
		output:  output.New(w),
		gems:    make(map[string]*gemState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// SetQuiet suppresses progress lines. Failures are still printed.
func (r *Renderer) SetQuiet(quiet bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quiet = quiet
}

// OnPlanEmit prints how many gems are about to be converted.
func (r *Renderer) OnPlanEmit(gems []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.quiet {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s converting %d gem(s)\n", output.Paint(r.output, style.Arrow, style.Iris), len(gems))
}

// OnGemStart records the start of a gem conversion.
func (r *Renderer) OnGemStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gems[spanID] = &gemState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)
}

// OnGemLog buffers diagnostic data and prints complete lines with the gem prefix.
func (r *Renderer) OnGemLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gem, ok := r.gems[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}
		r.printLineLocked(gem.name, line)
	}
}

// OnGemComplete flushes buffered output and prints the result line.
func (r *Renderer) OnGemComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gem, ok := r.gems[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	if err != nil {
		_, _ = fmt.Fprintf(r.w, "%s %s: %v\n", output.Paint(r.output, style.Cross, style.Red), gem.name, err)
	} else if !r.quiet {
		duration := endTime.Sub(gem.startTime).Round(time.Millisecond)
		_, _ = fmt.Fprintf(r.w, "%s %s %s\n",
			output.Paint(r.output, style.Check, style.Green),
			gem.name,
			output.Paint(r.output, fmt.Sprintf("(%v)", duration), style.Slate),
		)
	}

	delete(r.gems, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked prints any partial line left for a gem.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	gem, ok := r.gems[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(gem.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the gem name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 || r.quiet {
		return
	}

	prefix := output.Paint(r.output, fmt.Sprintf("[%s]", name), style.Slate)
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix, string(line))
}
