// Package linear provides a line-oriented renderer for one-shot commands.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/ui/output"
	"go.trai.ch/todo/internal/ui/style"
)

// Renderer prints task views and command results as plain lines.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
// A nil writer selects os.Stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		out:    w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// RenderView prints one line per visible task followed by the items-left footer.
func (r *Renderer) RenderView(v domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(v.Visible) == 0 {
		r.printf("%s\n", r.faint(emptyMessage(v.Filter)))
	}
	for _, t := range v.Visible {
		r.printf("%s\n", r.taskLine(t))
	}
	r.printf("\n%s\n", r.faint(v.ItemsLeft()))
}

// RenderTask prints the outcome of a single-task command, e.g. "✓ added 1a2b3c4d buy milk".
func (r *Renderer) RenderTask(verb string, t domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s %s %s %s\n", r.check(), verb, r.faint(t.ShortID()), t.Name)
}

// RenderCleared prints how many completed tasks were removed.
func (r *Renderer) RenderCleared(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s cleared %d completed task(s)\n", r.check(), n)
}

// RenderInit prints the data file location and whether it was created.
func (r *Renderer) RenderInit(path string, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if created {
		r.printf("%s created %s\n", r.check(), path)
		return
	}
	r.printf("%s using existing %s\n", r.check(), path)
}

func (r *Renderer) taskLine(t domain.Task) string {
	box := style.Box(t.Completed)
	name := t.Name
	if t.Completed {
		box = r.output.String(box).Foreground(r.output.Color(string(style.Green))).String()
		name = r.faint(name)
	}
	return fmt.Sprintf("%s %s  %s", box, r.faint(t.ShortID()), name)
}

func (r *Renderer) check() string {
	return r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
}

func (r *Renderer) faint(s string) string {
	return r.output.String(s).Faint().String()
}

// printf must be called with r.mu held.
func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func emptyMessage(f domain.Filter) string {
	switch f {
	case domain.FilterActive:
		return "No active tasks."
	case domain.FilterCompleted:
		return "No completed tasks."
	default:
		return "No tasks."
	}
}
