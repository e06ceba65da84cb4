// Package uiout renders the launcher's phase status, download
// progress, and error output, falling back to plain lines when stdout
// isn't a terminal.
package uiout

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
)

var stylePhase = lipgloss.NewStyle().Bold(true)

// Reporter tracks one run's phase/progress output. In a real terminal
// it drives a spinner; piped or redirected output falls back to one
// line per phase transition.
type Reporter struct {
	interactive bool
	spin        *spinner.Spinner
}

// New returns a Reporter appropriate for out: a spinner when out is a
// TTY, plain lines otherwise.
func New(out *os.File) *Reporter {
	interactive := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	r := &Reporter{interactive: interactive}
	if interactive {
		r.spin = spinner.New(spinner.CharSets[9], 200*time.Millisecond)
		r.spin.Prefix = " "
	}
	return r
}

// Phase announces the start of a named pipeline stage ("Resolving …",
// "Downloading N files", "Launching …").
func (r *Reporter) Phase(name string) {
	if r.interactive {
		r.spin.Stop()
		r.spin.Suffix = " " + name
		r.spin.Start()
		return
	}
	fmt.Println(stylePhase.Render(name))
}

// Done stops any in-flight spinner. Call once the pipeline finishes,
// successfully or not.
func (r *Reporter) Done() {
	if r.interactive {
		r.spin.Stop()
	}
}

// Progress adapts resolver.ProgressFunc's (done, total, label) signature
// into a human-readable status line, renderable in place of a spinner
// suffix or as a standalone line.
func (r *Reporter) Progress(done, total int, label string) {
	line := fmt.Sprintf("%s (%s / %s files)", label, humanize.Comma(int64(done)), humanize.Comma(int64(total)))
	if r.interactive {
		r.spin.Suffix = " " + line
		return
	}
	fmt.Println(gchalk.Gray(line))
}

// Bytes renders a byte count the way progress lines want it
// ("128 MB"), grounded on the same humanize dependency as Progress.
func Bytes(n int64) string {
	return humanize.Bytes(uint64(n))
}
