// Package progress reports render progress on the console and to
// registered listeners.  A Reporter can be shared by every worker in a
// render.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Listener receives the completed fraction of the total work, in [0, 1].
type Listener func(fraction float64)

// Reporter draws an ASCII progress bar, redrawing in place with a
// carriage return.  Updates are cheap to call from tile workers: redraws
// are throttled, and listeners only run when a redraw would.
type Reporter struct {
	mu sync.Mutex

	title     string
	barLength int
	totalWork int
	done      int
	quiet     bool

	out       io.Writer
	startTime time.Time
	listeners []Listener

	// Bounds console redraw frequency; Done bypasses it.
	redrawLimiter *rate.Limiter

	maxPrintLength int
}

// NewReporter creates a reporter for a task comprising totalWork units.
// When quiet is set, nothing is printed, but listeners still run.
func NewReporter(title string, barLength, totalWork int, quiet bool) *Reporter {
	return &Reporter{
		title:         title,
		barLength:     barLength,
		totalWork:     totalWork,
		quiet:         quiet,
		out:           os.Stderr,
		startTime:     time.Now(),
		redrawLimiter: rate.NewLimiter(rate.Limit(20), 1),
	}
}

// SetOutput redirects the bar away from stderr.  Call before the first
// Update.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// AddListener registers a callback for progress fractions.
func (r *Reporter) AddListener(l Listener) {
	if l == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Update records that another work units have completed.
func (r *Reporter) Update(work int) {
	if work <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.done += work
	if r.done > r.totalWork {
		r.done = r.totalWork
	}
	fraction := float64(r.done) / float64(r.totalWork)

	for _, l := range r.listeners {
		l(fraction)
	}

	if r.quiet || !r.redrawLimiter.Allow() {
		return
	}

	elapsed := time.Since(r.startTime).Seconds()
	remaining := elapsed * (1.0 - fraction) / fraction
	r.redraw(fraction, fmt.Sprintf("(%.2fs | %.2fs)", elapsed, remaining))
}

// Done marks the work complete and finishes the console line.
func (r *Reporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done = r.totalWork

	for _, l := range r.listeners {
		l(1.0)
	}

	if r.quiet {
		return
	}

	r.redraw(1.0, fmt.Sprintf("(%.2fs)", time.Since(r.startTime).Seconds()))
	fmt.Fprintln(r.out)
}

// redraw repaints the bar in place.  Caller holds r.mu.
func (r *Reporter) redraw(fraction float64, timeString string) {
	filled := int(float64(r.barLength) * fraction)
	bar := strings.Repeat("+", filled) + strings.Repeat(" ", r.barLength-filled)

	// Pad to cover the previous, possibly longer, printout.
	if len(timeString) < r.maxPrintLength {
		timeString += strings.Repeat(" ", r.maxPrintLength-len(timeString))
	}
	r.maxPrintLength = len(timeString)

	fmt.Fprintf(r.out, "\r%s [%s] %s", r.title, bar, timeString)
}
