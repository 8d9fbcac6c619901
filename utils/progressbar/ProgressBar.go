package progressbar

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressBar implements a concurrent progress bar. The bar is redrawn
// in a separate goroutine so that the progress bar runs concurrently
// with all other processes.
type ProgressBar struct {
	out   io.Writer
	width int

	// maxProgress determines the number of times Increment() should
	// be called before the progress bar reaches 100%.
	maxProgress int

	mu              sync.Mutex
	currentProgress int
	updated         bool

	updateEvery       time.Duration
	updateAtIncrement bool

	startTime  time.Time
	closeEvent chan struct{}
	done       chan struct{}
	displayed  bool
	closed     bool
}

// NewProgressBar returns a new progress bar that is width characters
// wide and reaches 100% capacity after max Increment() calls. The bar
// is redrawn every updateEvery, and additionally after each call to
// Increment if updateAtIncrement is true.
func NewProgressBar(out io.Writer, width, max int, updateEvery time.Duration,
	updateAtIncrement bool) *ProgressBar {
	return &ProgressBar{
		out:               out,
		width:             width,
		maxProgress:       max,
		updateEvery:       updateEvery,
		updateAtIncrement: updateAtIncrement,
		closeEvent:        make(chan struct{}),
		done:              make(chan struct{}),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentProgress < p.maxProgress {
		p.currentProgress++
		p.updated = true
	}
}

// Progress returns the number of calls to Increment so far, capped at
// the maximum progress
func (p *ProgressBar) Progress() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentProgress
}

// Display starts drawing the progress bar. It should only be called
// once.
func (p *ProgressBar) Display() {
	p.mu.Lock()
	if p.displayed || p.closed {
		p.mu.Unlock()
		return
	}
	p.displayed = true
	p.startTime = time.Now()
	p.mu.Unlock()

	poll := p.updateEvery
	if p.updateAtIncrement && (poll <= 0 || poll > 50*time.Millisecond) {
		poll = 50 * time.Millisecond
	} else if poll <= 0 {
		poll = time.Second
	}

	go func() {
		defer close(p.done)
		tick := time.NewTicker(poll)
		defer tick.Stop()

		lastDraw := time.Now()
		for {
			select {
			case <-p.closeEvent:
				p.draw()
				return

			case now := <-tick.C:
				p.mu.Lock()
				redraw := (p.updateAtIncrement && p.updated) ||
					now.Sub(lastDraw) >= p.updateEvery
				p.updated = false
				p.mu.Unlock()

				if redraw {
					p.draw()
					lastDraw = now
				}
			}
		}
	}()
}

// Close draws the progress bar a final time and stops the display. It
// is safe to call Close more than once.
func (p *ProgressBar) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	displayed := p.displayed
	p.mu.Unlock()

	close(p.closeEvent)
	if displayed {
		<-p.done
		fmt.Fprintln(p.out) // Jump to next line after printed bar
	}
}

func (p *ProgressBar) draw() {
	p.mu.Lock()
	line := render(p.width, p.currentProgress, p.maxProgress,
		time.Since(p.startTime))
	p.mu.Unlock()

	fmt.Fprintf(p.out, "\r\033[K%v", line)
}
