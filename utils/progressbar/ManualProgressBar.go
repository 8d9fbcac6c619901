// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar that prints to
// out
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		out:         out,
		width:       width,
		maxProgress: max,
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Display prints the progress bar, overwriting the previously printed
// bar
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", render(p.width, p.currentProgress,
		p.maxProgress, time.Since(p.startTime)))
}

// render returns the text of a progress bar width characters wide at
// progress current of max
func render(width, current, max int, elapsed time.Duration) string {
	fraction := 1.0
	if max > 0 {
		fraction = float64(current) / float64(max)
	}
	filled := int(fraction * float64(width))

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", width-filled))
	fmt.Fprintf(&bar, "| [%.2f%% | %d/%d | elapsed: %v]", fraction*100,
		current, max, elapsed.Truncate(time.Second))

	return bar.String()
}
