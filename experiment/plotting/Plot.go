// Package plotting plots the data saved by Trackers during an
// experiment
package plotting

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named sequence of per-episode values, such as the
// episodic returns saved by a tracker.Return
type Series struct {
	Name string
	Data []float64
}

// Smooth returns the moving average of data over the last window
// values. The first window-1 values are averaged over the values seen
// so far. If window <= 1, a copy of data is returned.
func Smooth(data []float64, window int) []float64 {
	smoothed := make([]float64, len(data))
	if window <= 1 {
		copy(smoothed, data)
		return smoothed
	}

	for i := range data {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		smoothed[i] = stat.Mean(data[start:i+1], nil)
	}
	return smoothed
}

// LearningCurve returns a plot of each series against the episode
// number. Each series is smoothed with a moving average over window
// episodes.
func LearningCurve(title, ylabel string, window int,
	series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = ylabel
	p.Legend.Top = true

	for i, s := range series {
		smoothed := Smooth(s.Data, window)
		points := make(plotter.XYs, len(smoothed))
		for j := range smoothed {
			points[j] = plotter.XY{X: float64(j), Y: smoothed[j]}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, fmt.Errorf("learningCurve: could not plot %v: %v",
				s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	return p, nil
}

// SaveLearningCurve plots the series with LearningCurve and saves the
// plot to filename. The image format is determined by the extension of
// filename.
func SaveLearningCurve(filename, title, ylabel string, window int,
	series ...Series) error {
	p, err := LearningCurve(title, ylabel, window, series...)
	if err != nil {
		return err
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("saveLearningCurve: %v", err)
	}
	return nil
}
