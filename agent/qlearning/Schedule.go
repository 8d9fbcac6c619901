package qlearning

import "math"

// Schedule implements an exponentially decaying exploration rate. On
// episode i the exploration rate is
//
//	Min + (Max - Min) * exp(-DecayRate * i)
//
// which equals Max on episode 0 and approaches Min as i grows.
type Schedule struct {
	Min       float64
	Max       float64
	DecayRate float64
}

// Epsilon returns the exploration rate for episode
func (s Schedule) Epsilon(episode int) float64 {
	return s.Min + (s.Max-s.Min)*math.Exp(-s.DecayRate*float64(episode))
}
