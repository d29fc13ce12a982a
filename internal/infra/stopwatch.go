package infra

import "time"

// Stopwatch marks a start instant and reports elapsed wall-clock time.
// time.Now carries a monotonic reading, so the measurement is immune to
// wall-clock adjustments mid-run.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch starts a stopwatch at the current instant.
func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// ElapsedMS returns milliseconds elapsed since the stopwatch started.
func (s Stopwatch) ElapsedMS() float64 {
	return float64(time.Since(s.start)) / float64(time.Millisecond)
}
