package util

import (
	"fmt"
	"strings"
	"time"
)

// TimerStats are the durations of one named section, in milliseconds.
type TimerStats struct {
	Name  string
	Last  float64
	Total float64
	Count int64
	Min   float64
	Max   float64
}

func (s TimerStats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}

func (s TimerStats) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms", s.Name, s.Last, s.Average(), s.Min, s.Max)
}

// Timer measures named sections of the frame, e.g. "update" and "render".
type Timer struct {
	stats map[string]*TimerStats
	names []string
	now   func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		stats: make(map[string]*TimerStats),
		now:   time.Now,
	}
}

// Start begins a measurement. The returned function stops it and returns the duration in ms.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.stats[name]
	if !ok {
		t.names = append(t.names, name)
		state = &TimerStats{Name: name}
		t.stats[name] = state
	}
	start := t.now()
	return func() float64 {
		ms := float64(t.now().Sub(start).Microseconds()) / 1000.0
		state.Last = ms
		state.Total += ms
		if state.Count == 0 || ms < state.Min {
			state.Min = ms
		}
		if ms > state.Max {
			state.Max = ms
		}
		state.Count++
		return ms
	}
}

func (t *Timer) Stats(name string) (TimerStats, bool) {
	state, ok := t.stats[name]
	if !ok {
		return TimerStats{}, false
	}
	return *state, true
}

func (t *Timer) Reset() {
	for _, state := range t.stats {
		*state = TimerStats{Name: state.Name}
	}
}

// String lists the sections in the order they were first started.
func (t *Timer) String() string {
	lines := make([]string, 0, len(t.names))
	for _, name := range t.names {
		lines = append(lines, t.stats[name].String())
	}
	return strings.Join(lines, "\n")
}
