package usecase

import (
	"fmt"
	"sync"
	"time"
)

// DocIDGenerator issues fiscal-year-scoped sequence identifiers such as
// "01/25-26". The fiscal year runs April through March; the sequence is a
// process-lifetime counter per fiscal-year label, so ids are unique within
// one process run but restart from 01 after a restart.
type DocIDGenerator struct {
	mu       sync.Mutex
	counters map[string]int
	now      func() time.Time
}

// NewDocIDGenerator constructs a generator using the wall clock.
func NewDocIDGenerator() *DocIDGenerator {
	return newDocIDGenerator(time.Now)
}

func newDocIDGenerator(now func() time.Time) *DocIDGenerator {
	return &DocIDGenerator{counters: make(map[string]int), now: now}
}

// Next returns the next identifier for the current fiscal year.
func (g *DocIDGenerator) Next() string {
	label := FiscalYearLabel(g.now())

	g.mu.Lock()
	g.counters[label]++
	seq := g.counters[label]
	g.mu.Unlock()

	return fmt.Sprintf("%02d/%s", seq, label)
}

// FiscalYearLabel maps a date to its fiscal-year label, e.g. "25-26" for any
// date between April 2025 and March 2026.
func FiscalYearLabel(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}
