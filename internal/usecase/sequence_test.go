package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestFiscalYearLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "25-26"},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "25-26"},
		{time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "26-27"},
	}

	for _, tc := range tests {
		if got := FiscalYearLabel(tc.date); got != tc.want {
			t.Fatalf("FiscalYearLabel(%s) = %q; want %q", tc.date, got, tc.want)
		}
	}
}

func TestDocIDGeneratorSequences(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	gen := newDocIDGenerator(func() time.Time { return now })

	if got := gen.Next(); got != "01/25-26" {
		t.Fatalf("unexpected first id %q", got)
	}
	if got := gen.Next(); got != "02/25-26" {
		t.Fatalf("unexpected second id %q", got)
	}

	// A new fiscal year restarts the sequence.
	now = time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := gen.Next(); got != "01/26-27" {
		t.Fatalf("unexpected id after fiscal rollover %q", got)
	}
}

func TestDocIDGeneratorConcurrentUniqueness(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	gen := newDocIDGenerator(func() time.Time { return now })

	const n = 64
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
	if !seen[fmt.Sprintf("%02d/25-26", n)] {
		t.Fatalf("expected sequence to reach %d", n)
	}
}
