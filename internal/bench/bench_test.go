package bench

import "testing"

func TestRunProducesOrderedSummary(t *testing.T) {
	s := Run(20, func() {})
	if s.N != 20 {
		t.Errorf("N = %d, want 20", s.N)
	}
	if s.Min > s.P25 || s.P25 > s.Median || s.Median > s.P75 || s.P75 > s.Max {
		t.Errorf("summary percentiles are not ordered: %+v", s)
	}
	if s.Mean < 0 {
		t.Errorf("mean should not be negative, got %f", s.Mean)
	}
}
