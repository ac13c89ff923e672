package scoring

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := percentile(sorted, 25); !almostEqual(got, 3.25) {
		t.Errorf("p25 = %v, want 3.25", got)
	}
	if got := percentile(sorted, 75); !almostEqual(got, 7.75) {
		t.Errorf("p75 = %v, want 7.75", got)
	}
	if got := percentile(sorted, 50); !almostEqual(got, 5.5) {
		t.Errorf("p50 = %v, want 5.5", got)
	}
	if got := percentile([]float64{42}, 75); got != 42 {
		t.Errorf("single value p75 = %v, want 42", got)
	}
}

func TestOutlierScorer_Bounds(t *testing.T) {
	s := NewOutlierScorer()
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	st := s.Bounds(9, "speeches", values)
	if !almostEqual(st.Q1, 3.25) || !almostEqual(st.Q3, 7.75) {
		t.Errorf("quartiles = (%v, %v), want (3.25, 7.75)", st.Q1, st.Q3)
	}
	if !almostEqual(st.IQR, 4.5) {
		t.Errorf("IQR = %v, want 4.5", st.IQR)
	}
	if !almostEqual(st.Lower, -3.5) || !almostEqual(st.Upper, 14.5) {
		t.Errorf("bounds = (%v, %v), want (-3.5, 14.5)", st.Lower, st.Upper)
	}
	if st.Members != 10 || st.Clean != 10 || st.Outliers != 0 {
		t.Errorf("counts = %+v", st)
	}
}

func TestOutlierScorer_BoundaryBehavior(t *testing.T) {
	s := NewOutlierScorer()
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// Exactly at the upper bound: normal-range logic applies.
	score, status := s.Score(9, "speeches", values, 14.5)
	if status != StatusWithin {
		t.Errorf("at upper bound: status = %q, want within_range", status)
	}
	if score < 0 || score > 4 {
		t.Errorf("at upper bound: score = %v, want within [0, 4]", score)
	}

	// The smallest step past the bound scores exactly 4.
	score, status = s.Score(9, "speeches", values, math.Nextafter(14.5, 15))
	if status != StatusAbove || score != 4 {
		t.Errorf("above upper bound: (%v, %q), want (4, above_outlier_threshold)", score, status)
	}

	score, status = s.Score(9, "speeches", values, -3.6)
	if status != StatusBelow || score != 0 {
		t.Errorf("below lower bound: (%v, %q), want (0, below_outlier_threshold)", score, status)
	}
}

func TestOutlierScorer_LogScaling(t *testing.T) {
	s := NewOutlierScorer()
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// Midpoint of the clean range: normalized 0.5, log2(1.5)*4.
	score, status := s.Score(9, "speeches", values, 5.5)
	if status != StatusWithin {
		t.Fatalf("status = %q", status)
	}
	want := math.Log2(1.5) * 4
	if !almostEqual(score, want) {
		t.Errorf("score = %v, want %v", score, want)
	}

	// Clean minimum scores 0, clean maximum scores 4.
	if score, _ := s.Score(9, "speeches", values, 1); !almostEqual(score, 0) {
		t.Errorf("min score = %v, want 0", score)
	}
	if score, _ := s.Score(9, "speeches", values, 10); !almostEqual(score, 4) {
		t.Errorf("max score = %v, want 4", score)
	}
}

func TestOutlierScorer_DegenerateCohorts(t *testing.T) {
	s := NewOutlierScorer()

	// Empty cohort: bounds (0, 0) and no clean values.
	st := s.Bounds(9, "empty", nil)
	if st.Lower != 0 || st.Upper != 0 || st.Clean != 0 || st.Members != 0 {
		t.Errorf("empty stats = %+v", st)
	}
	if score, status := s.Score(9, "empty", nil, 0); score != 2.0 || status != StatusWithin {
		t.Errorf("empty cohort at 0 = (%v, %q), want (2, within_range)", score, status)
	}

	// Single value: zero-range clean subset scores the midpoint.
	if score, status := s.Score(9, "single", []float64{5}, 5); score != 2.0 || status != StatusWithin {
		t.Errorf("single value = (%v, %q), want (2, within_range)", score, status)
	}

	// All-identical values behave the same way.
	if score, _ := s.Score(9, "flat", []float64{3, 3, 3, 3}, 3); score != 2.0 {
		t.Errorf("flat cohort = %v, want 2", score)
	}
}

func TestOutlierScorer_BoundsMonotoneUnderWidening(t *testing.T) {
	s := NewOutlierScorer()
	base := []float64{10, 12, 14, 16, 18, 20}
	st := s.Bounds(9, "base", base)

	// Stretching the extremes can only push the fences outward.
	widened := append(append([]float64(nil), base...), 0, 40)
	wst := s.Bounds(9, "widened", widened)

	if wst.Lower > st.Lower {
		t.Errorf("lower bound moved up: %v -> %v", st.Lower, wst.Lower)
	}
	if wst.Upper < st.Upper {
		t.Errorf("upper bound moved down: %v -> %v", st.Upper, wst.Upper)
	}
}

func TestOutlierScorer_StatsCache(t *testing.T) {
	s := NewOutlierScorer()
	s.Bounds(8, "speeches", []float64{1, 2, 3})
	s.Bounds(9, "amendments", []float64{4, 5, 6})
	s.Bounds(8, "amendments", []float64{7, 8, 9})

	stats := s.Stats()
	if len(stats) != 3 {
		t.Fatalf("stats = %d entries, want 3", len(stats))
	}
	// Sorted by term then indicator.
	if stats[0].Term != 8 || stats[0].Indicator != "amendments" {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[2].Term != 9 {
		t.Errorf("stats[2] = %+v", stats[2])
	}
}
