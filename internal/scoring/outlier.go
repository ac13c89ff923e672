package scoring

import (
	"math"
	"sort"

	"github.com/openparl/epscore/internal/ep"
)

// OutlierStatus says where a value landed relative to the IQR bounds.
type OutlierStatus string

// Outlier statuses.
const (
	StatusBelow  OutlierStatus = "below_outlier_threshold"
	StatusAbove  OutlierStatus = "above_outlier_threshold"
	StatusWithin OutlierStatus = "within_range"
)

// OutlierStats records the quartile bounds computed for one indicator in
// one term, kept for audit output.
type OutlierStats struct {
	Term      ep.Term `json:"term"`
	Indicator string  `json:"indicator"`
	Q1        float64 `json:"q1"`
	Q3        float64 `json:"q3"`
	IQR       float64 `json:"iqr"`
	Lower     float64 `json:"lower_bound"`
	Upper     float64 `json:"upper_bound"`
	Members   int     `json:"members"`
	Clean     int     `json:"clean_values"`
	Outliers  int     `json:"outliers"`
}

type statsKey struct {
	term      ep.Term
	indicator string
}

// OutlierScorer scores single indicator values on a 0-4 scale using
// IQR-based outlier detection over the cohort's values. It holds no state
// between calls beyond an audit cache of the bounds it computed. It is
// an alternative to the axis engine's fixed caps and usable on its own.
type OutlierScorer struct {
	stats map[statsKey]OutlierStats
}

// NewOutlierScorer returns an empty scorer.
func NewOutlierScorer() *OutlierScorer {
	return &OutlierScorer{stats: make(map[statsKey]OutlierStats)}
}

// Score scores one member's value against the whole cohort's values for
// the indicator. Values below the lower IQR bound score 0, values above
// the upper bound score 4, and everything else is min-max normalized over
// the in-bound subset and scaled as log2(1+normalized)*4.
//
// Degenerate cohorts stay well-defined: with no values the bounds are
// (0, 0), and an in-bound subset with zero range scores the deterministic
// midpoint 2.0 rather than dividing by zero.
func (s *OutlierScorer) Score(term ep.Term, indicator string, values []float64, v float64) (float64, OutlierStatus) {
	st, clean := computeStats(term, indicator, values)
	s.stats[statsKey{term: term, indicator: indicator}] = st

	switch {
	case v < st.Lower:
		return 0, StatusBelow
	case v > st.Upper:
		return 4, StatusAbove
	}

	if len(clean) == 0 {
		return 2.0, StatusWithin
	}
	lo, hi := clean[0], clean[len(clean)-1]
	if hi == lo {
		return 2.0, StatusWithin
	}
	normalized := (v - lo) / (hi - lo)
	score := math.Log2(1+normalized) * 4
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return score, StatusWithin
}

// Bounds computes and caches the IQR bounds for one indicator without
// scoring anybody, for audit and reporting.
func (s *OutlierScorer) Bounds(term ep.Term, indicator string, values []float64) OutlierStats {
	st, _ := computeStats(term, indicator, values)
	s.stats[statsKey{term: term, indicator: indicator}] = st
	return st
}

// Stats returns the audit cache sorted by term, then indicator.
func (s *OutlierScorer) Stats() []OutlierStats {
	out := make([]OutlierStats, 0, len(s.stats))
	for _, st := range s.stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Term != out[j].Term {
			return out[i].Term < out[j].Term
		}
		return out[i].Indicator < out[j].Indicator
	})
	return out
}

// computeStats derives the IQR bounds for the values and returns them
// together with the sorted in-bound subset.
func computeStats(term ep.Term, indicator string, values []float64) (OutlierStats, []float64) {
	st := OutlierStats{Term: term, Indicator: indicator, Members: len(values)}
	if len(values) == 0 {
		return st, nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	st.Q1 = percentile(sorted, 25)
	st.Q3 = percentile(sorted, 75)
	st.IQR = st.Q3 - st.Q1
	st.Lower = st.Q1 - 1.5*st.IQR
	st.Upper = st.Q3 + 1.5*st.IQR

	var clean []float64
	for _, v := range sorted {
		if v >= st.Lower && v <= st.Upper {
			clean = append(clean, v)
		}
	}
	st.Clean = len(clean)
	st.Outliers = len(sorted) - len(clean)
	return st, clean
}

// percentile computes the p-th percentile of a sorted sample with linear
// interpolation between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
