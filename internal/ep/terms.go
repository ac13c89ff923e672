package ep

import (
	"strings"
	"time"
)

// Term identifies a parliamentary term. TermNone marks a timestamp that
// falls outside every configured window or cannot be parsed.
type Term int

// TermNone is the unclassified term.
const TermNone Term = 0

// TermWindow is a half-open [Start, End) date window for one term. A zero
// End marks the currently open term.
type TermWindow struct {
	Term  Term
	Start time.Time
	End   time.Time
}

// Open reports whether the window has no configured end.
func (w TermWindow) Open() bool {
	return w.End.IsZero()
}

// Contains reports whether t falls inside the window.
func (w TermWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return w.Open() || t.Before(w.End)
}

// TermSet is an ordered list of contiguous, non-overlapping term windows.
type TermSet struct {
	windows []TermWindow
}

// NewTermSet builds a TermSet from the given windows. Windows are expected
// in ascending date order, matching how they are configured.
func NewTermSet(windows []TermWindow) TermSet {
	return TermSet{windows: append([]TermWindow(nil), windows...)}
}

// DefaultTermSet covers the three terms scored by default: term 8
// [2014-07-01, 2019-07-02), term 9 [2019-07-02, 2024-07-16), and the open
// term 10 from 2024-07-16.
func DefaultTermSet() TermSet {
	return NewTermSet([]TermWindow{
		{Term: 8, Start: date(2014, 7, 1), End: date(2019, 7, 2)},
		{Term: 9, Start: date(2019, 7, 2), End: date(2024, 7, 16)},
		{Term: 10, Start: date(2024, 7, 16)},
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Windows returns a copy of the configured windows.
func (s TermSet) Windows() []TermWindow {
	return append([]TermWindow(nil), s.windows...)
}

// Terms returns the configured term numbers in window order.
func (s TermSet) Terms() []Term {
	out := make([]Term, len(s.windows))
	for i, w := range s.windows {
		out[i] = w.Term
	}
	return out
}

// Classify maps a raw timestamp string to its term. It returns TermNone
// when the timestamp cannot be parsed or no window contains it; neither
// case is an error, records outside the scored terms are simply dropped.
func (s TermSet) Classify(ts string) Term {
	t := ParseTimestamp(ts)
	if t.IsZero() {
		return TermNone
	}
	return s.ClassifyTime(t)
}

// ClassifyTime maps an already-parsed time to its term, or TermNone.
func (s TermSet) ClassifyTime(t time.Time) Term {
	for _, w := range s.windows {
		if w.Contains(t) {
			return w.Term
		}
	}
	return TermNone
}

// ParseTimestamp parses the timestamp formats seen across the dumps:
// RFC 3339 with or without a Z suffix, a space instead of the T separator,
// and bare dates. Returns the zero time if nothing matches.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	// Dumps are inconsistent about the date/time separator.
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
