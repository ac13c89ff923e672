package ep

import (
	"testing"
	"time"
)

func TestClassify_Partition(t *testing.T) {
	terms := DefaultTermSet()

	cases := []struct {
		ts   string
		want Term
	}{
		{"2014-07-01T00:00:00", 8}, // first window start is inclusive
		{"2016-03-15T10:00:00", 8},
		{"2019-07-01T23:59:59", 8}, // last instant before the boundary
		{"2019-07-02T00:00:00", 9}, // boundary belongs to the next term
		{"2022-01-01T00:00:00", 9},
		{"2024-07-16T00:00:00", 10},
		{"2030-12-31T00:00:00", 10}, // open window has no upper bound
		{"2014-06-30T23:59:59", TermNone},
		{"1999-01-01T00:00:00", TermNone},
	}
	for _, tc := range cases {
		if got := terms.Classify(tc.ts); got != tc.want {
			t.Errorf("Classify(%q) = %d, want %d", tc.ts, got, tc.want)
		}
	}
}

func TestClassify_TimestampVariants(t *testing.T) {
	terms := DefaultTermSet()

	// The dumps mix Z suffixes, space separators and bare dates; all must
	// classify identically.
	for _, ts := range []string{
		"2020-05-01T12:00:00Z",
		"2020-05-01T12:00:00",
		"2020-05-01 12:00:00",
		"2020-05-01",
	} {
		if got := terms.Classify(ts); got != 9 {
			t.Errorf("Classify(%q) = %d, want 9", ts, got)
		}
	}
}

func TestClassify_MalformedInput(t *testing.T) {
	terms := DefaultTermSet()

	for _, ts := range []string{"", "not-a-date", "2020-13-40", "12:00:00"} {
		if got := terms.Classify(ts); got != TermNone {
			t.Errorf("Classify(%q) = %d, want TermNone", ts, got)
		}
	}
}

func TestClassifyTime_ClosedLastWindow(t *testing.T) {
	terms := NewTermSet([]TermWindow{
		{Term: 9, Start: date(2019, 7, 2), End: date(2024, 7, 16)},
	})

	if got := terms.ClassifyTime(date(2024, 7, 16)); got != TermNone {
		t.Errorf("date at closed end = %d, want TermNone", got)
	}
	if got := terms.ClassifyTime(date(2024, 7, 15)); got != 9 {
		t.Errorf("date inside window = %d, want 9", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	for _, ts := range []string{
		"2021-03-04T05:06:07Z",
		"2021-03-04T05:06:07",
		"2021-03-04 05:06:07",
	} {
		if got := ParseTimestamp(ts); !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", ts, got, want)
		}
	}

	if got := ParseTimestamp("garbage"); !got.IsZero() {
		t.Errorf("ParseTimestamp(garbage) = %v, want zero", got)
	}
}
