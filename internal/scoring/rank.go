package scoring

import "strings"

// Comparator orders two results for ranking; it reports whether a should
// rank ahead of b. The engine sorts with a stable sort, so a comparator
// that leaves ties unresolved keeps the cohort's input order for them.
type Comparator func(a, b Result) bool

// ByFinalScore orders by final score descending and nothing else.
func ByFinalScore(a, b Result) bool {
	return a.FinalScore > b.FinalScore
}

// PublishedOrder is the comparator behind the published ranking: final
// score descending, then raw speech count descending, then full name
// ascending without regard to case.
func PublishedOrder(a, b Result) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	if a.Counts.Speeches != b.Counts.Speeches {
		return a.Counts.Speeches > b.Counts.Speeches
	}
	return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
}
