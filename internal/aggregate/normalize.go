package aggregate

import "github.com/openparl/epscore/internal/ep"

// CountsFromBundles converts per-MEP activity bundles into a partial count
// map. Each list item contributes one increment; the term comes verbatim
// from the item and is never re-derived from a date. Items without a
// usable term and lists under unknown tags are skipped and tallied in the
// returned skip count.
func CountsFromBundles(bundles []ep.MemberActivity) (map[Key]ActivityCounts, int) {
	out := make(map[Key]ActivityCounts)
	skipped := 0
	for _, b := range bundles {
		for tag, items := range b.Activities {
			for _, item := range items {
				if item.Term <= 0 {
					skipped++
					continue
				}
				k := Key{MemberID: b.MemberID, Term: ep.Term(item.Term)}
				c := out[k]
				if !c.addTag(tag, 1) {
					skipped++
					continue
				}
				out[k] = c
			}
		}
	}
	return out, skipped
}

// CountsFromAmendments converts the amendment dump into a partial count
// map: one increment per (member, term-of-date) appearance. A member
// listed twice on the same amendment is counted twice; that matches the
// upstream data as published and is preserved deliberately. Amendments
// whose date does not classify into a term are skipped.
func CountsFromAmendments(ams []ep.Amendment, terms ep.TermSet) (map[Key]ActivityCounts, int) {
	out := make(map[Key]ActivityCounts)
	skipped := 0
	for _, am := range ams {
		term := terms.Classify(am.Date)
		if term == ep.TermNone {
			skipped++
			continue
		}
		for _, id := range am.MemberIDs {
			k := Key{MemberID: id, Term: term}
			c := out[k]
			c.Amendments++
			out[k] = c
		}
	}
	return out, skipped
}

// CountsFromVotes converts the roll-call vote dump into report credits:
// one rapporteur credit per listed rapporteur and one shadow credit per
// listed shadow, under the term of the vote's timestamp. Votes outside
// every term window are skipped.
func CountsFromVotes(votes []ep.Vote, terms ep.TermSet) (map[Key]ActivityCounts, int) {
	out := make(map[Key]ActivityCounts)
	skipped := 0
	for _, v := range votes {
		term := terms.Classify(v.Timestamp)
		if term == ep.TermNone {
			skipped++
			continue
		}
		for _, m := range v.Rapporteur {
			k := Key{MemberID: m.MemberID, Term: term}
			c := out[k]
			c.ReportsRapporteur++
			out[k] = c
		}
		for _, m := range v.Shadows {
			k := Key{MemberID: m.MemberID, Term: term}
			c := out[k]
			c.ReportsShadow++
			out[k] = c
		}
	}
	return out, skipped
}
