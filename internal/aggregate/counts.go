// Package aggregate turns raw dump records into per-(member, term)
// activity and role counts. Counts are rebuilt from scratch on every run;
// merging partial counts is a field-wise sum, so runs are idempotent and
// merge order never matters.
package aggregate

import "github.com/openparl/epscore/internal/ep"

// Key identifies one member within one term.
type Key struct {
	MemberID int64   `json:"member_id"`
	Term     ep.Term `json:"term"`
}

// ActivityCounts holds the thirteen activity counters for one key.
// Counters only ever grow during aggregation and start at zero on first
// touch.
type ActivityCounts struct {
	Speeches             int `json:"speeches"`
	ReportsRapporteur    int `json:"reports_rapporteur"`
	ReportsShadow        int `json:"reports_shadow"`
	Amendments           int `json:"amendments"`
	WrittenQuestions     int `json:"written_questions"`
	OralQuestions        int `json:"oral_questions"`
	MajorInterpellations int `json:"major_interpellations"`
	Motions              int `json:"motions"`
	IndividualMotions    int `json:"individual_motions"`
	OpinionsRapporteur   int `json:"opinions_rapporteur"`
	OpinionsShadow       int `json:"opinions_shadow"`
	Declarations         int `json:"declarations"`
	Explanations         int `json:"explanations"`
}

// addTag bumps the counter behind a bundle activity tag. It reports false
// for tags outside the recognized set.
func (c *ActivityCounts) addTag(tag string, n int) bool {
	switch tag {
	case ep.TagSpeech:
		c.Speeches += n
	case ep.TagWrittenQuestion:
		c.WrittenQuestions += n
	case ep.TagOralQuestion:
		c.OralQuestions += n
	case ep.TagMajorInterpellation:
		c.MajorInterpellations += n
	case ep.TagMotion:
		c.Motions += n
	case ep.TagIndividualMotion:
		c.IndividualMotions += n
	case ep.TagOpinionRapporteur:
		c.OpinionsRapporteur += n
	case ep.TagOpinionShadow:
		c.OpinionsShadow += n
	case ep.TagWrittenDeclaration:
		c.Declarations += n
	case ep.TagExplanationOfVote:
		c.Explanations += n
	default:
		return false
	}
	return true
}

// plus returns the field-wise sum of two count records.
func (c ActivityCounts) plus(o ActivityCounts) ActivityCounts {
	return ActivityCounts{
		Speeches:             c.Speeches + o.Speeches,
		ReportsRapporteur:    c.ReportsRapporteur + o.ReportsRapporteur,
		ReportsShadow:        c.ReportsShadow + o.ReportsShadow,
		Amendments:           c.Amendments + o.Amendments,
		WrittenQuestions:     c.WrittenQuestions + o.WrittenQuestions,
		OralQuestions:        c.OralQuestions + o.OralQuestions,
		MajorInterpellations: c.MajorInterpellations + o.MajorInterpellations,
		Motions:              c.Motions + o.Motions,
		IndividualMotions:    c.IndividualMotions + o.IndividualMotions,
		OpinionsRapporteur:   c.OpinionsRapporteur + o.OpinionsRapporteur,
		OpinionsShadow:       c.OpinionsShadow + o.OpinionsShadow,
		Declarations:         c.Declarations + o.Declarations,
		Explanations:         c.Explanations + o.Explanations,
	}
}

// Questions returns the combined parliamentary-question counter used by
// the control axis: written and oral questions plus major interpellations.
func (c ActivityCounts) Questions() int {
	return c.WrittenQuestions + c.OralQuestions + c.MajorInterpellations
}

// AllMotions returns joint and individual motions combined.
func (c ActivityCounts) AllMotions() int {
	return c.Motions + c.IndividualMotions
}

// Merge combines any number of partial count maps into one. Absent keys
// count as zero, so the operation is associative and commutative: any
// merge order over any grouping of the same partials yields the same map.
func Merge(parts ...map[Key]ActivityCounts) map[Key]ActivityCounts {
	out := make(map[Key]ActivityCounts)
	for _, part := range parts {
		for k, v := range part {
			out[k] = out[k].plus(v)
		}
	}
	return out
}
