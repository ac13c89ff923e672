// Package ep models the raw European Parliament data dumps consumed by
// epscore: per-MEP activity bundles, amendments, roll-call votes, role
// trees, and the member roster.
package ep

// Activity tags used by the per-MEP activity bundles. Each tag keys a list
// of dated items inside a MemberActivity.
const (
	TagSpeech              = "CRE"
	TagWrittenQuestion     = "WQ"
	TagOralQuestion        = "OQ"
	TagMajorInterpellation = "MINT"
	TagMotion              = "MOTION"
	TagIndividualMotion    = "IMOTION"
	TagOpinionRapporteur   = "COMPARL"
	TagOpinionShadow       = "COMPARL-SHADOW"
	TagWrittenDeclaration  = "WDECL"
	TagExplanationOfVote   = "WEXP"
)

// ActivityItem is a single dated entry inside an activity bundle. The term
// is carried directly on the item by the upstream dump and is used
// verbatim, without re-classification.
type ActivityItem struct {
	Term  int    `json:"term"`
	Date  string `json:"date,omitempty"`
	Title string `json:"title,omitempty"`
	Ref   string `json:"reference,omitempty"`
}

// MemberActivity is one per-MEP bundle: lists of activity items keyed by
// activity tag.
type MemberActivity struct {
	MemberID   int64                     `json:"mep_id"`
	Activities map[string][]ActivityItem `json:"activities"`
}

// Amendment is one tabled amendment. A single amendment may list several
// authoring MEPs; each listed MEP is credited once per appearance.
type Amendment struct {
	Date      string  `json:"date"`
	Reference string  `json:"reference,omitempty"`
	MemberIDs []int64 `json:"meps"`
}

// VoteMember identifies one MEP inside a vote record.
type VoteMember struct {
	MemberID int64  `json:"mepid"`
	Name     string `json:"name,omitempty"`
}

// BallotSide holds one outcome group of a roll-call vote ("+", "-" or "0"),
// with ballots grouped by political group as the upstream dump ships them.
type BallotSide struct {
	Total  int                     `json:"total"`
	Groups map[string][]VoteMember `json:"groups"`
}

// Vote is one roll-call vote: its timestamp, the rapporteur and shadow
// rapporteurs responsible for the dossier, and the individual ballots.
type Vote struct {
	VoteID     int64                 `json:"voteid"`
	Timestamp  string                `json:"ts"`
	Title      string                `json:"title,omitempty"`
	Rapporteur []VoteMember          `json:"rapporteur"`
	Shadows    []VoteMember          `json:"shadows"`
	Ballots    map[string]BallotSide `json:"votes"`
}

// OfficeEntry is one dated office held inside a committee, delegation or
// the chamber itself. Role is free text as published by the Parliament.
type OfficeEntry struct {
	Organization string `json:"organization"`
	Abbr         string `json:"abbr,omitempty"`
	Role         string `json:"role"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
}

// MemberRoles is the nested role/office tree published per MEP.
type MemberRoles struct {
	MemberID    int64         `json:"mep_id"`
	Committees  []OfficeEntry `json:"committees"`
	Delegations []OfficeEntry `json:"delegations"`
	Staff       []OfficeEntry `json:"staff"`
}

// Member is a roster entry, used only to enrich scoring output.
type Member struct {
	ID       int64  `json:"mep_id"`
	FullName string `json:"full_name"`
	Country  string `json:"country,omitempty"`
	Group    string `json:"group,omitempty"`
}

// Roster maps member IDs to roster entries.
type Roster map[int64]Member

// BundleTags lists every activity tag recognized in MemberActivity bundles.
// Reports are deliberately absent: rapporteur and shadow credits come from
// the roll-call vote dump, and amendments from the amendments dump, so the
// three sources never overlap in what they count.
var BundleTags = []string{
	TagSpeech,
	TagWrittenQuestion,
	TagOralQuestion,
	TagMajorInterpellation,
	TagMotion,
	TagIndividualMotion,
	TagOpinionRapporteur,
	TagOpinionShadow,
	TagWrittenDeclaration,
	TagExplanationOfVote,
}
