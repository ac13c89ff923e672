package scoring

import (
	"math"
	"sort"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/ep"
)

// MemberInput is everything the engine needs about one member of the
// cohort. Roster fields are carried through for output enrichment and the
// published name tie-break; they never influence the score itself.
type MemberInput struct {
	MemberID int64
	FullName string
	Country  string
	Group    string

	Counts        aggregate.ActivityCounts
	Roles         []ep.CanonicalRole
	VotesAttended int
	TotalVotes    int
}

// Indicators are the per-indicator scores feeding the four axes.
type Indicators struct {
	ReportsRapporteur  float64          `json:"reports_rapporteur"`
	ReportsShadow      float64          `json:"reports_shadow"`
	OpinionsRapporteur float64          `json:"opinions_rapporteur"`
	OpinionsShadow     float64          `json:"opinions_shadow"`
	Amendments         float64          `json:"amendments"`
	Questions          float64          `json:"questions"`
	Motions            float64          `json:"motions"`
	Explanations       float64          `json:"explanations"`
	Speeches           float64          `json:"speeches"`
	Votes              float64          `json:"votes"`
	Role               float64          `json:"role"`
	TopRole            ep.CanonicalRole `json:"top_role,omitempty"`
}

// Axes are the four raw axis values.
type Axes struct {
	LegislativeProduction float64 `json:"legislative_production"`
	ControlTransparency   float64 `json:"control_transparency"`
	EngagementPresence    float64 `json:"engagement_presence"`
	InstitutionalRoles    float64 `json:"institutional_roles"`
}

// Result is one member's full scoring breakdown for one term.
type Result struct {
	MemberID int64   `json:"member_id"`
	FullName string  `json:"full_name,omitempty"`
	Country  string  `json:"country,omitempty"`
	Group    string  `json:"group,omitempty"`
	Term     ep.Term `json:"term"`

	Counts     aggregate.ActivityCounts `json:"counts"`
	Indicators Indicators               `json:"indicators"`
	Axes       Axes                     `json:"axes"`

	FinalRaw   float64 `json:"final_raw"`
	FinalScore float64 `json:"final_score"`
	Rank       int     `json:"rank"`
}

// Engine scores one cohort at a time against a fixed Config.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine bound to the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// ScoreTerm scores the whole cohort for one term and returns results
// sorted and ranked by the given comparator (ByFinalScore when nil).
//
// The cohort-wide reductions (amendment maximum, final-raw maximum) are
// computed before the per-member passes that depend on them; apart from
// those two maxima, members are scored independently.
func (e *Engine) ScoreTerm(term ep.Term, cohort []MemberInput, less Comparator) []Result {
	if less == nil {
		less = ByFinalScore
	}

	maxAmendments := 0
	for _, m := range cohort {
		if m.Counts.Amendments > maxAmendments {
			maxAmendments = m.Counts.Amendments
		}
	}

	results := make([]Result, len(cohort))
	maxFinal := math.Inf(-1)
	for i, m := range cohort {
		r := e.scoreMember(term, m, maxAmendments)
		if r.FinalRaw > maxFinal {
			maxFinal = r.FinalRaw
		}
		results[i] = r
	}

	// Cohort-relative normalization to 0-100. A non-positive maximum
	// means nobody scored; everyone stays at zero rather than dividing.
	for i := range results {
		if maxFinal > 0 {
			results[i].FinalScore = 100 * results[i].FinalRaw / maxFinal
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

func (e *Engine) scoreMember(term ep.Term, m MemberInput, maxAmendments int) Result {
	cfg := e.cfg
	ind := Indicators{
		ReportsRapporteur:  float64(m.Counts.ReportsRapporteur) * cfg.Units.ReportRapporteur,
		ReportsShadow:      float64(m.Counts.ReportsShadow) * cfg.Units.ReportShadow,
		OpinionsRapporteur: float64(m.Counts.OpinionsRapporteur) * cfg.Units.OpinionRapporteur,
		OpinionsShadow:     float64(m.Counts.OpinionsShadow) * cfg.Units.OpinionShadow,
		Amendments:         e.amendmentScore(m.Counts.Amendments, maxAmendments),
		Questions:          cfg.Questions.Apply(m.Counts.Questions()),
		Motions:            cfg.Motions.Apply(m.Counts.AllMotions()),
		Explanations:       cfg.Explanations.Apply(m.Counts.Explanations),
		Speeches:           cfg.Speeches.Apply(m.Counts.Speeches),
		Votes:              e.attendanceScore(m.VotesAttended, m.TotalVotes),
	}
	ind.Role, ind.TopRole = e.roleScore(m.Roles)

	axes := Axes{
		LegislativeProduction: ind.ReportsRapporteur + ind.ReportsShadow + ind.OpinionsRapporteur + ind.OpinionsShadow + ind.Amendments,
		ControlTransparency:   ind.Questions + ind.Motions + ind.Explanations,
		EngagementPresence:    ind.Speeches + ind.Votes,
		InstitutionalRoles:    ind.Role,
	}

	finalRaw := axes.LegislativeProduction*cfg.Weights.LegislativeProduction +
		axes.ControlTransparency*cfg.Weights.ControlTransparency +
		axes.EngagementPresence*cfg.Weights.EngagementPresence +
		axes.InstitutionalRoles*cfg.Weights.InstitutionalRoles

	return Result{
		MemberID:   m.MemberID,
		FullName:   m.FullName,
		Country:    m.Country,
		Group:      m.Group,
		Term:       term,
		Counts:     m.Counts,
		Indicators: ind,
		Axes:       axes,
		FinalRaw:   finalRaw,
	}
}

// amendmentScore scales amendment counts logarithmically against the
// cohort maximum, capped at AmendmentsCap. A zero cohort maximum scores
// everyone zero.
func (e *Engine) amendmentScore(count, cohortMax int) float64 {
	if cohortMax <= 0 || count <= 0 {
		return 0
	}
	s := e.cfg.AmendmentsCap * math.Log(1+float64(count)) / math.Log(1+float64(cohortMax))
	if s > e.cfg.AmendmentsCap {
		return e.cfg.AmendmentsCap
	}
	return s
}

// attendanceScore maps the attended/total ratio onto [0, AttendanceCap].
// A term without recorded votes contributes nothing.
func (e *Engine) attendanceScore(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	s := float64(attended) / float64(total) * e.cfg.AttendanceCap
	if s > e.cfg.AttendanceCap {
		return e.cfg.AttendanceCap
	}
	return s
}

// roleScore picks the single highest-coefficient role the member holds
// and normalizes it by the maximum coefficient. Roles never sum: a
// committee chair who also sits in three delegations scores as a
// committee chair, nothing more.
func (e *Engine) roleScore(roles []ep.CanonicalRole) (float64, ep.CanonicalRole) {
	best := 0.0
	var top ep.CanonicalRole
	for _, role := range roles {
		if coeff, ok := e.cfg.RoleCoefficients[role]; ok && coeff > best {
			best = coeff
			top = role
		}
	}
	if best == 0 || e.cfg.MaxRoleCoefficient <= 0 {
		return 0, top
	}
	return best / e.cfg.MaxRoleCoefficient, top
}
