// Package scoring turns aggregated activity counts, role holdings and
// attendance into ranked composite scores. All weights, caps and role
// coefficients live in an immutable Config so alternate weight sets can be
// exercised deterministically in tests and from configuration.
package scoring

import "github.com/openparl/epscore/internal/ep"

// UnitPoints are the per-unit point values for report and opinion work.
type UnitPoints struct {
	ReportRapporteur  float64 `mapstructure:"report_rapporteur"`
	ReportShadow      float64 `mapstructure:"report_shadow"`
	OpinionRapporteur float64 `mapstructure:"opinion_rapporteur"`
	OpinionShadow     float64 `mapstructure:"opinion_shadow"`
}

// CappedRate is a linear per-unit rate with a hard ceiling.
type CappedRate struct {
	Rate float64 `mapstructure:"rate"`
	Cap  float64 `mapstructure:"cap"`
}

// Apply returns count*Rate clamped to Cap.
func (r CappedRate) Apply(count int) float64 {
	s := float64(count) * r.Rate
	if s > r.Cap {
		return r.Cap
	}
	return s
}

// AxisWeights weigh the four axes in the composite. They are used exactly
// as given: no renormalization, sums other than 1 and negative weights are
// the caller's business.
type AxisWeights struct {
	LegislativeProduction float64 `mapstructure:"legislative_production"`
	ControlTransparency   float64 `mapstructure:"control_transparency"`
	EngagementPresence    float64 `mapstructure:"engagement_presence"`
	InstitutionalRoles    float64 `mapstructure:"institutional_roles"`
}

// Config holds every tunable of the scoring engine.
type Config struct {
	Units         UnitPoints
	Questions     CappedRate
	Motions       CappedRate
	Explanations  CappedRate
	Speeches      CappedRate
	AmendmentsCap float64
	AttendanceCap float64

	// RoleCoefficients rank institutional offices; only the single
	// highest-coefficient role a member holds in a term counts, divided
	// by MaxRoleCoefficient to land in [0, 1].
	RoleCoefficients   map[ep.CanonicalRole]float64
	MaxRoleCoefficient float64

	Weights AxisWeights
}

// DefaultConfig returns the published scoring configuration.
func DefaultConfig() Config {
	return Config{
		Units: UnitPoints{
			ReportRapporteur:  5.0,
			ReportShadow:      3.0,
			OpinionRapporteur: 2.0,
			OpinionShadow:     1.0,
		},
		Questions:     CappedRate{Rate: 0.10, Cap: 3.0},
		Motions:       CappedRate{Rate: 0.10, Cap: 3.0},
		Explanations:  CappedRate{Rate: 0.05, Cap: 4.0},
		Speeches:      CappedRate{Rate: 0.04, Cap: 4.0},
		AmendmentsCap: 6.0,
		AttendanceCap: 2.0,
		RoleCoefficients: map[ep.CanonicalRole]float64{
			ep.RoleChamberPresident:     1.2,
			ep.RoleChamberVicePresident: 0.8,
			ep.RoleQuaestor:             0.5,
			ep.RoleCommitteeChair:       1.0,
			ep.RoleCommitteeViceChair:   0.8,
			ep.RoleCommitteeMember:      0.5,
			ep.RoleCommitteeSubstitute:  0.3,
			ep.RoleDelegationChair:      0.8,
			ep.RoleDelegationViceChair:  0.6,
			ep.RoleDelegationMember:     0.4,
			ep.RoleDelegationSubstitute: 0.3,
		},
		MaxRoleCoefficient: 1.2,
		Weights: AxisWeights{
			LegislativeProduction: 0.40,
			ControlTransparency:   0.15,
			EngagementPresence:    0.25,
			InstitutionalRoles:    0.20,
		},
	}
}
