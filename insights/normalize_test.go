package insights

import (
	"testing"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func baseProfile() models.Profile {
	return models.Profile{
		UserID:        "u1",
		Name:          "Jordan",
		Age:           34,
		Dependents:    1,
		CoverageScope: models.CoverageSelfSpouse,
		RiskComfort:   3,
		ActivityLevel: "moderate",
		SavingsRate:   10,
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(baseProfile())
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeOnlyTouchesDerived(t *testing.T) {
	p := baseProfile()
	normalized := Normalize(p)
	normalized.Derived = p.Derived
	assert.Equal(t, p, normalized)
}

func TestRiskScoreMonotoneInRiskComfort(t *testing.T) {
	p := baseProfile()
	prev := -1
	for comfort := 5; comfort >= 1; comfort-- {
		p.RiskComfort = comfort
		score := Normalize(p).Derived.RiskFactorScore
		require.GreaterOrEqual(t, score, prev, "lowering risk comfort to %d must not lower the score", comfort)
		prev = score
	}
}

func TestRiskScoreMonotoneInConditions(t *testing.T) {
	p := baseProfile()
	p.ChronicConditions = nil
	without := Normalize(p).Derived

	p.ChronicConditions = []string{"asthma"}
	with := Normalize(p).Derived

	assert.GreaterOrEqual(t, with.RiskFactorScore, without.RiskFactorScore)
	assert.True(t, complexityRank(with.CoverageComplexity) >= complexityRank(without.CoverageComplexity))
}

func TestComplexityMonotoneInDependents(t *testing.T) {
	p := baseProfile()
	prev := 0
	for deps := 0; deps <= 6; deps++ {
		p.Dependents = deps
		rank := complexityRank(Normalize(p).Derived.CoverageComplexity)
		require.GreaterOrEqual(t, rank, prev, "adding a dependent must never downgrade the bucket")
		prev = rank
	}
}

func TestNoneConditionDoesNotCount(t *testing.T) {
	p := baseProfile()
	p.ChronicConditions = nil
	clean := Normalize(p).Derived

	p.ChronicConditions = []string{"none"}
	explicitNone := Normalize(p).Derived

	assert.Equal(t, clean, explicitNone)
}

func TestRiskScoreBounded(t *testing.T) {
	p := models.Profile{
		RiskComfort:       1,
		Dependents:        10,
		ActivityLevel:     "sedentary",
		Activities:        []string{"skydiving", "motorsports", "climbing", "scuba", "contact_sports"},
		TobaccoUse:        boolPtr(true),
		HasDisability:     boolPtr(true),
		ChronicConditions: []string{"diabetes", "heart", "asthma", "hypertension"},
	}
	d := Normalize(p).Derived
	assert.LessOrEqual(t, d.RiskFactorScore, maxRiskFactorScore)
	assert.Equal(t, models.ComplexityHigh, d.CoverageComplexity)

	zero := Normalize(models.Profile{}).Derived
	assert.GreaterOrEqual(t, zero.RiskFactorScore, 0)
}

func complexityRank(c models.CoverageComplexity) int {
	switch c {
	case models.ComplexityLow:
		return 0
	case models.ComplexityMedium:
		return 1
	default:
		return 2
	}
}
