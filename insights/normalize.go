package insights

import "github.com/SujayCh07/codelinc10-sub000/models"

// Risk score weights. The exact numbers are tunable; what must hold is that
// more dependents, more conditions, or less risk comfort never lowers the
// score or the complexity bucket.
const (
	maxRiskFactorScore = 25

	tobaccoWeight    = 3
	disabilityWeight = 2
	conditionWeight  = 2
)

// activityLevelRisk maps self-reported activity level to a base modifier.
// Sedentary lifestyles carry the most risk; unknown levels fall to 1.
var activityLevelRisk = map[string]int{
	"sedentary": 3,
	"light":     2,
	"moderate":  1,
	"high":      0,
}

// highRiskActivities add to the activity modifier on top of the level base.
var highRiskActivities = map[string]bool{
	"contact_sports": true,
	"climbing":       true,
	"motorsports":    true,
	"skydiving":      true,
	"scuba":          true,
}

// Normalize recomputes the derived block from the rest of the profile.
// It is pure and idempotent: nothing outside p.Derived is touched, and the
// derived fields depend only on the non-derived fields.
func Normalize(p models.Profile) models.Profile {
	p.Derived = models.Derived{
		ActivityRiskModifier: activityModifier(p),
		RiskFactorScore:      riskFactorScore(p),
		CoverageComplexity:   coverageComplexity(p),
	}
	return p
}

func activityModifier(p models.Profile) int {
	mod, ok := activityLevelRisk[p.ActivityLevel]
	if !ok {
		mod = 1
	}
	for _, a := range p.Activities {
		if highRiskActivities[a] {
			mod++
		}
	}
	return mod
}

func riskFactorScore(p models.Profile) int {
	score := activityModifier(p)

	// Risk comfort runs 1 (cautious) to 5 (comfortable); lower comfort
	// means more to protect, so it contributes inversely.
	comfort := p.RiskComfort
	if comfort < 1 {
		comfort = 1
	}
	if comfort > 5 {
		comfort = 5
	}
	score += (5 - comfort) * 2

	if p.TobaccoUse != nil && *p.TobaccoUse {
		score += tobaccoWeight
	}
	if p.HasDisability != nil && *p.HasDisability {
		score += disabilityWeight
	}
	score += countConditions(p) * conditionWeight

	return clamp(score, 0, maxRiskFactorScore)
}

// countConditions ignores the "none" sentinel the multi-select uses so an
// explicit "no conditions" answer doesn't read as one condition.
func countConditions(p models.Profile) int {
	n := 0
	for _, c := range p.ChronicConditions {
		if c != "none" {
			n++
		}
	}
	return n
}

// coverageComplexity buckets combined household load: dependents, coverage
// scope, and health conditions. Thresholds chosen so a single added
// dependent or condition can only hold or raise the bucket.
func coverageComplexity(p models.Profile) models.CoverageComplexity {
	points := p.Dependents + countConditions(p)

	switch p.CoverageScope {
	case models.CoverageFamily:
		points += 2
	case models.CoverageSelfSpouse:
		points += 1
	}

	if p.HasDisability != nil && *p.HasDisability {
		points++
	}

	switch {
	case points <= 1:
		return models.ComplexityLow
	case points <= 4:
		return models.ComplexityMedium
	default:
		return models.ComplexityHigh
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
