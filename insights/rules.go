package insights

import (
	"strings"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

// personaRule is one row of the persona classification table. Rules are
// evaluated top to bottom and the first match wins, so overlapping
// predicates (family coverage plus high risk comfort, say) resolve by
// position, not by accident of code layout.
type personaRule struct {
	name  string
	match func(models.Profile) bool
}

var personaRules = []personaRule{
	{
		name: "Family Protector",
		match: func(p models.Profile) bool {
			return p.CoverageScope == models.CoverageFamily || p.Dependents > 0
		},
	},
	{
		name: "Partner Planner",
		match: func(p models.Profile) bool {
			return p.CoverageScope == models.CoverageSelfSpouse
		},
	},
	{
		name: "Growth Seeker",
		match: func(p models.Profile) bool {
			return p.RiskComfort >= 4
		},
	},
	{
		name: "Steady Builder",
		match: func(p models.Profile) bool {
			return p.RiskComfort > 0 && p.RiskComfort <= 2
		},
	},
}

const defaultPersona = "Foundation Builder"

func classifyPersona(p models.Profile) string {
	for _, r := range personaRules {
		if r.match(p) {
			return r.name
		}
	}
	return defaultPersona
}

// themeRule maps a stated goal onto a plan theme. Same ordered-table,
// first-match-wins contract as personaRules; foundation is the catch-all.
type themeRule struct {
	theme models.ThemeKey
	match func(goal string) bool
}

var themeRules = []themeRule{
	{models.ThemeRetirement, goalContains("retire", "401k", "pension")},
	{models.ThemeHome, goalContains("home", "house", "mortgage")},
	{models.ThemeProtection, goalContains("protect", "family", "insurance")},
	{models.ThemeSavings, goalContains("save", "saving", "emergency", "debt")},
}

func goalContains(words ...string) func(string) bool {
	return func(goal string) bool {
		for _, w := range words {
			if strings.Contains(goal, w) {
				return true
			}
		}
		return false
	}
}

func classifyTheme(p models.Profile) models.ThemeKey {
	goal := strings.ToLower(p.PrimaryGoal)
	for _, r := range themeRules {
		if r.match(goal) {
			return r.theme
		}
	}
	return models.ThemeFoundation
}

var themeLabels = map[models.ThemeKey]string{
	models.ThemeRetirement: "Retirement Readiness",
	models.ThemeProtection: "Family Protection",
	models.ThemeHome:       "Path to Homeownership",
	models.ThemeSavings:    "Savings Momentum",
	models.ThemeFoundation: "Financial Foundation",
}

func themeLabel(t models.ThemeKey) string {
	if label, ok := themeLabels[t]; ok {
		return label
	}
	return themeLabels[models.ThemeFoundation]
}
