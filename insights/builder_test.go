package insights

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTotalOnZeroProfile(t *testing.T) {
	in := Build(models.Profile{})

	require.Len(t, in.Timeline, 3)
	assert.Equal(t, "This Week", in.Timeline[0].Period)
	assert.Equal(t, "Next 30 Days", in.Timeline[1].Period)
	assert.Equal(t, "This Year", in.Timeline[2].Period)

	assert.NotEmpty(t, in.Resources)
	assert.LessOrEqual(t, len(in.Priorities), MaxPriorities)
	assert.NotEmpty(t, in.Persona)
	assert.NotEmpty(t, in.Statement)
	assert.Equal(t, models.ThemeFoundation, in.Theme)
	assert.NotEmpty(t, in.SuggestedPrompts)
}

func TestEveryThemeHasResources(t *testing.T) {
	for _, theme := range models.AllThemes {
		assert.NotEmpty(t, resourcesForTheme(theme), "theme %q must resolve resources", theme)
	}
	// Unknown keys fall back to foundation rather than failing.
	assert.Equal(t, themeResources[models.ThemeFoundation], resourcesForTheme(models.ThemeKey("bogus")))
}

func TestPersonaCoverageScopeWinsOverRiskComfort(t *testing.T) {
	p := baseProfile()
	p.CoverageScope = models.CoverageFamily
	p.RiskComfort = 5 // would match Growth Seeker if order were ignored
	assert.Equal(t, "Family Protector", classifyPersona(p))
}

func TestPersonaRuleOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.Profile)
		persona string
	}{
		{"dependents imply family", func(p *models.Profile) { p.CoverageScope = ""; p.Dependents = 2 }, "Family Protector"},
		{"spouse scope", func(p *models.Profile) { p.CoverageScope = models.CoverageSelfSpouse; p.Dependents = 0 }, "Partner Planner"},
		{"high comfort", func(p *models.Profile) { p.CoverageScope = models.CoverageSelf; p.Dependents = 0; p.RiskComfort = 4 }, "Growth Seeker"},
		{"low comfort", func(p *models.Profile) { p.CoverageScope = models.CoverageSelf; p.Dependents = 0; p.RiskComfort = 2 }, "Steady Builder"},
		{"default", func(p *models.Profile) { p.CoverageScope = models.CoverageSelf; p.Dependents = 0; p.RiskComfort = 3 }, defaultPersona},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProfile()
			tc.mutate(&p)
			assert.Equal(t, tc.persona, classifyPersona(p))
		})
	}
}

func TestThemeClassification(t *testing.T) {
	cases := map[string]models.ThemeKey{
		"retirement":        models.ThemeRetirement,
		"buy a home":        models.ThemeHome,
		"protect my family": models.ThemeProtection,
		"emergency savings": models.ThemeSavings,
		"other":             models.ThemeFoundation,
		"":                  models.ThemeFoundation,
	}
	for goal, want := range cases {
		p := models.Profile{PrimaryGoal: goal}
		assert.Equal(t, want, classifyTheme(p), "goal %q", goal)
	}
}

func TestPrioritySlotVariants(t *testing.T) {
	p := baseProfile()
	p.PrimaryGoal = "retirement"
	p.HasExistingCoverage = boolPtr(false)
	p.ContributesRetirement = boolPtr(true)
	p.RetirementContributionRate = 6

	got := Build(p).Priorities
	require.Len(t, got, 3)
	assert.Equal(t, "Act on your goal", got[0].Title)
	assert.Equal(t, "Close your coverage gap", got[1].Title)
	assert.Equal(t, "Optimize your retirement rate", got[2].Title)
	assert.Contains(t, got[2].Description, "6%")

	p.PrimaryGoal = ""
	p.HasExistingCoverage = boolPtr(true)
	p.ContributesRetirement = nil
	got = Build(p).Priorities
	require.Len(t, got, 3)
	assert.Equal(t, "Pick one financial goal", got[0].Title)
	assert.Equal(t, "Review your current coverage", got[1].Title)
	assert.Equal(t, "Start a retirement contribution", got[2].Title)
}

func TestConversationSkipsEmptyMilestone(t *testing.T) {
	p := baseProfile()
	in := Build(p)
	require.Len(t, in.Conversation, 2)
	for _, turn := range in.Conversation {
		assert.NotEmpty(t, turn.Message)
	}

	p.Milestone = "a down payment"
	in = Build(p)
	require.Len(t, in.Conversation, 4)
	// Turns alternate user/assistant.
	for i, turn := range in.Conversation {
		if i%2 == 0 {
			assert.Equal(t, models.SpeakerUser, turn.Speaker)
		} else {
			assert.Equal(t, models.SpeakerAssistant, turn.Speaker)
		}
	}
	assert.Contains(t, in.Conversation[2].Message, "a down payment")
}

func TestPromptsFollowRetirementFlag(t *testing.T) {
	p := baseProfile()
	p.ContributesRetirement = boolPtr(true)
	prompts := Build(p).SuggestedPrompts
	assert.Contains(t, prompts, "How do I get more from my 401(k)?")

	p.ContributesRetirement = boolPtr(false)
	prompts = Build(p).SuggestedPrompts
	assert.Contains(t, prompts, "How do I start saving for retirement?")

	for _, prompts := range [][]string{Build(p).SuggestedPrompts, Build(models.Profile{}).SuggestedPrompts} {
		assert.GreaterOrEqual(t, len(prompts), 2)
		assert.LessOrEqual(t, len(prompts), 3)
	}
}

func TestStatementUsesPreferredName(t *testing.T) {
	p := baseProfile()
	p.Name = "Jordan Alvarez"
	p.PreferredName = "Jo"
	assert.True(t, strings.HasPrefix(Build(p).Statement, "Jo,"))
}

func TestMergeEnrichmentPolicy(t *testing.T) {
	local := Build(baseProfile())

	merged := MergeEnrichment(local, models.InsightEnrichment{
		Persona:   "Remote Persona",
		Statement: "Remote statement.",
		Theme:     string(models.ThemeRetirement),
	})

	assert.Equal(t, "Remote Persona", merged.Persona)
	assert.Equal(t, "Remote statement.", merged.Statement)
	assert.Equal(t, models.ThemeRetirement, merged.Theme)
	assert.Equal(t, themeResources[models.ThemeRetirement], merged.Resources)

	// Locally computed fields always survive.
	assert.Equal(t, local.Timeline, merged.Timeline)
	assert.Equal(t, local.Priorities, merged.Priorities)
	assert.Equal(t, local.Conversation, merged.Conversation)

	// Empty or invalid remote fields leave the local values alone.
	untouched := MergeEnrichment(local, models.InsightEnrichment{Theme: "astrology"})
	assert.Equal(t, local.Persona, untouched.Persona)
	assert.Equal(t, local.Theme, untouched.Theme)
}

func TestProfileRoundTrip(t *testing.T) {
	p := baseProfile()
	p.PhysicallyActive = boolPtr(true)
	p.Activities = []string{"running", "gym"}
	// TobaccoUse left nil: must come back nil, not false.

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back models.Profile
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)
	assert.Nil(t, back.TobaccoUse)
	require.NotNil(t, back.PhysicallyActive)
	assert.True(t, *back.PhysicallyActive)
}

func TestInsightRoundTrip(t *testing.T) {
	in := Build(baseProfile())
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var back models.Insight
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, in, back)
}
