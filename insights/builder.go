package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

// MaxPriorities caps the priority list. There are exactly three fixed
// slots, so dedup can only shrink the list, never grow past the cap.
const MaxPriorities = 3

// Build derives the full insight for one profile snapshot. It is total:
// any profile, including the zero value, produces a complete insight with
// three timeline entries, a non-empty resource list, and at most
// MaxPriorities priorities. It never returns an error and never panics.
func Build(p models.Profile) models.Insight {
	p = Normalize(p)

	persona := classifyPersona(p)
	theme := classifyTheme(p)

	return models.Insight{
		UserID:           p.UserID,
		Persona:          persona,
		Statement:        statement(p, persona, theme),
		Theme:            theme,
		ThemeLabel:       themeLabel(theme),
		Priorities:       buildPriorities(p, theme),
		Resources:        resourcesForTheme(theme),
		Timeline:         buildTimeline(p, theme),
		Conversation:     buildConversation(p, persona, theme),
		SuggestedPrompts: buildPrompts(p, theme),
		GeneratedAt:      time.Now().UTC(),
	}
}

func statement(p models.Profile, persona string, theme models.ThemeKey) string {
	name := displayName(p)
	base := fmt.Sprintf("%s, your profile points to a %s focus.", name, strings.ToLower(themeLabel(theme)))
	switch p.Derived.CoverageComplexity {
	case models.ComplexityHigh:
		return base + " Your household has a lot of moving parts, so coordinating coverage comes first."
	case models.ComplexityMedium:
		return base + " A few coverage decisions now will keep the rest of your plan simple."
	default:
		return base + " Your situation is straightforward, which makes this a great time to build habits."
	}
}

func displayName(p models.Profile) string {
	if p.PreferredName != "" {
		return p.PreferredName
	}
	if p.Name != "" {
		return p.Name
	}
	return "Friend"
}

// buildPriorities fills three fixed slots in order: the goal action, the
// protection check, and the retirement habit. Each slot picks one of two
// pre-authored variants from a profile flag. Results are deduped by title
// and capped.
func buildPriorities(p models.Profile, theme models.ThemeKey) []models.Priority {
	var out []models.Priority

	// Slot 1: immediate goal-related action.
	if p.PrimaryGoal != "" {
		out = append(out, models.Priority{
			Title:       "Act on your goal",
			Description: fmt.Sprintf("Take the first concrete step toward %q this week: write down the target amount and date.", p.PrimaryGoal),
		})
	} else {
		out = append(out, models.Priority{
			Title:       "Pick one financial goal",
			Description: "Choose a single goal to anchor your plan. Everything else gets easier once one thing matters most.",
		})
	}

	// Slot 2: protection and coverage check.
	if p.HasExistingCoverage != nil && *p.HasExistingCoverage {
		out = append(out, models.Priority{
			Title:       "Review your current coverage",
			Description: "Confirm your existing elections still match your household. Life changes outdate coverage quietly.",
		})
	} else {
		out = append(out, models.Priority{
			Title:       "Close your coverage gap",
			Description: "You reported no active coverage. Compare the plans available to you and enroll in at least baseline protection.",
		})
	}

	// Slot 3: retirement and growth habit.
	if p.ContributesRetirement != nil && *p.ContributesRetirement {
		out = append(out, models.Priority{
			Title:       "Optimize your retirement rate",
			Description: fmt.Sprintf("You are already contributing %d%%. Check whether a one-point bump still fits your budget and captures the full employer match.", p.RetirementContributionRate),
		})
	} else {
		out = append(out, models.Priority{
			Title:       "Start a retirement contribution",
			Description: "Enroll in your employer plan at any rate. Starting matters far more than the starting percentage.",
		})
	}

	return capPriorities(dedupePriorities(out))
}

func dedupePriorities(in []models.Priority) []models.Priority {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, pr := range in {
		if seen[pr.Title] {
			continue
		}
		seen[pr.Title] = true
		out = append(out, pr)
	}
	return out
}

func capPriorities(in []models.Priority) []models.Priority {
	if len(in) > MaxPriorities {
		return in[:MaxPriorities]
	}
	return in
}

// Fixed timeline periods, always emitted in this order.
const (
	periodWeek  = "This Week"
	periodMonth = "Next 30 Days"
	periodYear  = "This Year"
)

func buildTimeline(p models.Profile, theme models.ThemeKey) []models.TimelineEntry {
	scope := coverageScopeLabel(p.CoverageScope)
	goal := p.PrimaryGoal
	if goal == "" {
		goal = "your financial foundation"
	}

	return []models.TimelineEntry{
		{
			Period:      periodWeek,
			Title:       "Get oriented",
			Description: fmt.Sprintf("Read through your %s options for %s and note anything unclear.", strings.ToLower(themeLabel(theme)), scope),
		},
		{
			Period:      periodMonth,
			Title:       "Lock in the basics",
			Description: fmt.Sprintf("Finalize your elections and set your savings rate. You indicated %d%% today; automate it so it happens without you.", p.SavingsRate),
		},
		{
			Period:      periodYear,
			Title:       "Build toward the goal",
			Description: fmt.Sprintf("Revisit quarterly and measure progress against %s. Adjust rates as your income changes.", goal),
		},
	}
}

func coverageScopeLabel(scope string) string {
	switch scope {
	case models.CoverageFamily:
		return "family coverage"
	case models.CoverageSelfSpouse:
		return "you and your partner"
	default:
		return "individual coverage"
	}
}

// buildConversation assembles the canned preview: up to four alternating
// turns. Turns whose triggering field is empty are skipped entirely; an
// empty-message turn is never emitted.
func buildConversation(p models.Profile, persona string, theme models.ThemeKey) []models.ConversationTurn {
	var turns []models.ConversationTurn

	turns = append(turns, models.ConversationTurn{
		Speaker: models.SpeakerUser,
		Message: "What should I focus on first?",
	})
	turns = append(turns, models.ConversationTurn{
		Speaker: models.SpeakerAssistant,
		Message: fmt.Sprintf("As a %s, your first move is the %s track. Start with the top item on your priority list.", persona, strings.ToLower(themeLabel(theme))),
	})

	if p.Milestone != "" {
		turns = append(turns, models.ConversationTurn{
			Speaker: models.SpeakerUser,
			Message: fmt.Sprintf("I'm working toward %s.", p.Milestone),
		})
		turns = append(turns, models.ConversationTurn{
			Speaker: models.SpeakerAssistant,
			Message: fmt.Sprintf("That's a strong milestone. Your timeline already folds %s into the This Year step, so keep it visible.", p.Milestone),
		})
	}

	return turns
}

// buildPrompts picks two or three chat-starter hints using the same flags
// as the priority slots.
func buildPrompts(p models.Profile, theme models.ThemeKey) []string {
	prompts := []string{"What's on my timeline this week?"}

	if p.ContributesRetirement != nil && *p.ContributesRetirement {
		prompts = append(prompts, "How do I get more from my 401(k)?")
	} else {
		prompts = append(prompts, "How do I start saving for retirement?")
	}

	if theme != models.ThemeFoundation {
		prompts = append(prompts, fmt.Sprintf("Show me resources for %s.", strings.ToLower(themeLabel(theme))))
	}

	return prompts
}

// MergeEnrichment applies a remote enrichment to a locally built insight
// under the fixed merge policy: persona, statement, and theme may be
// overridden when present; timeline, priorities, and conversation always
// stay local. The input insight is not mutated.
func MergeEnrichment(local models.Insight, enrichment models.InsightEnrichment) models.Insight {
	merged := local
	if enrichment.Persona != "" {
		merged.Persona = enrichment.Persona
	}
	if enrichment.Statement != "" {
		merged.Statement = enrichment.Statement
	}
	if t := models.ThemeKey(enrichment.Theme); t != "" && validTheme(t) {
		merged.Theme = t
		merged.ThemeLabel = themeLabel(t)
		merged.Resources = resourcesForTheme(t)
	}
	return merged
}

func validTheme(t models.ThemeKey) bool {
	for _, known := range models.AllThemes {
		if t == known {
			return true
		}
	}
	return false
}
