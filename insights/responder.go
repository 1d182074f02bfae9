package insights

import (
	"fmt"
	"strings"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

// NoInsightReply is returned for every message until a plan exists.
const NoInsightReply = "I don't have your plan yet. Finish the questionnaire and I'll walk you through your personalized benefits from there."

const genericFallback = "I can help with your timeline, retirement contributions, resources, or your main goal. What would you like to dig into?"

// replyRule is one keyword intent. Rules run in order and the first match
// wins, so the order below is part of the contract: reordering changes
// which reply a mixed-intent message gets.
type replyRule struct {
	keywords []string
	respond  func(*models.Insight) string
}

var replyRules = []replyRule{
	{
		keywords: []string{"timeline", "schedule", "when", "week", "plan ahead"},
		respond: func(in *models.Insight) string {
			first := in.Timeline[0]
			return fmt.Sprintf("Here's your timeline. %s: %s — %s Ask me about the later steps when you're ready.", first.Period, first.Title, first.Description)
		},
	},
	{
		keywords: []string{"retire", "401k", "401(k)", "pension", "contribution"},
		respond: func(in *models.Insight) string {
			for _, pr := range in.Priorities {
				if strings.Contains(strings.ToLower(pr.Title), "retirement") {
					return fmt.Sprintf("On retirement: %s %s", pr.Title+".", pr.Description)
				}
			}
			return "Retirement is worth a spot on your list: enroll in your employer plan at any rate, then revisit the percentage each year."
		},
	},
	{
		keywords: []string{"resource", "link", "read", "learn", "article"},
		respond: func(in *models.Insight) string {
			r := in.Resources[0]
			return fmt.Sprintf("A good place to start: %s — %s (%s)", r.Title, r.Description, r.URL)
		},
	},
	{
		keywords: []string{"goal", "focus", "priority", "first"},
		respond: func(in *models.Insight) string {
			if len(in.Priorities) > 0 {
				p := in.Priorities[0]
				return fmt.Sprintf("Your top priority right now: %s. %s", p.Title, p.Description)
			}
			return in.Statement
		},
	},
	{
		keywords: []string{"hello", "hi ", "hey"},
		respond: func(in *models.Insight) string {
			return fmt.Sprintf("Hi! I'm your benefits assistant. You're set up as a %s on the %s track. Ask me anything about your plan.", in.Persona, strings.ToLower(in.ThemeLabel))
		},
	},
	{
		keywords: []string{"thank", "thanks", "appreciate"},
		respond: func(in *models.Insight) string {
			return "Happy to help. Come back any time your situation changes and we'll refresh the plan."
		},
	},
}

// Reply answers free text against the last-built insight. Deterministic,
// synchronous, no model call. A nil insight short-circuits everything.
func Reply(message string, insight *models.Insight) string {
	if insight == nil {
		return NoInsightReply
	}

	// Pad so the "hi " keyword can match a bare greeting at the end of
	// the input.
	text := " " + strings.ToLower(strings.TrimSpace(message)) + " "

	for _, rule := range replyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.respond(insight)
			}
		}
	}

	if len(insight.SuggestedPrompts) > 0 {
		return fmt.Sprintf("I'm not sure about that one. Try asking: %q", insight.SuggestedPrompts[0])
	}
	return genericFallback
}
