package insights

import (
	"testing"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/stretchr/testify/assert"
)

func builtInsight(t *testing.T) *models.Insight {
	t.Helper()
	in := Build(baseProfile())
	return &in
}

func TestReplyWithoutInsight(t *testing.T) {
	for _, msg := range []string{"", "hello", "what's my timeline?", "401k please"} {
		assert.Equal(t, NoInsightReply, Reply(msg, nil), "input %q", msg)
	}
}

func TestTimelineBeatsRetirement(t *testing.T) {
	in := builtInsight(t)
	reply := Reply("review my timeline for retirement", in)
	assert.Contains(t, reply, in.Timeline[0].Title)
	assert.NotContains(t, reply, "employer plan")
}

func TestRetirementIntent(t *testing.T) {
	p := baseProfile()
	p.ContributesRetirement = boolPtr(false)
	in := Build(p)
	reply := Reply("should I put money in a 401k?", &in)
	assert.Contains(t, reply, "retirement")
}

func TestResourceIntent(t *testing.T) {
	in := builtInsight(t)
	reply := Reply("got any links I can read?", in)
	assert.Contains(t, reply, in.Resources[0].Title)
	assert.Contains(t, reply, in.Resources[0].URL)
}

func TestGoalIntent(t *testing.T) {
	in := builtInsight(t)
	reply := Reply("what should my focus be?", in)
	assert.Contains(t, reply, in.Priorities[0].Title)
}

func TestGreetingAndThanks(t *testing.T) {
	in := builtInsight(t)
	assert.Contains(t, Reply("hello there", in), in.Persona)
	assert.Contains(t, Reply("thanks so much", in), "Happy to help")
}

func TestFallbackUsesSuggestedPrompt(t *testing.T) {
	in := builtInsight(t)
	reply := Reply("tell me about quantum gardening", in)
	assert.Contains(t, reply, in.SuggestedPrompts[0])
}

func TestGenericFallbackWithoutPrompts(t *testing.T) {
	in := builtInsight(t)
	in.SuggestedPrompts = nil
	assert.Equal(t, genericFallback, Reply("tell me about quantum gardening", in))
}
