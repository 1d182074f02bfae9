package quiz

import (
	"testing"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func questionIDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestQuestionsForConditionalInclusion(t *testing.T) {
	p := models.Profile{PhysicallyActive: boolPtr(false)}
	assert.NotContains(t, questionIDs(QuestionsFor(p)), "activities")

	p.PhysicallyActive = boolPtr(true)
	assert.Contains(t, questionIDs(QuestionsFor(p)), "activities")

	// Unanswered behaves like excluded.
	assert.NotContains(t, questionIDs(QuestionsFor(models.Profile{})), "activities")
}

func TestQuestionsForPreservesMasterOrder(t *testing.T) {
	p := models.Profile{
		PhysicallyActive:      boolPtr(true),
		ContributesRetirement: boolPtr(true),
		EducationLevel:        "bachelors",
		CoverageScope:         models.CoverageFamily,
	}
	included := questionIDs(QuestionsFor(p))
	require.Len(t, included, len(AllQuestions()))

	master := questionIDs(AllQuestions())
	assert.Equal(t, master, included)
}

func TestApplyAnswerClearsActivities(t *testing.T) {
	p := models.Profile{
		PhysicallyActive: boolPtr(true),
		Activities:       []string{"running", "gym"},
	}

	p = ApplyAnswer(p, "physically_active", false)
	assert.Empty(t, p.Activities)
	require.NotNil(t, p.PhysicallyActive)
	assert.False(t, *p.PhysicallyActive)

	// Setting back to true does not resurrect the old list.
	p = ApplyAnswer(p, "physically_active", true)
	assert.Empty(t, p.Activities)
}

func TestApplyAnswerUnknownIDIsNoOp(t *testing.T) {
	p := models.Profile{Name: "Jordan"}
	assert.Equal(t, p, ApplyAnswer(p, "favorite_color", "blue"))
}

func TestApplyAnswerCoercions(t *testing.T) {
	var p models.Profile

	p = ApplyAnswer(p, "age", float64(34)) // JSON numbers arrive as float64
	assert.Equal(t, 34, p.Age)

	p = ApplyAnswer(p, "savings_rate", 12)
	assert.Equal(t, 12, p.SavingsRate)

	p = ApplyAnswer(p, "investing", true)
	require.NotNil(t, p.Investing)
	assert.True(t, *p.Investing)

	p = ApplyAnswer(p, "activities", []any{"running", "gym"})
	p.PhysicallyActive = boolPtr(true)
	assert.Equal(t, []string{"running", "gym"}, p.Activities)

	p = ApplyAnswer(p, "employment_start_date", "2021-06-01")
	assert.Equal(t, "2021-06-01", p.EmploymentStartDate)

	// Mistyped values coerce to zero values rather than failing.
	p = ApplyAnswer(p, "age", "not a number")
	assert.Equal(t, 0, p.Age)
}

func TestValidAnswerPerType(t *testing.T) {
	cases := []struct {
		qtype QuestionType
		value any
		want  bool
	}{
		{TypeText, "hello", true},
		{TypeText, "   ", false},
		{TypeText, "", false},
		{TypeNumber, float64(5), true},
		{TypeNumber, "five", false},
		{TypeSlider, 3, true},
		{TypeDate, "2021-06-01", true},
		{TypeDate, "", false},
		{TypeSelect, "single", true},
		{TypeSelect, "", false},
		{TypeBoolean, true, true},
		{TypeBoolean, false, true},
		{TypeBoolean, nil, false},
		{TypeMultiSelect, []string{"running"}, true},
		{TypeMultiSelect, []string{}, false},
		{TypeMultiSelect, nil, false},
	}
	for _, tc := range cases {
		got := ValidAnswer(Question{Type: tc.qtype}, tc.value)
		assert.Equal(t, tc.want, got, "type %s value %v", tc.qtype, tc.value)
	}
}

func TestIsAnsweredReadsProfile(t *testing.T) {
	q, ok := QuestionByID("has_existing_coverage")
	require.True(t, ok)

	assert.False(t, IsAnswered(q, models.Profile{}))
	assert.True(t, IsAnswered(q, models.Profile{HasExistingCoverage: boolPtr(false)}))
}

func TestClampPosition(t *testing.T) {
	qs := QuestionsFor(models.Profile{})

	assert.Equal(t, 0, ClampPosition(qs, -1))
	assert.Equal(t, 3, ClampPosition(qs, 3))
	assert.Equal(t, len(qs)-1, ClampPosition(qs, len(qs)+10))
	assert.Equal(t, 0, ClampPosition(nil, 5))
}

func TestFlowShrinkClamps(t *testing.T) {
	p := models.Profile{PhysicallyActive: boolPtr(true)}
	long := QuestionsFor(p)

	// User sits on the last question, then an earlier answer removes it.
	pos := len(long) - 1
	p = ApplyAnswer(p, "physically_active", false)
	short := QuestionsFor(p)

	clamped := ClampPosition(short, pos)
	assert.Less(t, clamped, len(short))
	assert.GreaterOrEqual(t, clamped, 0)
}
