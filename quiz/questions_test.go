package quiz

import "testing"

func TestAllQuestions_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range AllQuestions() {
		if seen[q.ID] {
			t.Errorf("duplicate question id: %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestAllQuestions_ValidTypes(t *testing.T) {
	valid := map[QuestionType]bool{
		TypeText: true, TypeNumber: true, TypeDate: true, TypeSelect: true,
		TypeSlider: true, TypeBoolean: true, TypeMultiSelect: true,
	}
	for _, q := range AllQuestions() {
		if !valid[q.Type] {
			t.Errorf("question %s has invalid type %q", q.ID, q.Type)
		}
	}
}

func TestAllQuestions_ChoiceTypesHaveOptions(t *testing.T) {
	for _, q := range AllQuestions() {
		if q.Type == TypeSelect || q.Type == TypeMultiSelect {
			if len(q.Options) == 0 {
				t.Errorf("question %s has no options", q.ID)
			}
		}
	}
}

func TestAllQuestions_NumericBounds(t *testing.T) {
	for _, q := range AllQuestions() {
		if q.Type == TypeNumber || q.Type == TypeSlider {
			if q.Max <= q.Min {
				t.Errorf("question %s has bounds min=%d max=%d", q.ID, q.Min, q.Max)
			}
		}
	}
}

func TestAllQuestions_FollowUpsExistAndAreConditional(t *testing.T) {
	for _, q := range AllQuestions() {
		if q.FollowUp == "" {
			continue
		}
		target, ok := QuestionByID(q.FollowUp)
		if !ok {
			t.Errorf("question %s names missing follow-up %s", q.ID, q.FollowUp)
			continue
		}
		// A follow-up only applies when its trigger answer is set, so it
		// must carry a condition over the triggering field.
		if target.Condition == nil {
			t.Errorf("follow-up question %s has no condition", target.ID)
		}
	}
}

func TestAllQuestions_TitlesAndPrompts(t *testing.T) {
	for _, q := range AllQuestions() {
		if q.ID == "" || q.Title == "" || q.Prompt == "" {
			t.Errorf("question %+v missing id, title, or prompt", q)
		}
	}
}
