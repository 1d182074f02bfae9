package insights

import (
	"testing"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(speaker, message string, ts int64) models.ChatEntry {
	return models.ChatEntry{Speaker: speaker, Message: message, Timestamp: ts, Status: models.ChatStatusFinal}
}

func TestMergeHistoryDropsDuplicateIgnoringTimestamp(t *testing.T) {
	existing := []models.ChatEntry{entry(models.SpeakerAssistant, "Hello", 100)}
	incoming := []models.ChatEntry{
		entry(models.SpeakerAssistant, "Hello", 200),
		entry(models.SpeakerUser, "Thanks", 300),
	}

	merged := MergeHistory(existing, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, int64(100), merged[0].Timestamp) // first occurrence wins
	assert.Equal(t, models.SpeakerUser, merged[1].Speaker)
	assert.Equal(t, "Thanks", merged[1].Message)
}

func TestMergeHistorySameTextDifferentSpeakers(t *testing.T) {
	existing := []models.ChatEntry{entry(models.SpeakerUser, "Hello", 1)}
	incoming := []models.ChatEntry{entry(models.SpeakerAssistant, "Hello", 2)}
	assert.Len(t, MergeHistory(existing, incoming), 2)
}

func TestMergeHistoryPreservesOrder(t *testing.T) {
	existing := []models.ChatEntry{
		entry(models.SpeakerUser, "a", 3),
		entry(models.SpeakerAssistant, "b", 1),
	}
	incoming := []models.ChatEntry{
		entry(models.SpeakerUser, "c", 2),
		entry(models.SpeakerAssistant, "d", 0),
	}

	merged := MergeHistory(existing, incoming)
	require.Len(t, merged, 4)
	for i, want := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, want, merged[i].Message)
	}
}

func TestMergeHistoryEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeHistory(nil, nil))
	one := []models.ChatEntry{entry(models.SpeakerUser, "x", 1)}
	assert.Equal(t, one, MergeHistory(one, nil))
	assert.Equal(t, one, MergeHistory(nil, one))
}

func TestFinalizePendingReplacesInPlace(t *testing.T) {
	history := []models.ChatEntry{
		entry(models.SpeakerUser, "question", 1),
		{Speaker: models.SpeakerAssistant, Message: "…", Timestamp: 2, Status: models.ChatStatusPending},
	}

	final := FinalizePending(history, models.SpeakerAssistant, "answer", 3)
	require.Len(t, final, 2)
	assert.Equal(t, "answer", final[1].Message)
	assert.Equal(t, models.ChatStatusFinal, final[1].Status)
}

func TestFinalizePendingAppendsWhenNoPending(t *testing.T) {
	history := []models.ChatEntry{entry(models.SpeakerUser, "question", 1)}
	final := FinalizePending(history, models.SpeakerAssistant, "answer", 2)
	require.Len(t, final, 2)
	assert.Equal(t, models.ChatStatusFinal, final[1].Status)
}
