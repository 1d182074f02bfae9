package insights

import "github.com/SujayCh07/codelinc10-sub000/models"

// MergeHistory appends new chat entries onto an existing log, dropping any
// entry whose (speaker, message) pair already appeared. Timestamps are
// deliberately not part of the key, so the same text from the same speaker
// is a duplicate even minutes apart. Existing entries keep their order;
// admitted entries follow in their given order. Nothing is ever reordered.
func MergeHistory(existing, incoming []models.ChatEntry) []models.ChatEntry {
	type key struct {
		speaker string
		message string
	}

	seen := make(map[key]bool, len(existing)+len(incoming))
	merged := make([]models.ChatEntry, 0, len(existing)+len(incoming))

	for _, e := range existing {
		k := key{e.Speaker, e.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, e)
	}
	for _, e := range incoming {
		k := key{e.Speaker, e.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, e)
	}

	return merged
}

// FinalizePending replaces the pending entry matching the given speaker
// with its final text in place of creating a duplicate turn. If no pending
// entry exists the final entry is appended instead.
func FinalizePending(history []models.ChatEntry, speaker, message string, timestamp int64) []models.ChatEntry {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Speaker == speaker && history[i].Status == models.ChatStatusPending {
			history[i].Message = message
			history[i].Timestamp = timestamp
			history[i].Status = models.ChatStatusFinal
			return history
		}
	}
	return append(history, models.ChatEntry{
		Speaker:   speaker,
		Message:   message,
		Timestamp: timestamp,
		Status:    models.ChatStatusFinal,
	})
}
