package models

// Speakers for chat entries and conversation turns.
const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// ChatEntry statuses. A pending entry is an in-flight reply and is replaced,
// never duplicated, by its final entry.
const (
	ChatStatusPending = "pending"
	ChatStatusFinal   = "final"
)

// ChatEntry is one turn in the persisted chat log.
type ChatEntry struct {
	ID        string `json:"id" bson:"id"`
	UserID    string `json:"user_id" bson:"user_id"`
	Speaker   string `json:"speaker" bson:"speaker"`
	Message   string `json:"message" bson:"message"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
	Status    string `json:"status" bson:"status"`
}
