package models

import "time"

// ThemeKey classifies the plan around a single financial theme.
type ThemeKey string

const (
	ThemeRetirement ThemeKey = "retirement"
	ThemeProtection ThemeKey = "protection"
	ThemeHome       ThemeKey = "home"
	ThemeSavings    ThemeKey = "savings"
	ThemeFoundation ThemeKey = "foundation"
)

// AllThemes lists every theme key. Order matters nowhere; this exists so
// static-table tests can check coverage.
var AllThemes = []ThemeKey{
	ThemeRetirement,
	ThemeProtection,
	ThemeHome,
	ThemeSavings,
	ThemeFoundation,
}

// Priority is one recommended action, highest priority first.
type Priority struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// Resource is a link into the benefits resource library.
type Resource struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	URL         string `json:"url" bson:"url"`
}

// TimelineEntry is one of the three fixed plan periods.
type TimelineEntry struct {
	Period      string `json:"period" bson:"period"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// ConversationTurn is one line of the canned conversation preview embedded
// in an insight. Distinct from ChatEntry, which is the live chat log.
type ConversationTurn struct {
	Speaker string `json:"speaker" bson:"speaker"`
	Message string `json:"message" bson:"message"`
}

// Insight is the full derived output for one profile snapshot. It is always
// rebuilt wholesale; nothing mutates one in place.
type Insight struct {
	UserID           string             `json:"user_id" bson:"user_id"`
	Persona          string             `json:"persona" bson:"persona"`
	Statement        string             `json:"statement" bson:"statement"`
	Theme            ThemeKey           `json:"theme" bson:"theme"`
	ThemeLabel       string             `json:"theme_label" bson:"theme_label"`
	Priorities       []Priority         `json:"priorities" bson:"priorities"`
	Resources        []Resource         `json:"resources" bson:"resources"`
	Timeline         []TimelineEntry    `json:"timeline" bson:"timeline"`
	Conversation     []ConversationTurn `json:"conversation" bson:"conversation"`
	SuggestedPrompts []string           `json:"suggested_prompts" bson:"suggested_prompts"`
	GeneratedAt      time.Time          `json:"generated_at" bson:"generated_at"`
}

// InsightEnrichment is the partial insight an external AI service may
// return. Only these fields are ever merged over the local computation.
type InsightEnrichment struct {
	Persona   string `json:"persona" bson:"persona"`
	Statement string `json:"statement" bson:"statement"`
	Theme     string `json:"theme" bson:"theme"`
}

// EnrichmentRequest is the payload published to the enrichment request
// topic when an insight is generated.
type EnrichmentRequest struct {
	RequestID string  `json:"request_id"`
	UserID    string  `json:"user_id"`
	Profile   Profile `json:"profile"`
}

// EnrichmentResponse is the payload consumed from the enrichment response
// topic. Error responses are dropped; the local insight stands.
type EnrichmentResponse struct {
	RequestID  string            `json:"request_id"`
	UserID     string            `json:"user_id"`
	Enrichment InsightEnrichment `json:"enrichment"`
	Error      bool              `json:"error"`
}
