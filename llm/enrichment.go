package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

type OpenAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Message Message `json:"message"`
}

type OpenAIResponse struct {
	Choices []Choice `json:"choices"`
}

const enrichmentSystemPrompt = `You personalize benefits guidance. Given a user's profile JSON, return a JSON object with exactly three string fields: "persona" (a two-word label), "statement" (one or two warm sentences about their situation), and "theme" (one of: retirement, protection, home, savings, foundation). Return only the JSON object.`

// GenerateEnrichment asks the model for persona/statement/theme overrides.
// Callers treat this as best effort: on any error the locally computed
// insight is used unmodified and nothing is surfaced to the user.
func GenerateEnrichment(profile *models.Profile) (*models.InsightEnrichment, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	reqBody := OpenAIRequest{
		Model:       "gpt-4o-mini",
		MaxTokens:   200,
		Temperature: 0.4,
		Messages: []Message{
			{Role: "system", Content: enrichmentSystemPrompt},
			{Role: "user", Content: string(profileJSON)},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", openaiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("OPENAI_API_KEY"))

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var openaiResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, err
	}

	if len(openaiResp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return parseEnrichment(openaiResp.Choices[0].Message.Content)
}

// Models occasionally wrap JSON in markdown fences; strip anything outside
// the outermost braces before decoding.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func parseEnrichment(content string) (*models.InsightEnrichment, error) {
	raw := jsonObjectRe.FindString(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var enrichment models.InsightEnrichment
	if err := json.Unmarshal([]byte(raw), &enrichment); err != nil {
		return nil, fmt.Errorf("error decoding enrichment: %v", err)
	}
	return &enrichment, nil
}
