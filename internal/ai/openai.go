package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripmate/internal/bot"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// httpClient is used for all OpenAI requests; the 60s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 60 * time.Second}

// OpenAICollaborator is a fallback bot.Collaborator speaking the OpenAI chat
// completions API directly. Used when no Gemini key is configured.
type OpenAICollaborator struct {
	apiKey   string
	model    string
	endpoint string
}

func NewOpenAICollaborator(apiKey string) *OpenAICollaborator {
	return &OpenAICollaborator{apiKey: apiKey, model: "gpt-4o-mini", endpoint: openAIEndpoint}
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ExtractTripDetails implements bot.Collaborator.
func (p *OpenAICollaborator) ExtractTripDetails(ctx context.Context, message string) (*bot.TripDetails, error) {
	raw, err := p.complete(ctx, analysisInstruction, fmt.Sprintf("Analyze this travel request: %q", message))
	if err != nil {
		return nil, err
	}

	var wire struct {
		StartPoint     *string  `json:"startPoint"`
		Destination    *string  `json:"destination"`
		DurationInDays *float64 `json:"durationInDays"`
	}
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &wire); err != nil {
		return nil, fmt.Errorf("openai: parse extraction response: %w", err)
	}

	details := &bot.TripDetails{
		StartPoint:  nonEmpty(wire.StartPoint),
		Destination: nonEmpty(wire.Destination),
	}
	if wire.DurationInDays != nil && *wire.DurationInDays > 0 {
		n := int(*wire.DurationInDays)
		details.DurationInDays = &n
	}
	return details, nil
}

// GenerateItinerary implements bot.Collaborator.
func (p *OpenAICollaborator) GenerateItinerary(ctx context.Context, req *bot.TravelPlanRequest) (*bot.StructuredBotResponse, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: encode request: %w", err)
	}

	raw, err := p.complete(ctx, itineraryInstruction, fmt.Sprintf("Here are my travel preferences, please create a plan: %s", reqJSON))
	if err != nil {
		return nil, err
	}

	var result bot.StructuredBotResponse
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &result); err != nil {
		return nil, fmt.Errorf("openai: parse itinerary response: %w", err)
	}
	if result.Introduction == "" && len(result.Itinerary) == 0 {
		return nil, fmt.Errorf("openai: returned an empty itinerary")
	}
	return &result, nil
}

// complete sends one system+user exchange and returns the reply text.
func (p *OpenAICollaborator) complete(ctx context.Context, system, user string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai: API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: API returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// nonEmpty trims a wire string and drops it entirely when blank, matching
// the Gemini extraction normalization.
func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
