package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripmate/internal/bot"
)

const geminiModel = "gemini-2.0-flash"

// GeminiCollaborator implements bot.Collaborator using Google's Gemini
// models: one low-temperature model for request analysis and one for
// itinerary generation. Both are forced into JSON output mode.
type GeminiCollaborator struct {
	client       *genai.Client
	extractModel *genai.GenerativeModel
	planModel    *genai.GenerativeModel
}

// NewGeminiCollaborator initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiCollaborator(ctx context.Context, apiKey string) (*GeminiCollaborator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	extract := client.GenerativeModel(geminiModel)
	extract.ResponseMIMEType = "application/json"
	// Extraction should be deterministic; keep the temperature near zero.
	extract.SetTemperature(0.1)

	plan := client.GenerativeModel(geminiModel)
	plan.ResponseMIMEType = "application/json"
	// Itinerary writing benefits from some creativity.
	plan.SetTemperature(0.7)

	return &GeminiCollaborator{
		client:       client,
		extractModel: extract,
		planModel:    plan,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiCollaborator) Close() {
	p.client.Close()
}

const analysisInstruction = `You are an expert travel request analyzer. Your task is to extract key information from the user's initial travel planning request.
- You must identify the starting point, destination, and duration in days.
- If a piece of information is not present, respond with null for that field.
- The duration should be a number. If they say "a week", use 7. If they say "weekend", use 2.
- Your response must be a valid JSON object with the keys "startPoint" (string or null), "destination" (string or null), and "durationInDays" (number or null). Do not add any other text or markdown.`

// ExtractTripDetails analyzes a free-form opening message for start point,
// destination, and duration. Fields the model cannot find come back nil.
func (p *GeminiCollaborator) ExtractTripDetails(ctx context.Context, message string) (*bot.TripDetails, error) {
	fullPrompt := fmt.Sprintf("%s\n\nAnalyze this travel request: %q", analysisInstruction, message)

	resp, err := p.extractModel.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	cleanJSON := cleanJSONString(responseText(resp))

	// The wire shape is looser than bot.TripDetails: the model may emit the
	// duration as a float or pad absent fields with empty strings.
	var wire struct {
		StartPoint     *string  `json:"startPoint"`
		Destination    *string  `json:"destination"`
		DurationInDays *float64 `json:"durationInDays"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	details := &bot.TripDetails{}
	if wire.StartPoint != nil && strings.TrimSpace(*wire.StartPoint) != "" {
		s := strings.TrimSpace(*wire.StartPoint)
		details.StartPoint = &s
	}
	if wire.Destination != nil && strings.TrimSpace(*wire.Destination) != "" {
		s := strings.TrimSpace(*wire.Destination)
		details.Destination = &s
	}
	if wire.DurationInDays != nil && *wire.DurationInDays > 0 {
		n := int(*wire.DurationInDays)
		details.DurationInDays = &n
	}
	return details, nil
}

const itineraryInstruction = `You are TripMate, a friendly and expert AI travel planner. Your goal is to create a detailed, exciting, and personalized day-by-day travel itinerary based on the user's preferences provided in a JSON object.
- Your response MUST be a valid JSON object that strictly adheres to the provided schema. Do not add any extra text, comments, or markdown formatting.
- The user's budget is a key constraint. All suggestions for hotels and activities must align with the specified budget category ('Budget-friendly', 'Mid-range', or 'Luxury').
- The primary mode of long-distance travel is specified in 'transportMode'. The 'initialTransport' in your response must match this mode.
- When suggesting local transport between activities (the 'transportToNext' field), tailor the suggestions to the user's selected 'budget':
    - For 'Budget-friendly', prioritize 'Walk', 'Bus', or other forms of public transit like auto-rickshaws (represented as 'Taxi' but described appropriately).
    - For 'Mid-range', suggest a mix of 'Taxi' (representing ride-sharing apps) and efficient public transport.
    - For 'Luxury', almost exclusively suggest 'Taxi' for private, convenient travel.
- Start with a warm, personalized greeting using the user's name if provided in the 'userName' field of the request.
- Be creative and suggest specific, well-known, or interesting places, restaurants, and activities.
- For image URLs, use the format: https://picsum.photos/seed/UNIQUE_KEYWORD/800/600. Replace UNIQUE_KEYWORD with a relevant, single English word for the place (e.g., 'goabeach', 'tajmahal', 'manalihills').
- The itinerary should be logical and account for travel time between locations.
- The tone should be enthusiastic and inspiring.

Schema:
{
  "introduction": "string",
  "initialTransport": {"type": "Flight" | "Train" | "Bus", "name": "string", "departureTime": "string", "arrivalTime": "string"},
  "hotelRecommendation": {"name": "string", "description": "string", "imageUrl": "string"},
  "itinerary": [
    {
      "day": number,
      "activities": [
        {
          "time": "string",
          "place": {"name": "string", "description": "string", "imageUrl": "string"},
          "transportToNext": {"type": "Taxi" | "Bus" | "Walk" | "Train", "name": "string", "departureTime": "string", "arrivalTime": "string"} | null
        }
      ]
    }
  ]
}`

// GenerateItinerary produces the full structured itinerary for a completed
// travel plan request.
func (p *GeminiCollaborator) GenerateItinerary(ctx context.Context, req *bot.TravelPlanRequest) (*bot.StructuredBotResponse, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	fullPrompt := fmt.Sprintf("%s\n\nHere are my travel preferences, please create a plan: %s", itineraryInstruction, reqJSON)

	resp, err := p.planModel.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	cleanJSON := cleanJSONString(responseText(resp))

	var result bot.StructuredBotResponse
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	if result.Introduction == "" && len(result.Itinerary) == 0 {
		return nil, fmt.Errorf("gemini returned an empty itinerary")
	}
	return &result, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
