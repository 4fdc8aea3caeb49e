// README: OpenAI collaborator tests against a local chat-completions stub.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripmate/internal/bot"
)

// newStubServer serves a canned chat-completions reply and records the last
// request body.
func newStubServer(t *testing.T, reply string) (*httptest.Server, *chatRequest) {
	t.Helper()
	var lastReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&lastReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := chatResponse{}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{
			{Message: chatMessage{Role: "assistant", Content: reply}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &lastReq
}

func stubCollaborator(t *testing.T, reply string) (*OpenAICollaborator, *chatRequest) {
	t.Helper()
	srv, lastReq := newStubServer(t, reply)
	collab := NewOpenAICollaborator("test-key")
	collab.endpoint = srv.URL
	return collab, lastReq
}

func TestOpenAIExtractTripDetails(t *testing.T) {
	collab, lastReq := stubCollaborator(t,
		`{"startPoint":" Bangalore ","destination":"Goa","durationInDays":3}`)

	details, err := collab.ExtractTripDetails(context.Background(), "Goa from Bangalore for 3 days")
	if err != nil {
		t.Fatalf("ExtractTripDetails: %v", err)
	}

	// Wire values are trimmed before they reach the request model.
	if details.StartPoint == nil || *details.StartPoint != "Bangalore" {
		t.Errorf("startPoint = %v, want trimmed Bangalore", details.StartPoint)
	}
	if details.Destination == nil || *details.Destination != "Goa" {
		t.Errorf("destination = %v, want Goa", details.Destination)
	}
	if details.DurationInDays == nil || *details.DurationInDays != 3 {
		t.Errorf("durationInDays = %v, want 3", details.DurationInDays)
	}

	if lastReq.ResponseFormat == nil || lastReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v, want json_object", lastReq.ResponseFormat)
	}
	if len(lastReq.Messages) != 2 || lastReq.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v, want system + user", lastReq.Messages)
	}
}

func TestOpenAIExtractDropsBlankAndNullFields(t *testing.T) {
	collab, _ := stubCollaborator(t,
		`{"startPoint":"   ","destination":null,"durationInDays":0}`)

	details, err := collab.ExtractTripDetails(context.Background(), "plan me something")
	if err != nil {
		t.Fatalf("ExtractTripDetails: %v", err)
	}
	if details.StartPoint != nil || details.Destination != nil || details.DurationInDays != nil {
		t.Fatalf("expected empty partial record, got %+v", details)
	}
}

func TestOpenAIGenerateItinerary(t *testing.T) {
	reply := `{
		"introduction": "Here is your plan.",
		"initialTransport": {"type": "Flight", "name": "AI-101", "departureTime": "08:00", "arrivalTime": "09:30"},
		"hotelRecommendation": {"name": "Seaside Inn", "description": "Near the beach.", "imageUrl": ""},
		"itinerary": [{"day": 1, "activities": []}]
	}`
	collab, _ := stubCollaborator(t, reply)

	dest := "Goa"
	days := 3
	req := &bot.TravelPlanRequest{UserName: "Asha", Destination: &dest, DurationInDays: &days}

	answer, err := collab.GenerateItinerary(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if answer.Introduction != "Here is your plan." {
		t.Errorf("introduction = %q", answer.Introduction)
	}
	if len(answer.Itinerary) != 1 || answer.Itinerary[0].Day != 1 {
		t.Errorf("itinerary = %+v", answer.Itinerary)
	}
}

func TestOpenAISurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	t.Cleanup(srv.Close)

	collab := NewOpenAICollaborator("bad-key")
	collab.endpoint = srv.URL

	_, err := collab.ExtractTripDetails(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("err = %v, want the API error surfaced", err)
	}
}
