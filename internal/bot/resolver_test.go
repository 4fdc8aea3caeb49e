// README: Slot resolver tests (question order, prefill skipping, prompt copy).
package bot

import (
	"reflect"
	"testing"
)

func TestNextPendingWalksFixedOrder(t *testing.T) {
	req := &TravelPlanRequest{UserName: "Asha"}

	var asked []Slot
	for {
		slot, ok := NextPending(req)
		if !ok {
			break
		}
		asked = append(asked, slot)
		fillSlot(t, req, slot)
	}

	want := []Slot{
		SlotDestination,
		SlotStartPoint,
		SlotDuration,
		SlotTravelStyle,
		SlotBudget,
		SlotTransportMode,
	}
	if !reflect.DeepEqual(asked, want) {
		t.Fatalf("ask order = %v, want %v", asked, want)
	}
}

// Slots already filled by extraction are skipped, not re-asked.
func TestNextPendingSkipsPrefilled(t *testing.T) {
	dest := "Goa"
	days := 3
	req := &TravelPlanRequest{Destination: &dest, DurationInDays: &days}

	slot, ok := NextPending(req)
	if !ok || slot != SlotStartPoint {
		t.Fatalf("NextPending = %v, %v, want startPoint", slot, ok)
	}

	origin := "Bangalore"
	req.StartPoint = &origin
	slot, ok = NextPending(req)
	if !ok || slot != SlotTravelStyle {
		t.Fatalf("NextPending after origin = %v, %v, want travelStyle", slot, ok)
	}
}

func TestPromptCopy(t *testing.T) {
	dest := "Goa"
	req := &TravelPlanRequest{Destination: &dest}

	cases := []struct {
		slot    Slot
		text    string
		options []string
	}{
		{SlotDestination, "Great! Where are you planning to go?", nil},
		{SlotStartPoint, "Awesome, Goa! Where will you be travelling from?", nil},
		{SlotDuration, "How many days will your trip be? (e.g., '3', '5', '7')",
			[]string{"3 days", "5 days", "7 days"}},
		{SlotTravelStyle, "What's the travel style?",
			[]string{"Solo", "Couple", "Group", "Family"}},
		{SlotBudget, "What's your approximate budget?",
			[]string{"Budget-friendly", "Mid-range", "Luxury"}},
		{SlotTransportMode, "What's your preferred mode of transportation to get there?",
			[]string{"Flight", "Train", "Bus"}},
	}
	for _, tc := range cases {
		text, options := Prompt(tc.slot, req)
		if text != tc.text {
			t.Errorf("Prompt(%s) text = %q, want %q", tc.slot, text, tc.text)
		}
		if !reflect.DeepEqual(options, tc.options) {
			t.Errorf("Prompt(%s) options = %v, want %v", tc.slot, options, tc.options)
		}
	}
}

// fillSlot sets a slot through the same coercion path the engine uses.
func fillSlot(t *testing.T, req *TravelPlanRequest, slot Slot) {
	t.Helper()
	answers := map[Slot]string{
		SlotDestination:   "Goa",
		SlotStartPoint:    "Bangalore",
		SlotDuration:      "3 days",
		SlotTravelStyle:   "Solo",
		SlotBudget:        "Mid-range",
		SlotTransportMode: "Flight",
	}
	val, err := Coerce(slot, answers[slot])
	if err != nil {
		t.Fatalf("Coerce(%s) failed: %v", slot, err)
	}
	req.Set(slot, val)
}
