// README: Slot resolver; fixed question order and prompt copy.
package bot

import "fmt"

// askOrder is the fixed question order. Destination is asked before origin to
// mirror natural conversational flow; clients depend on this exact sequence.
var askOrder = []Slot{
	SlotDestination,
	SlotStartPoint,
	SlotDuration,
	SlotTravelStyle,
	SlotBudget,
	SlotTransportMode,
}

// NextPending returns the first unset slot in the fixed order. ok is false
// when all six slots are set and the request is ready for generation.
func NextPending(req *TravelPlanRequest) (Slot, bool) {
	for _, slot := range askOrder {
		if !req.IsSet(slot) {
			return slot, true
		}
	}
	return "", false
}

// Prompt returns the bot copy for a pending slot and, for choice-backed
// slots, the ordered option list. Duration offers suggestions but still
// accepts free text; the enum slots force a selection.
func Prompt(slot Slot, req *TravelPlanRequest) (string, []string) {
	switch slot {
	case SlotDestination:
		return "Great! Where are you planning to go?", nil
	case SlotStartPoint:
		dest := ""
		if req.Destination != nil {
			dest = *req.Destination
		}
		return fmt.Sprintf("Awesome, %s! Where will you be travelling from?", dest), nil
	case SlotDuration:
		return "How many days will your trip be? (e.g., '3', '5', '7')",
			[]string{"3 days", "5 days", "7 days"}
	case SlotTravelStyle:
		return "What's the travel style?",
			[]string{"Solo", "Couple", "Group", "Family"}
	case SlotBudget:
		return "What's your approximate budget?",
			[]string{"Budget-friendly", "Mid-range", "Luxury"}
	case SlotTransportMode:
		return "What's your preferred mode of transportation to get there?",
			[]string{"Flight", "Train", "Bus"}
	}
	return "", nil
}
