// README: Travel plan request model, slots, and enum definitions.
package bot

// Slot names one field of the travel plan request awaited during slot filling.
type Slot string

const (
	SlotDestination   Slot = "destination"
	SlotStartPoint    Slot = "startPoint"
	SlotDuration      Slot = "durationInDays"
	SlotTravelStyle   Slot = "travelStyle"
	SlotBudget        Slot = "budget"
	SlotTransportMode Slot = "transportMode"
)

type TravelStyle string

const (
	StyleSolo   TravelStyle = "Solo"
	StyleCouple TravelStyle = "Couple"
	StyleGroup  TravelStyle = "Group"
	StyleFamily TravelStyle = "Family"
)

func IsValidTravelStyle(s TravelStyle) bool {
	switch s {
	case StyleSolo, StyleCouple, StyleGroup, StyleFamily:
		return true
	}
	return false
}

type BudgetTier string

const (
	BudgetFriendly BudgetTier = "Budget-friendly"
	BudgetMidRange BudgetTier = "Mid-range"
	BudgetLuxury   BudgetTier = "Luxury"
)

func IsValidBudgetTier(b BudgetTier) bool {
	switch b {
	case BudgetFriendly, BudgetMidRange, BudgetLuxury:
		return true
	}
	return false
}

type TransportMode string

const (
	TransportFlight TransportMode = "Flight"
	TransportTrain  TransportMode = "Train"
	TransportBus    TransportMode = "Bus"
)

func IsValidTransportMode(m TransportMode) bool {
	switch m {
	case TransportFlight, TransportTrain, TransportBus:
		return true
	}
	return false
}

// TravelPlanRequest is the partially-filled structured travel request owned by
// one dialogue session. Nil means the slot has not been answered yet.
// UserName comes from the profile and is never asked as a question.
// Interests is declared for profile parity but no question ever solicits it.
type TravelPlanRequest struct {
	UserName       string         `json:"userName,omitempty"`
	StartPoint     *string        `json:"startPoint,omitempty"`
	Destination    *string        `json:"destination,omitempty"`
	DurationInDays *int           `json:"durationInDays,omitempty"`
	TravelStyle    *TravelStyle   `json:"travelStyle,omitempty"`
	Budget         *BudgetTier    `json:"budget,omitempty"`
	TransportMode  *TransportMode `json:"transportMode,omitempty"`
	Interests      []string       `json:"interests,omitempty"`
}

// IsSet reports whether the given slot already holds a value.
func (r *TravelPlanRequest) IsSet(slot Slot) bool {
	switch slot {
	case SlotDestination:
		return r.Destination != nil
	case SlotStartPoint:
		return r.StartPoint != nil
	case SlotDuration:
		return r.DurationInDays != nil
	case SlotTravelStyle:
		return r.TravelStyle != nil
	case SlotBudget:
		return r.Budget != nil
	case SlotTransportMode:
		return r.TransportMode != nil
	}
	return false
}

// Set assigns a coerced value to a slot. First write wins within a session;
// a second write to an already-set slot is ignored. Validation happens in
// Coerce, not here.
func (r *TravelPlanRequest) Set(slot Slot, value SlotValue) {
	if r.IsSet(slot) {
		return
	}
	switch slot {
	case SlotDestination:
		r.Destination = value.Text
	case SlotStartPoint:
		r.StartPoint = value.Text
	case SlotDuration:
		r.DurationInDays = value.Days
	case SlotTravelStyle:
		r.TravelStyle = value.Style
	case SlotBudget:
		r.Budget = value.Budget
	case SlotTransportMode:
		r.TransportMode = value.Transport
	}
}

// Merge copies the non-nil fields of an extraction result into the request.
// Already-set slots are preserved.
func (r *TravelPlanRequest) Merge(d *TripDetails) {
	if d == nil {
		return
	}
	if d.Destination != nil && r.Destination == nil {
		r.Destination = d.Destination
	}
	if d.StartPoint != nil && r.StartPoint == nil {
		r.StartPoint = d.StartPoint
	}
	if d.DurationInDays != nil && *d.DurationInDays > 0 && r.DurationInDays == nil {
		r.DurationInDays = d.DurationInDays
	}
}

// Reset clears every answered slot while keeping the user identity, so the
// next message starts a fresh planning session.
func (r *TravelPlanRequest) Reset() {
	name := r.UserName
	*r = TravelPlanRequest{UserName: name}
}

// SlotValue is the typed result of coercing one user answer. Exactly one
// field is non-nil, matching the slot it was coerced for.
type SlotValue struct {
	Text      *string
	Days      *int
	Style     *TravelStyle
	Budget    *BudgetTier
	Transport *TransportMode
}
