// README: Structured itinerary response shape and the collaborator contract.
package bot

import "context"

// TransportType covers both the long-haul leg and local hops between stops.
type TransportType string

const (
	TransportTypeFlight TransportType = "Flight"
	TransportTypeTrain  TransportType = "Train"
	TransportTypeBus    TransportType = "Bus"
	TransportTypeTaxi   TransportType = "Taxi"
	TransportTypeWalk   TransportType = "Walk"
)

// TransportOption is one transport leg with carrier and times.
type TransportOption struct {
	Type          TransportType `json:"type"`
	Name          string        `json:"name"`
	DepartureTime string        `json:"departureTime"`
	ArrivalTime   string        `json:"arrivalTime"`
}

// Recommendation is a place suggestion (hotel or activity stop).
type Recommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ItineraryItem is one timed activity, optionally with the transport hop to
// the next stop.
type ItineraryItem struct {
	Time            string           `json:"time"`
	Place           Recommendation   `json:"place"`
	TransportToNext *TransportOption `json:"transportToNext,omitempty"`
}

// ItineraryDay is an ordered day of activities.
type ItineraryDay struct {
	Day        int             `json:"day"`
	Activities []ItineraryItem `json:"activities"`
}

// StructuredBotResponse is the generated itinerary the bot renders as its
// final answer. The engine treats it as opaque beyond shape: it must pass
// through the conversation log without mutation.
type StructuredBotResponse struct {
	Introduction        string          `json:"introduction"`
	InitialTransport    TransportOption `json:"initialTransport"`
	HotelRecommendation Recommendation  `json:"hotelRecommendation"`
	Itinerary           []ItineraryDay  `json:"itinerary"`
}

// TripDetails is the partial record an opening message yields. Each field is
// independently present or absent.
type TripDetails struct {
	StartPoint     *string `json:"startPoint,omitempty"`
	Destination    *string `json:"destination,omitempty"`
	DurationInDays *int    `json:"durationInDays,omitempty"`
}

// Collaborator is the external language-model capability the engine calls but
// does not implement. Both operations return a result or a failure; the
// engine decides per operation whether a failure is user-visible.
type Collaborator interface {
	// ExtractTripDetails analyzes a free-form opening message and returns
	// whatever subset of start point, destination, and duration it can find.
	ExtractTripDetails(ctx context.Context, message string) (*TripDetails, error)

	// GenerateItinerary produces a full structured itinerary from a
	// completed travel plan request.
	GenerateItinerary(ctx context.Context, req *TravelPlanRequest) (*StructuredBotResponse, error)
}
