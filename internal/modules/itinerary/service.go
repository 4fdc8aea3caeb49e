// README: Itinerary service; captures finished bot answers for the profile.
package itinerary

import (
	"context"
	"time"

	"tripmate/internal/bot"
	"tripmate/internal/types"
)

// Store is the persistence the service needs; satisfied by PGStore.
type Store interface {
	Insert(ctx context.Context, it *SavedItinerary) error
	Get(ctx context.Context, id types.ID) (*SavedItinerary, error)
	ListByUser(ctx context.Context, userID types.ID) ([]SavedItinerary, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// SaveFromAnswer records a structured bot answer under the user's profile.
// Destination and days come from the request that produced the answer; both
// are always set because generation only runs on a complete request.
func (s *Service) SaveFromAnswer(ctx context.Context, userID types.ID, req bot.TravelPlanRequest, answer *bot.StructuredBotResponse) (types.ID, error) {
	if userID == "" || answer == nil {
		return "", ErrBadRequest
	}

	it := &SavedItinerary{
		ID:        types.NewID(),
		UserID:    userID,
		Response:  *answer,
		CreatedAt: time.Now().UTC(),
	}
	if req.Destination != nil {
		it.Destination = *req.Destination
	}
	if req.DurationInDays != nil {
		it.Days = *req.DurationInDays
	}

	if err := s.store.Insert(ctx, it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (s *Service) Get(ctx context.Context, userID, id types.ID) (*SavedItinerary, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// Itineraries are private to their owner.
	if it.UserID != userID {
		return nil, ErrNotFound
	}
	return it, nil
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]SavedItinerary, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}
