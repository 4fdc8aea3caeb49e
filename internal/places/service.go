package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Sight is a simplified attraction result for a destination.
type Sight struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// maxHighlights caps how many sights a single lookup returns.
const maxHighlights = 5

// Service handles interactions with Google Places API.
type Service struct {
	client *maps.Client
}

// NewService creates a places Service with the given API Key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Highlights returns the top-rated sights for a destination. Low-rated
// results are filtered out so trip cards only show places worth suggesting.
func (s *Service) Highlights(ctx context.Context, destination string) ([]Sight, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("top attractions in %s", destination),
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Sight
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		results = append(results, Sight{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= maxHighlights {
			break
		}
	}

	return results, nil
}
