// README: Saved itinerary aggregate produced by completed bot sessions.
package itinerary

import (
	"errors"
	"time"

	"tripmate/internal/bot"
	"tripmate/internal/types"
)

var (
	ErrNotFound   = errors.New("itinerary not found")
	ErrBadRequest = errors.New("bad request")
)

// SavedItinerary is one generated plan kept for the user's profile. The
// structured response is stored verbatim so it renders exactly as the bot
// answered it.
type SavedItinerary struct {
	ID          types.ID
	UserID      types.ID
	Destination string
	Days        int
	Response    bot.StructuredBotResponse
	CreatedAt   time.Time
}
