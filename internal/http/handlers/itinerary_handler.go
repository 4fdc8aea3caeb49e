// README: Saved itinerary handler (list and fetch per user).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/http/middleware"
	"tripmate/internal/modules/itinerary"
	"tripmate/internal/types"
)

type ItineraryHandler struct {
	itineraries *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{itineraries: svc}
}

type itineraryView struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	CreatedAt   string `json:"createdAt"`
}

// List handles GET /api/itineraries.
func (h *ItineraryHandler) List(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))

	items, err := h.itineraries.ListByUser(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	views := make([]itineraryView, 0, len(items))
	for _, it := range items {
		views = append(views, itineraryView{
			ID:          string(it.ID),
			Destination: it.Destination,
			Days:        it.Days,
			CreatedAt:   it.CreatedAt.Format("2006-01-02"),
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"itineraries": views})
}

// Get handles GET /api/itineraries/:id; it returns the full structured
// response so the client can re-render the plan exactly as the bot sent it.
func (h *ItineraryHandler) Get(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	id := types.ID(c.Param("id"))

	it, err := h.itineraries.Get(c.Request.Context(), uid, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"id":          string(it.ID),
		"destination": it.Destination,
		"days":        it.Days,
		"createdAt":   it.CreatedAt,
		"response":    it.Response,
	})
}
