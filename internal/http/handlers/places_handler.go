// README: Destination highlights handler backed by Google Places.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripmate/internal/places"
)

type PlacesHandler struct {
	places *places.Service
}

func NewPlacesHandler(svc *places.Service) *PlacesHandler {
	return &PlacesHandler{places: svc}
}

// Highlights handles GET /api/destinations/highlights?name=Goa.
func (h *PlacesHandler) Highlights(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "missing destination name")
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "places lookup not configured")
		return
	}

	sights, err := h.places.Highlights(c.Request.Context(), name)
	if err != nil {
		writeError(c, http.StatusBadGateway, "places lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"destination": name, "highlights": sights})
}
