// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/bot"
	"tripmate/internal/http/handlers"
	"tripmate/internal/http/middleware"
	"tripmate/internal/infra"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/itinerary"
	"tripmate/internal/modules/quota"
	"tripmate/internal/places"
)

type ServerDeps struct {
	Sessions    *bot.Manager
	Quota       *quota.Service
	History     *history.Store
	Itineraries *itinerary.Service
	Places      *places.Service
	Verifier    infra.TokenVerifier
	AITimeout   time.Duration
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	botHandler := handlers.NewBotHandler(s.deps.Sessions, s.deps.Quota, s.deps.History, s.deps.Itineraries, s.deps.AITimeout)
	itineraryHandler := handlers.NewItineraryHandler(s.deps.Itineraries)
	placesHandler := handlers.NewPlacesHandler(s.deps.Places)

	api := r.Group("/api", middleware.Auth(s.deps.Verifier))
	api.POST("/bot/chat", botHandler.Chat)
	api.GET("/bot/history", botHandler.History)
	api.POST("/bot/reset", botHandler.Reset)
	api.GET("/itineraries", itineraryHandler.List)
	api.GET("/itineraries/:id", itineraryHandler.Get)
	api.GET("/destinations/highlights", placesHandler.Highlights)

	return r
}
