// README: Bot chat handler; routes messages into per-user dialogue sessions.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/bot"
	"tripmate/internal/http/middleware"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/itinerary"
	"tripmate/internal/modules/quota"
	"tripmate/internal/types"
)

// BotHandler exposes the conversational trip planner over HTTP. Quota,
// history, and itineraries may be nil in reduced deployments (and tests);
// the dialogue itself never depends on them.
type BotHandler struct {
	sessions    *bot.Manager
	quota       *quota.Service
	history     *history.Store
	itineraries *itinerary.Service
	timeout     time.Duration
}

func NewBotHandler(sessions *bot.Manager, quotaSvc *quota.Service, historyStore *history.Store, itinerarySvc *itinerary.Service, timeout time.Duration) *BotHandler {
	return &BotHandler{
		sessions:    sessions,
		quota:       quotaSvc,
		history:     historyStore,
		itineraries: itinerarySvc,
		timeout:     timeout,
	}
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Turns         []bot.Turn `json:"turns"`
	InputDisabled bool       `json:"inputDisabled"`
}

// Chat handles POST /api/bot/chat.
func (h *BotHandler) Chat(c *gin.Context) {
	uid := middleware.CallerUID(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	// The quota check runs before the engine sees the message, so an
	// exhausted user never reaches a collaborator.
	if h.quota != nil {
		if err := h.quota.Charge(c.Request.Context(), uid); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	engine := h.sessions.Session(uid, middleware.CallerName(c))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	turns, err := engine.HandleMessage(ctx, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, bot.ErrBusy):
			writeError(c, http.StatusConflict, "previous message still processing")
		case errors.Is(err, bot.ErrEmptyMessage):
			writeError(c, http.StatusBadRequest, "missing message")
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.afterCycle(c.Request.Context(), uid, engine, turns)

	writeJSON(c, http.StatusOK, chatResp{Turns: turns, InputDisabled: engine.ForcedChoice()})
}

// afterCycle persists side products of a finished message cycle: the history
// snapshot and, when the session produced an answer, the saved itinerary.
// Failures here must not fail the chat response; they are logged and dropped.
func (h *BotHandler) afterCycle(ctx context.Context, uid string, engine *bot.Engine, turns []bot.Turn) {
	if h.itineraries != nil {
		for _, t := range turns {
			if t.Kind != bot.TurnBotAnswer {
				continue
			}
			req, ok := engine.LastCompletedRequest()
			if !ok {
				break
			}
			if _, err := h.itineraries.SaveFromAnswer(ctx, types.ID(uid), req, t.Answer); err != nil {
				log.Printf("bot: save itinerary for %s: %v", uid, err)
			}
			break
		}
	}
	if h.history != nil {
		if err := h.history.SaveSnapshot(ctx, uid, engine.Turns()); err != nil {
			log.Printf("bot: save history snapshot for %s: %v", uid, err)
		}
	}
}

// History handles GET /api/bot/history. A live session wins over the stored
// snapshot; users with neither get an empty conversation.
func (h *BotHandler) History(c *gin.Context) {
	uid := middleware.CallerUID(c)

	if engine, ok := h.sessions.Peek(uid); ok {
		writeJSON(c, http.StatusOK, chatResp{Turns: engine.Turns(), InputDisabled: engine.ForcedChoice()})
		return
	}

	if h.history != nil {
		turns, err := h.history.LoadSnapshot(c.Request.Context(), uid)
		if err == nil {
			writeJSON(c, http.StatusOK, chatResp{Turns: turns})
			return
		}
		if !errors.Is(err, history.ErrNoHistory) {
			log.Printf("bot: load history snapshot for %s: %v", uid, err)
		}
	}

	writeJSON(c, http.StatusOK, chatResp{Turns: []bot.Turn{}})
}

// Reset handles POST /api/bot/reset; it discards the caller's session and
// snapshot and returns a fresh conversation with the opening greeting.
func (h *BotHandler) Reset(c *gin.Context) {
	uid := middleware.CallerUID(c)

	h.sessions.Drop(uid)
	if h.history != nil {
		if err := h.history.Clear(c.Request.Context(), uid); err != nil {
			log.Printf("bot: clear history for %s: %v", uid, err)
		}
	}

	engine := h.sessions.Session(uid, middleware.CallerName(c))
	writeJSON(c, http.StatusOK, chatResp{Turns: engine.Turns()})
}
