// README: Dialogue engine; slot-filling state machine for one chat session.
package bot

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
)

// Fixed bot copy. Clients key rendering off these exact strings.
const (
	OpeningMessage = "Hello! I'm your TripMate AI. Where would you like to plan a trip to?"
	ackMessage     = "Perfect! I have all the details. Let me craft the perfect itinerary for you..."
	apologyMessage = "Sorry, I had trouble creating your plan. Please try again."
)

var (
	// ErrBusy is returned when a message arrives while a collaborator call
	// is still in flight for this session.
	ErrBusy = errors.New("session is busy")
	// ErrEmptyMessage is returned for whitespace-only input.
	ErrEmptyMessage = errors.New("empty message")
)

type state int

const (
	stateAwaitingOpening state = iota
	stateAwaitingSlot
	stateGenerating
)

// Engine drives the slot-filling conversation for one session. It owns the
// travel plan request and the conversation log exclusively; its only side
// effects are request mutation, log appends, and the two collaborator calls.
type Engine struct {
	mu      sync.Mutex
	busy    bool
	state   state
	pending Slot
	req     TravelPlanRequest
	log     Log
	collab  Collaborator

	completed    TravelPlanRequest
	hasCompleted bool
}

// NewEngine creates a session engine for the named user and seeds the log
// with the opening greeting.
func NewEngine(collab Collaborator, userName string) *Engine {
	e := &Engine{
		state:  stateAwaitingOpening,
		req:    TravelPlanRequest{UserName: userName},
		collab: collab,
	}
	e.append(Turn{Kind: TurnBotPrompt, Text: OpeningMessage})
	return e
}

// HandleMessage processes one user message (typed text or a chosen option)
// and returns the turns appended during this cycle, the user's own turn
// first. It is single-flight: a concurrent call while a collaborator is in
// flight fails with ErrBusy, and the busy flag is always cleared when the
// cycle settles.
func (e *Engine) HandleMessage(ctx context.Context, text string) ([]Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	e.busy = true
	mark := e.log.Len()
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}()

	// Busy is the single-flight guard, so only this goroutine drives the
	// cycle; request reads and writes still go through mu because the
	// accessors below may run concurrently.
	e.append(Turn{Kind: TurnUser, Text: text})

	switch e.currentState() {
	case stateAwaitingOpening:
		details, err := e.collab.ExtractTripDetails(ctx, text)
		if err != nil {
			// Extraction failures degrade to an empty partial record and are
			// never surfaced to the user; every slot gets asked from scratch.
			log.Printf("bot: extraction failed, asking all slots: %v", err)
			details = nil
		}
		e.withReq(func(r *TravelPlanRequest) { r.Merge(details) })
		e.advance(ctx)

	case stateAwaitingSlot:
		pending := e.pendingSlot()
		value, err := Coerce(pending, text)
		if err != nil {
			// Leave the slot unset and re-ask the same question. The fixed
			// order never revisits a passed slot, so advancing here would
			// lose the answer for good.
			e.reprompt()
			break
		}
		e.withReq(func(r *TravelPlanRequest) { r.Set(pending, value) })
		e.advance(ctx)
	}

	return e.turnsSince(mark), nil
}

// advance asks the resolver for the next pending slot and either emits its
// prompt or, when the request is complete, runs generation.
func (e *Engine) advance(ctx context.Context) {
	req := e.Request()
	slot, ok := NextPending(&req)
	if !ok {
		e.generate(ctx)
		return
	}
	e.setPending(stateAwaitingSlot, slot)
	text, options := Prompt(slot, &req)
	e.append(Turn{Kind: TurnBotPrompt, Text: text, Slot: slot, Options: options})
}

// reprompt re-emits the current slot's question after a failed coercion.
func (e *Engine) reprompt() {
	req := e.Request()
	slot := e.pendingSlot()
	text, options := Prompt(slot, &req)
	e.append(Turn{Kind: TurnBotPrompt, Text: text, Slot: slot, Options: options})
}

// generate invokes the itinerary collaborator with the completed request.
// Success and failure both end the session: the request resets and the next
// user message is treated as a fresh opening.
func (e *Engine) generate(ctx context.Context) {
	e.setPending(stateGenerating, "")
	e.append(Turn{Kind: TurnBotPrompt, Text: ackMessage})

	req := e.Request()
	answer, err := e.collab.GenerateItinerary(ctx, &req)
	if err != nil {
		log.Printf("bot: itinerary generation failed: %v", err)
		e.append(Turn{Kind: TurnBotError, Text: apologyMessage})
	} else {
		e.append(Turn{Kind: TurnBotAnswer, Answer: answer})
		e.setCompleted(req)
	}

	e.withReq(func(r *TravelPlanRequest) { r.Reset() })
	e.setPending(stateAwaitingOpening, "")
}

// Busy reports whether a message cycle (including any collaborator call) is
// currently in flight.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Turns returns the full conversation in display order.
func (e *Engine) Turns() []Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Turns()
}

// ForcedChoice reports whether the input surface must be restricted to the
// offered options. Duration suggestions are the exception: they always admit
// free text.
func (e *Engine) ForcedChoice() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	last, ok := e.log.Last()
	if !ok {
		return false
	}
	return last.Kind == TurnBotPrompt && len(last.Options) > 0 && e.pending != SlotDuration
}

// Request returns a snapshot of the partially-filled request. Safe to call
// while a message cycle is in flight; decision logic lives in the resolver.
func (e *Engine) Request() TravelPlanRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.req
}

// withReq mutates the request under the lock.
func (e *Engine) withReq(f func(r *TravelPlanRequest)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f(&e.req)
}

func (e *Engine) currentState() state {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) pendingSlot() Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// LastCompletedRequest returns the request that produced the most recent
// successful answer. The live request resets as soon as an answer lands, so
// callers persisting the answer read the snapshot from here.
func (e *Engine) LastCompletedRequest() (TravelPlanRequest, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed, e.hasCompleted
}

func (e *Engine) setCompleted(req TravelPlanRequest) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.completed = req
	e.hasCompleted = true
}

func (e *Engine) append(t Turn) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.append(t)
}

func (e *Engine) setPending(s state, slot Slot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s
	e.pending = slot
}

func (e *Engine) turnsSince(mark int) []Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	all := e.log.Turns()
	return all[mark:]
}
