// README: Append-only conversation log used for rendering, not decisions.
package bot

import "time"

// TurnKind discriminates the entries of the conversation log.
type TurnKind string

const (
	TurnUser      TurnKind = "user"
	TurnBotPrompt TurnKind = "bot_prompt"
	TurnBotAnswer TurnKind = "bot_answer"
	TurnBotError  TurnKind = "bot_error"
)

// Turn is one immutable entry in the conversation log.
// Text carries the user message, prompt copy, or error message depending on
// Kind; Slot and Options are set only on prompt turns; Answer only on answer
// turns.
type Turn struct {
	Kind    TurnKind               `json:"kind"`
	Text    string                 `json:"text,omitempty"`
	Slot    Slot                   `json:"slot,omitempty"`
	Options []string               `json:"options,omitempty"`
	Answer  *StructuredBotResponse `json:"answer,omitempty"`
	At      time.Time              `json:"at"`
}

// Log is the ordered, append-only record of turns, most recent last.
type Log struct {
	turns []Turn
}

func (l *Log) append(t Turn) Turn {
	t.At = time.Now().UTC()
	l.turns = append(l.turns, t)
	return t
}

// Turns returns a copy of the full turn sequence in display order.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of recorded turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// Last returns the most recent turn, if any.
func (l *Log) Last() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}
