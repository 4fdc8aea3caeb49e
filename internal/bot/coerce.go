// README: Input coercion; converts raw answers into typed slot values.
package bot

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyAnswer is returned when a free-text slot receives only whitespace.
	ErrEmptyAnswer = errors.New("empty answer")
	// ErrNoDigits is returned when a duration answer contains no digits.
	ErrNoDigits = errors.New("no digits in duration answer")
	// ErrNotPositive is returned when a duration parses to zero.
	ErrNotPositive = errors.New("duration must be positive")
	// ErrInvalidOption is returned when an enum slot receives text outside
	// its closed option set.
	ErrInvalidOption = errors.New("answer is not one of the offered options")
)

// Coerce converts a raw user answer into a typed value for the pending slot.
// A failed coercion leaves the slot unset; the engine re-asks the same
// question rather than advancing past an unanswered slot.
func Coerce(slot Slot, raw string) (SlotValue, error) {
	text := strings.TrimSpace(raw)

	switch slot {
	case SlotDestination, SlotStartPoint:
		if text == "" {
			return SlotValue{}, ErrEmptyAnswer
		}
		return SlotValue{Text: &text}, nil

	case SlotDuration:
		digits := keepDigits(text)
		if digits == "" {
			return SlotValue{}, ErrNoDigits
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return SlotValue{}, ErrNoDigits
		}
		if n <= 0 {
			return SlotValue{}, ErrNotPositive
		}
		return SlotValue{Days: &n}, nil

	case SlotTravelStyle:
		style := TravelStyle(text)
		if !IsValidTravelStyle(style) {
			return SlotValue{}, ErrInvalidOption
		}
		return SlotValue{Style: &style}, nil

	case SlotBudget:
		tier := BudgetTier(text)
		if !IsValidBudgetTier(tier) {
			return SlotValue{}, ErrInvalidOption
		}
		return SlotValue{Budget: &tier}, nil

	case SlotTransportMode:
		mode := TransportMode(text)
		if !IsValidTransportMode(mode) {
			return SlotValue{}, ErrInvalidOption
		}
		return SlotValue{Transport: &mode}, nil
	}

	return SlotValue{}, ErrInvalidOption
}

// keepDigits strips every non-digit rune, so "5 days" and "about 5" both
// yield "5".
func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
