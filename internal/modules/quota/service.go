package quota

import "context"

// Charger is the store surface the service needs; satisfied by Store.
type Charger interface {
	Charge(ctx context.Context, uid string) error
	EnsureUser(ctx context.Context, uid string) error
}

// Service orchestrates per-user message quota logic.
type Service struct {
	store Charger
}

// NewService creates a Service backed by the given store.
func NewService(store Charger) *Service {
	return &Service{store: store}
}

// Charge deducts one message from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the message is
// immediately charged. Returns ErrQuotaExhausted when the allowance for the
// current month is used up.
func (s *Service) Charge(ctx context.Context, uid string) error {
	err := s.store.Charge(ctx, uid)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.Charge(ctx, uid)
}
