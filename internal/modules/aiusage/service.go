package aiusage

import "context"

// Service meters assistant usage per visitor.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseMessage deducts one message from the visitor's monthly allowance.
// If the visitor row does not exist yet it is initialised and the message
// is immediately consumed. Returns ErrQuotaExhausted when the quota for
// the current month is used up.
func (s *Service) UseMessage(ctx context.Context, visitorID string) error {
	err := s.store.UseMessage(ctx, visitorID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureVisitor(ctx, visitorID); initErr != nil {
		return initErr
	}
	return s.store.UseMessage(ctx, visitorID)
}
