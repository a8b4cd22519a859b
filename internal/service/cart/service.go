package cart

import (
	"context"
	"errors"
	"log"

	"storefront/internal/cartstore"
	"storefront/internal/domain"
	"storefront/internal/reconcile"
	"storefront/internal/service/checkout"
	"storefront/internal/storefront"
	"storefront/internal/validation"
)

// Service is the UI-facing cart engine. Mutations call the remote service,
// reconcile the response into the store, then persist. A failed remote call
// leaves local state exactly as it was.
type Service struct {
	remote remote
	store  *cartstore.Store
	guard  *checkout.Guard
	logger *log.Logger
}

type remote interface {
	CreateCart(ctx context.Context, variantID string, quantity int) (*storefront.CartPayload, error)
	AddLine(ctx context.Context, cartID, variantID string, quantity int) (*storefront.CartPayload, error)
	UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*storefront.CartPayload, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*storefront.CartPayload, error)
}

func New(remote remote, store *cartstore.Store, guard *checkout.Guard, logger *log.Logger) *Service {
	return &Service{remote: remote, store: store, guard: guard, logger: logger}
}

// AddToCart adds a variant, creating the remote cart lazily on first use.
func (s *Service) AddToCart(ctx context.Context, variantID string, quantity int) (domain.Cart, error) {
	if variantID == "" {
		return domain.Cart{}, errors.New("variant id required")
	}
	if quantity <= 0 {
		return domain.Cart{}, errors.New("quantity must be positive")
	}

	current := s.store.Current()
	var payload *storefront.CartPayload
	var err error
	if current.ID == nil {
		payload, err = s.remote.CreateCart(ctx, variantID, quantity)
	} else {
		payload, err = s.remote.AddLine(ctx, *current.ID, variantID, quantity)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return s.apply(payload), nil
}

// SetQuantity sets the absolute quantity of a line. A quantity of zero or
// less converts to removal; a zero-quantity line must never exist.
func (s *Service) SetQuantity(ctx context.Context, lineID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, lineID)
	}

	current := s.store.Current()
	if current.ID == nil {
		return domain.Cart{}, domain.ErrNoCart
	}
	if current.LineByID(lineID) == nil {
		return domain.Cart{}, domain.ErrLineNotFound
	}

	payload, err := s.remote.UpdateLine(ctx, *current.ID, lineID, quantity)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.apply(payload), nil
}

// AdjustQuantity changes a line's quantity by a delta relative to the
// current local state.
func (s *Service) AdjustQuantity(ctx context.Context, lineID string, delta int) (domain.Cart, error) {
	current := s.store.Current()
	if current.ID == nil {
		return domain.Cart{}, domain.ErrNoCart
	}
	line := current.LineByID(lineID)
	if line == nil {
		return domain.Cart{}, domain.ErrLineNotFound
	}
	return s.SetQuantity(ctx, lineID, line.Quantity+delta)
}

// RemoveFromCart removes a single line.
func (s *Service) RemoveFromCart(ctx context.Context, lineID string) (domain.Cart, error) {
	current := s.store.Current()
	if current.ID == nil {
		return domain.Cart{}, domain.ErrNoCart
	}
	if current.LineByID(lineID) == nil {
		return domain.Cart{}, domain.ErrLineNotFound
	}

	payload, err := s.remote.RemoveLines(ctx, *current.ID, []string{lineID})
	if err != nil {
		return domain.Cart{}, err
	}
	return s.apply(payload), nil
}

// Cart returns the current local cart.
func (s *Service) Cart() domain.Cart {
	return s.store.Current()
}

// ValidationMessages returns the blocking reasons for the cached state. The
// checkout control's enabled state follows this result.
func (s *Service) ValidationMessages() []string {
	return validation.Validate(s.store.Current())
}

// Checkout runs one guarded checkout attempt.
func (s *Service) Checkout(ctx context.Context) checkout.Result {
	return s.guard.Checkout(ctx)
}

// apply reconciles a successful mutation response and persists the result.
// Persistence failure is logged, not surfaced: the in-memory cart is
// authoritative at runtime and the record is a passive mirror.
func (s *Service) apply(payload *storefront.CartPayload) domain.Cart {
	s.store.Replace(reconcile.Cart(payload, s.logger))
	if err := s.store.Persist(); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
	return s.store.Current()
}
