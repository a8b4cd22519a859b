// Package cartstore owns the authoritative local view of the cart between
// remote round trips, plus its durable serialization.
package cartstore

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/repository/cartrecord"
)

// RecordKey is the base key the cart record is persisted under.
const RecordKey = "shopify-cart"

// record is the durable wire shape. Currency is carried alongside the spec'd
// fields so the round trip is lossless; readers ignore unknown fields.
type record struct {
	ID          *string           `json:"id"`
	Items       []domain.CartLine `json:"items"`
	Total       float64           `json:"total"`
	Currency    string            `json:"currency,omitempty"`
	CheckoutURL *string           `json:"checkoutUrl"`
}

// Store holds the in-process cart. Replace and Persist are deliberately two
// separate steps: callers persist only after successful reconciliation, so a
// failed remote call never leaves disk ahead of memory.
type Store struct {
	mu      sync.Mutex
	cart    domain.Cart
	records cartrecord.Repository
	key     string
	logger  *log.Logger
}

func New(records cartrecord.Repository, key string, logger *log.Logger) *Store {
	if key == "" {
		key = RecordKey
	}
	return &Store{
		cart:    domain.Cart{Lines: []domain.CartLine{}},
		records: records,
		key:     key,
		logger:  logger,
	}
}

// Current returns a copy of the current cart.
func (s *Store) Current() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cart)
}

// Replace swaps in a new cart value. It does not persist; see Persist.
func (s *Store) Replace(cart domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	s.cart = copyCart(cart)
}

// Persist writes the full current cart to durable storage as a single
// last-writer-wins record.
func (s *Store) Persist() error {
	s.mu.Lock()
	rec := record{
		ID:          s.cart.ID,
		Items:       s.cart.Lines,
		Total:       s.cart.Total.Amount,
		Currency:    s.cart.Total.Currency,
		CheckoutURL: s.cart.CheckoutURL,
	}
	s.mu.Unlock()

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.records.Put(s.key, raw)
}

// Restore loads the persisted record into the store and returns the restored
// cart. A missing record returns nil. A malformed record is discarded and
// also returns nil; corruption must never crash startup.
func (s *Store) Restore() (*domain.Cart, error) {
	raw, err := s.records.Get(s.key)
	if errors.Is(err, cartrecord.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Printf("discarding corrupted cart record %q: %v", s.key, err)
		if delErr := s.records.Delete(s.key); delErr != nil {
			s.logger.Printf("delete corrupted cart record: %v", delErr)
		}
		return nil, nil
	}

	cart := domain.Cart{
		ID:          rec.ID,
		Lines:       rec.Items,
		Total:       domain.Money{Amount: rec.Total, Currency: rec.Currency},
		CheckoutURL: rec.CheckoutURL,
	}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}

	s.mu.Lock()
	s.cart = copyCart(cart)
	s.mu.Unlock()

	restored := copyCart(cart)
	return &restored, nil
}

// Clear resets the in-memory cart and removes the persisted record.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cart = domain.Cart{Lines: []domain.CartLine{}}
	s.mu.Unlock()
	err := s.records.Delete(s.key)
	if errors.Is(err, cartrecord.ErrNotFound) {
		return nil
	}
	return err
}

func copyCart(cart domain.Cart) domain.Cart {
	out := cart
	out.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(out.Lines, cart.Lines)
	for i := range out.Lines {
		if v := out.Lines[i].Variant; v != nil {
			vc := *v
			out.Lines[i].Variant = &vc
		}
	}
	return out
}
