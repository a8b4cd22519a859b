// Package checkout guards the transition from cart to the externally hosted
// checkout page. Checkout is the one irreversible action in the system, so it
// gets explicit mutual exclusion; ordinary cart mutations do not.
package checkout

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront/internal/cartstore"
	"storefront/internal/reconcile"
	"storefront/internal/storefront"
	"storefront/internal/validation"
)

// State is the guard's position in the checkout flow.
type State int

const (
	StateIdle State = iota
	StateRefreshing
	StateValidating
	StateRedirecting
	StateBlocked
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRefreshing:
		return "refreshing"
	case StateValidating:
		return "validating"
	case StateRedirecting:
		return "redirecting"
	case StateBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// MsgCheckoutURLMissing blocks checkout when the remote service never issued
// a checkout URL. It is deliberately distinct from validation messages: it
// points at a cart-creation problem, not an item problem.
const MsgCheckoutURLMissing = "checkout is not available for this cart yet"

// defaultReleaseTimeout un-wedges the guard if the caller never navigates
// away after a redirect was handed out (e.g. the navigation was cancelled).
const defaultReleaseTimeout = 30 * time.Second

type remote interface {
	FetchCart(ctx context.Context, cartID string) (*storefront.CartPayload, error)
}

// Result is the outcome of one checkout attempt.
type Result struct {
	State       State
	Busy        bool
	Messages    []string
	RedirectURL string
}

// Allowed reports whether the attempt ended with a redirect URL.
func (r Result) Allowed() bool {
	return r.State == StateRedirecting && r.RedirectURL != ""
}

// Guard serializes checkout attempts. While an attempt is in flight every
// further call is a no-op reported as busy.
type Guard struct {
	mu           sync.Mutex
	inFlight     bool
	state        State
	releaseTimer *time.Timer

	remote       remote
	store        *cartstore.Store
	logger       *log.Logger
	releaseAfter time.Duration
}

func NewGuard(remote remote, store *cartstore.Store, logger *log.Logger) *Guard {
	return &Guard{
		state:        StateIdle,
		remote:       remote,
		store:        store,
		logger:       logger,
		releaseAfter: defaultReleaseTimeout,
	}
}

// State returns the guard's current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Checkout runs one attempt: refresh the remote cart best-effort, validate,
// and hand out the redirect URL. A refresh failure never blocks checkout on
// its own; validation then runs against cached state.
func (g *Guard) Checkout(ctx context.Context) Result {
	cart := g.store.Current()
	if cart.CheckoutURL == nil {
		return Result{State: StateBlocked, Messages: []string{MsgCheckoutURLMissing}}
	}

	g.mu.Lock()
	if g.inFlight {
		state := g.state
		g.mu.Unlock()
		return Result{State: state, Busy: true}
	}
	g.inFlight = true
	g.state = StateRefreshing
	g.mu.Unlock()

	if cart.ID != nil {
		payload, err := g.remote.FetchCart(ctx, *cart.ID)
		switch {
		case err != nil:
			g.logger.Printf("checkout refresh failed, using cached cart: %v", err)
		case payload == nil:
			g.logger.Printf("remote cart %s gone, using cached cart", *cart.ID)
		default:
			g.store.Replace(reconcile.Cart(payload, g.logger))
			if err := g.store.Persist(); err != nil {
				g.logger.Printf("persist refreshed cart: %v", err)
			}
		}
	}

	g.setState(StateValidating)
	current := g.store.Current()
	if messages := validation.Validate(current); len(messages) > 0 {
		g.Release()
		return Result{State: StateBlocked, Messages: messages}
	}
	if current.CheckoutURL == nil {
		g.Release()
		return Result{State: StateBlocked, Messages: []string{MsgCheckoutURLMissing}}
	}

	g.setState(StateRedirecting)
	if err := g.store.Persist(); err != nil {
		g.logger.Printf("persist before redirect: %v", err)
	}

	g.mu.Lock()
	g.releaseTimer = time.AfterFunc(g.releaseAfter, g.Release)
	g.mu.Unlock()

	return Result{State: StateRedirecting, RedirectURL: *current.CheckoutURL}
}

// Release returns the guard to Idle. It is safe to call at any time; the
// page unload after a real redirect simply never calls it.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.releaseTimer != nil {
		g.releaseTimer.Stop()
		g.releaseTimer = nil
	}
	g.inFlight = false
	g.state = StateIdle
}

func (g *Guard) setState(state State) {
	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
}
