package httpserver

import (
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/cartstore"
	"storefront/internal/repository/cartrecord"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/service/checkout"
	"storefront/internal/storefront"
)

const (
	sessionCookie = "storefront_session"
	// Cookie lifetime mirrors how long the remote platform keeps carts around.
	sessionMaxAge = 30 * 24 * 60 * 60

	// Engines idle longer than this are dropped from memory. The cart itself
	// survives in the record store and is restored on the session's next
	// request, so eviction only costs one Restore.
	engineIdleTTL = time.Hour

	engineCtxKey = "cartEngine"
)

// sessions hands out one cart engine per browsing session. Engines are built
// lazily, restore their persisted record on first use, and are evicted once
// idle so the map stays bounded by recent traffic rather than cookie
// lifetime.
type sessions struct {
	mu      sync.Mutex
	engines map[string]*sessionEntry

	remote  *storefront.Client
	records cartrecord.Repository
	logger  *log.Logger

	idleTTL time.Duration
	now     func() time.Time
}

type sessionEntry struct {
	engine   *cartsvc.Service
	lastSeen time.Time
}

func newSessions(remote *storefront.Client, records cartrecord.Repository, logger *log.Logger) *sessions {
	return &sessions{
		engines: map[string]*sessionEntry{},
		remote:  remote,
		records: records,
		logger:  logger,
		idleTTL: engineIdleTTL,
		now:     time.Now,
	}
}

func (s *sessions) engine(sessionID string) *cartsvc.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdle(now)

	if entry, ok := s.engines[sessionID]; ok {
		entry.lastSeen = now
		return entry.engine
	}

	store := cartstore.New(s.records, cartstore.RecordKey+":"+sessionID, s.logger)
	if _, err := store.Restore(); err != nil {
		// Storage trouble should not break the session; start with an empty cart.
		s.logger.Printf("restore cart for session %s: %v", sessionID, err)
	}
	guard := checkout.NewGuard(s.remote, store, s.logger)
	engine := cartsvc.New(s.remote, store, guard, s.logger)
	s.engines[sessionID] = &sessionEntry{engine: engine, lastSeen: now}
	return engine
}

// evictIdle drops engines that have not served a request within idleTTL.
// Caller holds s.mu.
func (s *sessions) evictIdle(now time.Time) {
	for id, entry := range s.engines {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.engines, id)
		}
	}
}

// sessionMiddleware assigns a session cookie on first contact and attaches
// the session's cart engine to the request context.
func sessionMiddleware(s *sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(engineCtxKey, s.engine(sessionID))
		c.Next()
	}
}

func engineFrom(c *gin.Context) *cartsvc.Service {
	return c.MustGet(engineCtxKey).(*cartsvc.Service)
}
