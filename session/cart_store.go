package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/lending"
)

var ErrCartNotFound = errors.New("cart not found or expired")

// CartStore keeps pending carts between requests. Carts expire ttl after
// their last save.
type CartStore interface {
	Create(ctx context.Context) (*lending.Cart, error)
	Get(ctx context.Context, id string) (*lending.Cart, error)
	Save(ctx context.Context, c *lending.Cart) error
	Delete(ctx context.Context, id string) error
}

type memEntry struct {
	cart    lending.Cart
	expires time.Time
}

// MemoryCartStore is the CartStore used when no redis is configured. Expired
// carts are dropped when read and swept on every save. A ttl <= 0 keeps carts
// until they are deleted, like a redis key without expiry.
type MemoryCartStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts map[string]memEntry
	now   func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{ttl: ttl, carts: make(map[string]memEntry), now: time.Now}
}

func (s *MemoryCartStore) Create(ctx context.Context) (*lending.Cart, error) {
	c := &lending.Cart{ID: db.NewID(), Lines: []lending.CartLine{}}
	return c, s.Save(ctx, c)
}

func (s *MemoryCartStore) Get(_ context.Context, id string) (*lending.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	if s.expired(e) {
		delete(s.carts, id)
		return nil, ErrCartNotFound
	}
	c := e.cart
	c.Lines = append([]lending.CartLine{}, e.cart.Lines...)
	return &c, nil
}

func (s *MemoryCartStore) Save(_ context.Context, c *lending.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	cp := *c
	cp.Lines = append([]lending.CartLine{}, c.Lines...)
	e := memEntry{cart: cp}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.carts[c.ID] = e
	return nil
}

func (s *MemoryCartStore) expired(e memEntry) bool {
	return !e.expires.IsZero() && s.now().After(e.expires)
}

// sweep drops abandoned carts. Caller holds s.mu.
func (s *MemoryCartStore) sweep() {
	for id, e := range s.carts {
		if s.expired(e) {
			delete(s.carts, id)
		}
	}
}

func (s *MemoryCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}
