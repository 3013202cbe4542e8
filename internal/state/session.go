package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/nssportal/internal/common"
	"github.com/dmitrijs2005/nssportal/internal/logging"
	"github.com/dmitrijs2005/nssportal/internal/models"
	"github.com/dmitrijs2005/nssportal/internal/nav"
	"github.com/dmitrijs2005/nssportal/internal/store"
)

// Session applies portal operations to an AppState and persists the result.
// Calls are serialized by an internal mutex.
type Session struct {
	mu    sync.Mutex
	store store.Store
	log   logging.Logger
	now   func() time.Time
	newID func() string
	admin string
	state AppState
}

type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString for new users, events,
// achievements, certificates and suggestions.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithAdminName sets the identity stamped on approvals and reviews.
func WithAdminName(name string) Option {
	return func(s *Session) { s.admin = name }
}

// Open loads the three collections from st and starts a session at the
// landing view. A collection that does not decode is logged and replaced by
// an empty one; any other load error is returned.
func Open(ctx context.Context, st store.Store, opts ...Option) (*Session, error) {
	s := &Session{
		store: st,
		log:   logging.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
		admin: common.DefaultAdminName,
	}
	for _, opt := range opts {
		opt(s)
	}

	users, err := loadCollection[models.User](ctx, s, common.KeyUsers)
	if err != nil {
		return nil, err
	}
	events, err := loadCollection[models.AdminEvent](ctx, s, common.KeyAdminEvents)
	if err != nil {
		return nil, err
	}
	sugs, err := loadCollection[models.Suggestion](ctx, s, common.KeySuggestions)
	if err != nil {
		return nil, err
	}

	s.state = NewAppState().WithUsers(users).WithEvents(events).WithSuggestions(sugs)

	s.log.Info(ctx, "session opened",
		"users", len(users), "events", len(events), "suggestions", len(sugs))
	return s, nil
}

func loadCollection[T any](ctx context.Context, s *Session, key string) ([]T, error) {
	items, err := store.LoadCollection[T](ctx, s.store, key)
	if errors.Is(err, common.ErrCorrupt) {
		s.log.Warn(ctx, "discarding unreadable collection", "key", key, "err", err)
		return items, nil
	}
	return items, err
}

// State returns the current snapshot.
func (s *Session) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

func (s *Session) View() nav.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.View()
}

// AdminName is the identity stamped on admin decisions.
func (s *Session) AdminName() string { return s.admin }

// commit persists the collections named by keys from next and, on success,
// makes next the current state. The caller holds s.mu.
func (s *Session) commit(ctx context.Context, next AppState, keys ...string) error {
	items := make([]store.Item, 0, len(keys))
	for _, key := range keys {
		b, err := encode(next, key)
		if err != nil {
			return err
		}
		items = append(items, store.Item{Key: key, Value: b})
	}

	if err := store.SaveItems(ctx, s.store, items); err != nil {
		s.log.Error(ctx, "persist failed", "keys", keys, "err", err)
		return fmt.Errorf("persist: %w", err)
	}
	for _, it := range items {
		s.log.Debug(ctx, "collection saved", "key", it.Key, "bytes", len(it.Value))
	}

	s.state = next
	return nil
}

func encode(a AppState, key string) ([]byte, error) {
	switch key {
	case common.KeyUsers:
		return store.EncodeCollection(a.Users)
	case common.KeyAdminEvents:
		return store.EncodeCollection(a.Events)
	case common.KeySuggestions:
		return store.EncodeCollection(a.Suggestions)
	}
	return nil, fmt.Errorf("unknown collection %q", key)
}
