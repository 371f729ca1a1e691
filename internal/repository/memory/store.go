// Package memory is an in-process PropertyRepository.
// Each property carries its own lock; the store-wide lock only guards
// the index. It backs tests and the server's "memory" store mode.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/ledger"
	"github.com/and161185/propledger/internal/model"
	"github.com/and161185/propledger/internal/repository"
)

// Store keeps properties in insertion order.
type Store struct {
	mu    sync.RWMutex // guards byID and order only
	byID  map[uuid.UUID]*entry
	order []uuid.UUID
	now   func() time.Time
}

type entry struct {
	mu sync.Mutex
	p  *model.Property
}

var _ repository.PropertyRepository = (*Store)(nil)

// New constructs an empty store.
func New() *Store {
	return &Store{byID: map[uuid.UUID]*entry{}, now: time.Now}
}

func (s *Store) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byID[id]
	return e, ok
}

// snapshot clones the stored property under its own lock.
func (e *entry) snapshot() model.Property {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.p.Clone()
}

// Create inserts p; the id must be unused.
func (s *Store) Create(ctx context.Context, p model.Property) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; ok {
		return errs.ErrAlreadyExists
	}
	cp := p.Clone()
	if cp.History == nil {
		cp.History = []model.Event{}
	}
	s.byID[p.ID] = &entry{p: &cp}
	s.order = append(s.order, p.ID)
	return nil
}

// Get returns a deep copy of the stored property.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.lookup(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := e.snapshot()
	return &cp, nil
}

// List returns copies matching f in creation order.
func (s *Store) List(ctx context.Context, f model.Filter) ([]model.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.byID[id])
	}
	s.mu.RUnlock()

	out := []model.Property{}
	skipped := 0
	for _, e := range entries {
		p := e.snapshot()
		if !matches(p, f) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func matches(p model.Property, f model.Filter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Tokenized != nil && p.IsTokenized != *f.Tokenized {
		return false
	}
	if f.Owner != uuid.Nil && p.Owner != f.Owner {
		return false
	}
	return true
}

// History returns a page of the ledger.
func (s *Store) History(ctx context.Context, id uuid.UUID, q model.HistoryQuery) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.lookup(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return ledger.Page(e.p.History, q), nil
}

// Commit runs fn under the property's lock if the version still matches.
// Commits on different properties do not wait on each other.
func (s *Store) Commit(ctx context.Context, id uuid.UUID, expectedVer int64, fn repository.MutateFunc) (*model.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.lookup(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.p
	if cur.Version != expectedVer {
		return nil, errs.ErrVersionConflict
	}

	mut, err := fn(cur.Clone())
	if err != nil {
		return nil, err
	}

	next := mut.Next.Clone()
	// identity, counters and history are owned by the store
	next.ID = cur.ID
	next.Views = cur.Views
	next.Favorites = slices.Clone(cur.Favorites)
	next.CreatedAt = cur.CreatedAt
	next.History = cur.History
	if mut.Event != nil {
		next = ledger.Apply(next, *mut.Event)
	}
	next.Version = cur.Version + 1
	if next.UpdatedAt.IsZero() {
		next.UpdatedAt = s.now().UTC()
	}

	e.p = &next
	out := next.Clone()
	return &out, nil
}

// IncrementViews bumps the counter atomically.
func (s *Store) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e, ok := s.lookup(id)
	if !ok {
		return 0, errs.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.p
	p.Views++
	return p.Views, nil
}

// ToggleFavorite flips membership atomically.
func (s *Store) ToggleFavorite(ctx context.Context, id, user uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	e, ok := s.lookup(id)
	if !ok {
		return false, errs.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.p
	if i := slices.Index(p.Favorites, user); i >= 0 {
		p.Favorites = slices.Delete(p.Favorites, i, i+1)
		return false, nil
	}
	p.Favorites = append(p.Favorites, user)
	return true, nil
}
