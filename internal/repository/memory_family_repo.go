package repository

import (
	"context"
	"sync"

	"famtree/internal/domain"
)

// MemoryFamilyRepo is the in-memory name→Person registry. Insertion order is
// tracked so List iterates members in the order they were registered; the
// birthday calendar relies on that. Writes happen only during the initial
// bulk load.
type MemoryFamilyRepo struct {
	mu     sync.RWMutex
	byName map[string]*domain.Person
	order  []*domain.Person
}

func NewMemoryFamilyRepo() *MemoryFamilyRepo {
	return &MemoryFamilyRepo{byName: make(map[string]*domain.Person)}
}

func (r *MemoryFamilyRepo) Add(_ context.Context, p *domain.Person) error {
	if p == nil {
		return domain.ErrNilPerson
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[p.Name()]; ok {
		return domain.ErrDuplicateName
	}
	r.byName[p.Name()] = p
	r.order = append(r.order, p)
	return nil
}

func (r *MemoryFamilyRepo) Get(_ context.Context, name string) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *MemoryFamilyRepo) List(_ context.Context) ([]*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Person, len(r.order))
	copy(out, r.order)
	return out, nil
}
