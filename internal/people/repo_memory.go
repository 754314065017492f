package people

import (
	"context"
	"sort"
	"sync"
	"time"

	"teamlens-backend/internal/talents"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	people map[string]Person
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{people: make(map[string]Person)}
}

func (r *MemoryRepo) Create(ctx context.Context, person Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	person.CreatedAt = now
	person.UpdatedAt = now
	r.people[person.ID] = clone(person)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, person Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.people[person.ID]
	if !ok {
		return ErrNotFound
	}
	person.CreatedAt = existing.CreatedAt
	person.UpdatedAt = time.Now().UTC()
	r.people[person.ID] = clone(person)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, personID string) (Person, error) {
	if err := ctx.Err(); err != nil {
		return Person{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	person, ok := r.people[personID]
	if !ok {
		return Person{}, ErrNotFound
	}
	return clone(person), nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Person, 0, len(r.people))
	for _, person := range r.people {
		out = append(out, clone(person))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, personID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.people[personID]; !ok {
		return ErrNotFound
	}
	delete(r.people, personID)
	return nil
}

// clone copies the ranked-talents slice so callers cannot mutate stored state.
func clone(p Person) Person {
	if len(p.RankedTalents) > 0 {
		p.RankedTalents = append([]talents.Ranked(nil), p.RankedTalents...)
	}
	return p
}
