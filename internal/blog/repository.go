package blog

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("blog not found")
)

type Repository interface {
	// List returns all blogs, newest first.
	List() ([]Blog, error)
	Latest(limit int) ([]Blog, error)
	GetByID(id int) (Blog, error)
	GetBySlug(slug string) (Blog, error)
	Create(b Blog) (Blog, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Blog
	nextID  int
}

func NewInMemoryRepository(seed []Blog) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Blog, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, b := range seed {
		r.storage = append(r.storage, b)
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Blog, 0, len(r.storage))
	for i := len(r.storage) - 1; i >= 0; i-- {
		out = append(out, r.storage[i])
	}
	return out, nil
}

func (r *InMemoryRepository) Latest(limit int) ([]Blog, error) {
	all, _ := r.List()
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *InMemoryRepository) GetByID(id int) (Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.ID == id {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.storage {
		if b.Slug == slug {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *InMemoryRepository) Create(b Blog) (Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, b)
	return b, nil
}
