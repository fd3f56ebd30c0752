package product

import (
	"errors"
	"math/rand"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List() ([]Product, error)
	ListByCategoryID(categoryID int) ([]Product, error)
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	// Featured returns featured products, newest first.
	Featured(limit int) ([]Product, error)
	// Latest returns the most recently created products.
	Latest(limit int) ([]Product, error)
	// Random returns up to limit products in random order (home page strips).
	Random(limit int) ([]Product, error)
	// Related returns products sharing a category, excluding one slug.
	Related(categoryID int, excludeSlug string, limit int) ([]Product, error)
	Create(p Product) (Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	nextID  int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListByCategoryID(categoryID int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Featured(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, limit)
	// newest first: storage is append-ordered, walk backwards
	for i := len(r.storage) - 1; i >= 0 && len(out) < limit; i-- {
		if r.storage[i].IsFeatured {
			out = append(out, r.storage[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Latest(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, limit)
	for i := len(r.storage) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.storage[i])
	}
	return out, nil
}

func (r *InMemoryRepository) Random(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := rand.Perm(len(r.storage))
	if limit > len(idx) {
		limit = len(idx)
	}
	out := make([]Product, 0, limit)
	for _, i := range idx[:limit] {
		out = append(out, r.storage[i])
	}
	return out, nil
}

func (r *InMemoryRepository) Related(categoryID int, excludeSlug string, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, limit)
	for _, p := range r.storage {
		if len(out) == limit {
			break
		}
		if p.CategoryID == categoryID && p.Slug != excludeSlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	r.storage = append(r.storage, p)
	return p, nil
}
