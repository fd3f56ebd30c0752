package order

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/product"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrNoOpenOrder     = errors.New("no active order found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOpenOrderExists = errors.New("user already has an open order")
)

// Repository persists the cart/order aggregate. Every mutation recomputes
// the owning order's total in the same transaction, so the cached
// total_price can only drift if rows are edited outside these methods.
type Repository interface {
	// AddItem upserts the user's open order and the (order, product) item in
	// one transaction. An existing item has its quantity incremented.
	AddItem(userID, productID, quantity int) (Order, error)
	// OpenOrder returns the user's cart without writing anything.
	OpenOrder(userID int) (Order, error)
	GetItem(userID, itemID int) (Item, error)
	// SetItemQuantity overwrites the quantity (callers pass quantity >= 1).
	SetItemQuantity(userID, itemID, quantity int) (Order, error)
	DeleteItem(userID, itemID int) (Order, error)
	SaveBilling(userID int, billing Billing) (Order, error)
	MarkOrdered(userID int) (Order, error)
	GetByID(userID, orderID int) (Order, error)
	// OpenByID is GetByID restricted to the still-open order (QR payment page).
	OpenByID(userID, orderID int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	Create(userID int, ord Order) (Order, error)
}

// InMemoryRepository backs tests and local scenarios. It is seeded with the
// catalog products the aggregate joins against.
type InMemoryRepository struct {
	mu       sync.Mutex
	products map[int]product.Product
	orders   []Order
	nextID   int
	nextItem int
}

func NewInMemoryRepository(products []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make(map[int]product.Product, len(products)),
		nextID:   1,
		nextItem: 1,
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) openIndex(userID int) int {
	for i := range r.orders {
		if r.orders[i].UserID == userID && !r.orders[i].IsOrdered {
			return i
		}
	}
	return -1
}

func (r *InMemoryRepository) recompute(i int) {
	total := decimal.Zero
	for _, item := range r.orders[i].Items {
		total = total.Add(item.Total())
	}
	r.orders[i].TotalPrice = total
}

func copyOrder(ord Order) Order {
	items := make([]Item, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	return ord
}

func (r *InMemoryRepository) AddItem(userID, productID, quantity int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return Order{}, ErrNotFound
	}

	i := r.openIndex(userID)
	if i == -1 {
		r.orders = append(r.orders, Order{ID: r.nextID, UserID: userID, TotalPrice: decimal.Zero})
		r.nextID++
		i = len(r.orders) - 1
	}

	found := false
	for j := range r.orders[i].Items {
		if r.orders[i].Items[j].ProductID == productID {
			r.orders[i].Items[j].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		r.orders[i].Items = append(r.orders[i].Items, Item{
			ID:          r.nextItem,
			OrderID:     r.orders[i].ID,
			ProductID:   productID,
			Quantity:    quantity,
			ProductName: p.Name,
			UnitPrice:   p.Price,
		})
		r.nextItem++
	}

	r.recompute(i)
	return copyOrder(r.orders[i]), nil
}

func (r *InMemoryRepository) OpenOrder(userID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Order{}, ErrNoOpenOrder
	}
	return copyOrder(r.orders[i]), nil
}

func (r *InMemoryRepository) GetItem(userID, itemID int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Item{}, ErrNotFound
	}
	for _, item := range r.orders[i].Items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) SetItemQuantity(userID, itemID, quantity int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Order{}, ErrNotFound
	}
	for j := range r.orders[i].Items {
		if r.orders[i].Items[j].ID == itemID {
			r.orders[i].Items[j].Quantity = quantity
			r.recompute(i)
			return copyOrder(r.orders[i]), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteItem(userID, itemID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Order{}, ErrNotFound
	}
	for j := range r.orders[i].Items {
		if r.orders[i].Items[j].ID == itemID {
			r.orders[i].Items = append(r.orders[i].Items[:j], r.orders[i].Items[j+1:]...)
			r.recompute(i)
			return copyOrder(r.orders[i]), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) SaveBilling(userID int, billing Billing) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Order{}, ErrNoOpenOrder
	}
	r.orders[i].FullName = billing.FullName
	r.orders[i].Phone = billing.Phone
	r.orders[i].Address = billing.Address
	r.orders[i].City = billing.City
	r.orders[i].Province = billing.Province
	r.orders[i].Note = billing.Note
	return copyOrder(r.orders[i]), nil
}

func (r *InMemoryRepository) MarkOrdered(userID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.openIndex(userID)
	if i == -1 {
		return Order{}, ErrNoOpenOrder
	}
	r.orders[i].IsOrdered = true
	return copyOrder(r.orders[i]), nil
}

func (r *InMemoryRepository) GetByID(userID, orderID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID && r.orders[i].UserID == userID {
			return copyOrder(r.orders[i]), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) OpenByID(userID, orderID int) (Order, error) {
	ord, err := r.GetByID(userID, orderID)
	if err != nil || ord.IsOrdered {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, copyOrder(r.orders[i]))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(userID int, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !ord.IsOrdered && r.openIndex(userID) != -1 {
		return Order{}, ErrOpenOrderExists
	}
	ord.ID = r.nextID
	r.nextID++
	ord.UserID = userID
	if ord.Items == nil {
		ord.Items = []Item{}
	}
	r.orders = append(r.orders, ord)
	i := len(r.orders) - 1
	r.recompute(i)
	return copyOrder(r.orders[i]), nil
}
