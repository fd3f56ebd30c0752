package order

import "github.com/shopspring/decimal"

// Service implements the cart/order operations shared by the web and API
// surfaces. Callers always pass the acting user's id explicitly.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ItemUpdate is the result of a quantity change or removal; it feeds both
// the redirect response and the AJAX JSON response.
type ItemUpdate struct {
	Removed     bool
	Quantity    int
	ProductName string
	ItemTotal   decimal.Decimal
	CartTotal   decimal.Decimal
}

// AddToCart merges the product into the user's open order. Stock is
// informational and deliberately not checked here.
func (s *Service) AddToCart(userID, productID, quantity int) (Order, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.repo.AddItem(userID, productID, quantity)
}

// ViewCart is a pure read; totals are only touched by mutations.
func (s *Service) ViewCart(userID int) (Order, error) {
	return s.repo.OpenOrder(userID)
}

// UpdateItemQuantity sets the quantity when positive and removes the item
// otherwise. Both paths recompute the cart total.
func (s *Service) UpdateItemQuantity(userID, itemID, quantity int) (ItemUpdate, error) {
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}

	ord, err := s.repo.SetItemQuantity(userID, itemID, quantity)
	if err != nil {
		return ItemUpdate{}, err
	}

	upd := ItemUpdate{Quantity: quantity, CartTotal: ord.TotalPrice}
	for _, item := range ord.Items {
		if item.ID == itemID {
			upd.ProductName = item.ProductName
			upd.ItemTotal = item.Total()
			break
		}
	}
	return upd, nil
}

// RemoveItem deletes the item and recomputes the cart total.
func (s *Service) RemoveItem(userID, itemID int) (ItemUpdate, error) {
	item, err := s.repo.GetItem(userID, itemID)
	if err != nil {
		return ItemUpdate{}, err
	}

	ord, err := s.repo.DeleteItem(userID, itemID)
	if err != nil {
		return ItemUpdate{}, err
	}

	return ItemUpdate{
		Removed:     true,
		ProductName: item.ProductName,
		CartTotal:   ord.TotalPrice,
	}, nil
}

// PlaceOrder flips the open order to placed. It fails with ErrNoOpenOrder
// when the user has no cart and ErrEmptyCart when the cart has no items;
// a second call fails with ErrNoOpenOrder since no open order remains.
func (s *Service) PlaceOrder(userID int) (Order, error) {
	ord, err := s.repo.OpenOrder(userID)
	if err != nil {
		return Order{}, err
	}
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	return s.repo.MarkOrdered(userID)
}

// Checkout persists billing details onto the open order. The KHQR method
// defers the cart→placed transition to the payment page and reports
// placed=false; any other method places the order immediately.
func (s *Service) Checkout(userID int, billing Billing, paymentMethod string) (Order, bool, error) {
	ord, err := s.repo.OpenOrder(userID)
	if err != nil {
		return Order{}, false, err
	}
	if len(ord.Items) == 0 {
		return Order{}, false, ErrEmptyCart
	}

	ord, err = s.repo.SaveBilling(userID, billing)
	if err != nil {
		return Order{}, false, err
	}

	if paymentMethod == PaymentMethodKHQR {
		return ord, false, nil
	}

	placed, err := s.repo.MarkOrdered(userID)
	return placed, true, err
}

func (s *Service) GetByID(userID, orderID int) (Order, error) {
	return s.repo.GetByID(userID, orderID)
}

func (s *Service) OpenByID(userID, orderID int) (Order, error) {
	return s.repo.OpenByID(userID, orderID)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(userID int, ord Order) (Order, error) {
	return s.repo.Create(userID, ord)
}
