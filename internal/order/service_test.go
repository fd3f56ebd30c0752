package order

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/product"
)

func seedProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Beef Steak", Slug: "beef-steak", Price: decimal.RequireFromString("50.00")},
		{ID: 2, Name: "Broccoli", Slug: "broccoli", Price: decimal.RequireFromString("5.00")},
		{ID: 3, Name: "Tomatoes", Slug: "tomatoes", Price: decimal.RequireFromString("4.50")},
	}
}

func newTestService() *Service {
	return NewService(NewInMemoryRepository(seedProducts()))
}

func TestAddToCart_MergesDuplicateProduct(t *testing.T) {
	svc := newTestService()

	if _, err := svc.AddToCart(7, 1, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	ord, err := svc.AddToCart(7, 1, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(ord.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(ord.Items))
	}
	if ord.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", ord.Items[0].Quantity)
	}
	if !ord.TotalPrice.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("expected total 250.00, got %s", ord.TotalPrice)
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := newTestService()
	if _, err := svc.AddToCart(7, 999, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddToCart_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	svc := newTestService()
	ord, err := svc.AddToCart(7, 2, 0)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if ord.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", ord.Items[0].Quantity)
	}
}

func TestCartTotal_SumsAcrossProducts(t *testing.T) {
	svc := newTestService()

	svc.AddToCart(7, 1, 1) // 50.00
	svc.AddToCart(7, 2, 2) // 10.00
	ord, err := svc.AddToCart(7, 3, 2) // 9.00
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !ord.TotalPrice.Equal(decimal.RequireFromString("69.00")) {
		t.Fatalf("expected total 69.00, got %s", ord.TotalPrice)
	}
}

func TestViewCart_DoesNotCreateOrder(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ViewCart(7); err != ErrNoOpenOrder {
		t.Fatalf("expected ErrNoOpenOrder, got %v", err)
	}
	// still no open order after the read
	if _, err := svc.ViewCart(7); err != ErrNoOpenOrder {
		t.Fatalf("expected ErrNoOpenOrder on second read, got %v", err)
	}
}

func TestUpdateItemQuantity_SetsAndRecomputes(t *testing.T) {
	svc := newTestService()
	ord, _ := svc.AddToCart(7, 1, 2)
	itemID := ord.Items[0].ID

	upd, err := svc.UpdateItemQuantity(7, itemID, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if upd.Removed {
		t.Fatalf("expected quantity update, got removal")
	}
	if upd.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", upd.Quantity)
	}
	if !upd.ItemTotal.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected item total 200.00, got %s", upd.ItemTotal)
	}
	if !upd.CartTotal.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected cart total 200.00, got %s", upd.CartTotal)
	}
}

func TestUpdateItemQuantity_ZeroRemovesItem(t *testing.T) {
	svc := newTestService()
	svc.AddToCart(7, 1, 1)
	ord, _ := svc.AddToCart(7, 2, 2)

	var broccoliItem int
	for _, item := range ord.Items {
		if item.ProductID == 2 {
			broccoliItem = item.ID
		}
	}

	upd, err := svc.UpdateItemQuantity(7, broccoliItem, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !upd.Removed {
		t.Fatalf("expected item removal for quantity 0")
	}
	if upd.ProductName != "Broccoli" {
		t.Fatalf("expected removed product name Broccoli, got %q", upd.ProductName)
	}
	if !upd.CartTotal.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("expected cart total 50.00 after removal, got %s", upd.CartTotal)
	}
}

func TestRemoveItem_RecomputesTotal(t *testing.T) {
	svc := newTestService()
	svc.AddToCart(7, 1, 1)
	ord, _ := svc.AddToCart(7, 3, 4)

	var tomatoItem int
	for _, item := range ord.Items {
		if item.ProductID == 3 {
			tomatoItem = item.ID
		}
	}

	upd, err := svc.RemoveItem(7, tomatoItem)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !upd.Removed {
		t.Fatalf("expected Removed to be set")
	}
	if !upd.CartTotal.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("expected cart total 50.00, got %s", upd.CartTotal)
	}

	if _, err := svc.RemoveItem(7, tomatoItem); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for already-removed item, got %v", err)
	}
}

func TestPlaceOrder_Lifecycle(t *testing.T) {
	svc := newTestService()

	// no cart at all
	if _, err := svc.PlaceOrder(7); err != ErrNoOpenOrder {
		t.Fatalf("expected ErrNoOpenOrder, got %v", err)
	}

	// empty cart
	ord, _ := svc.AddToCart(7, 1, 1)
	svc.RemoveItem(7, ord.Items[0].ID)
	if _, err := svc.PlaceOrder(7); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	svc.AddToCart(7, 1, 2)
	placed, err := svc.PlaceOrder(7)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if !placed.IsOrdered {
		t.Fatalf("expected order to be marked placed")
	}

	// placing again has nothing to place
	if _, err := svc.PlaceOrder(7); err != ErrNoOpenOrder {
		t.Fatalf("expected ErrNoOpenOrder after placing, got %v", err)
	}
}

func TestCheckout_KHQRLeavesOrderOpen(t *testing.T) {
	svc := newTestService()
	svc.AddToCart(7, 1, 1)

	billing := Billing{FullName: "Sok Dara", Phone: "012345678", Address: "St 271", City: "Phnom Penh", Province: "Phnom Penh"}
	ord, placed, err := svc.Checkout(7, billing, PaymentMethodKHQR)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if placed {
		t.Fatalf("khqr checkout must not place the order")
	}
	if ord.FullName != "Sok Dara" {
		t.Fatalf("billing not saved, got %q", ord.FullName)
	}

	// order is still the open cart, reachable by the payment page
	if _, err := svc.OpenByID(7, ord.ID); err != nil {
		t.Fatalf("expected open order to be visible: %v", err)
	}
}

func TestCheckout_CashOnDeliveryPlacesOrder(t *testing.T) {
	svc := newTestService()
	svc.AddToCart(7, 2, 3)

	ord, placed, err := svc.Checkout(7, Billing{FullName: "Sok Dara"}, "cod")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !placed || !ord.IsOrdered {
		t.Fatalf("expected cod checkout to place the order")
	}
	if _, err := svc.OpenByID(7, ord.ID); err != ErrNotFound {
		t.Fatalf("placed order must not be payable again, got %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := newTestService()
	ord, _ := svc.AddToCart(7, 1, 1)
	svc.RemoveItem(7, ord.Items[0].ID)

	if _, _, err := svc.Checkout(7, Billing{}, PaymentMethodKHQR); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreate_SecondOpenOrderRejected(t *testing.T) {
	svc := newTestService()
	svc.AddToCart(7, 1, 1)

	if _, err := svc.Create(7, Order{}); err != ErrOpenOrderExists {
		t.Fatalf("expected ErrOpenOrderExists, got %v", err)
	}

	// a placed order can always be recorded
	if _, err := svc.Create(7, Order{IsOrdered: true}); err != nil {
		t.Fatalf("expected placed order creation to succeed: %v", err)
	}
}

func TestOrders_AreScopedToUser(t *testing.T) {
	svc := newTestService()
	ord, _ := svc.AddToCart(7, 1, 1)

	if _, err := svc.GetByID(8, ord.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for another user's order, got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(8, ord.Items[0].ID, 3); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound updating another user's item, got %v", err)
	}

	mine, _ := svc.ListByUser(7)
	theirs, _ := svc.ListByUser(8)
	if len(mine) != 1 || len(theirs) != 0 {
		t.Fatalf("expected orders scoped per user, got %d and %d", len(mine), len(theirs))
	}
}
