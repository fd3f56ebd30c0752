package order

import "github.com/shopspring/decimal"

// PaymentMethodKHQR defers the cart→placed transition to the QR payment
// page; any other method places the order immediately at checkout.
const PaymentMethodKHQR = "khqr"

// Order doubles as the shopping cart while IsOrdered is false. At most one
// open order exists per user; the storage layer enforces this with a
// partial unique index. TotalPrice is a derived cache recomputed by every
// mutation, never by reads.
type Order struct {
	ID         int             `json:"orderID"`
	UserID     int             `json:"userID"`
	IsOrdered  bool            `json:"isOrdered"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	FullName   string          `json:"fullName,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	Province   string          `json:"province,omitempty"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	Items      []Item          `json:"items"`
}

// Item links an order to a product. The (order, product) pair is unique;
// repeated adds merge by incrementing Quantity. ProductName and UnitPrice
// are joined in from the catalog for display and totals.
type Item struct {
	ID          int             `json:"itemID"`
	OrderID     int             `json:"orderID"`
	ProductID   int             `json:"productID"`
	Quantity    int             `json:"quantity"`
	ProductName string          `json:"productName,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Total is price × quantity, computed on read and never stored.
func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Billing holds the checkout form fields persisted onto the order row.
type Billing struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
	Note     string `json:"note"`
}
