package order

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, user_id, is_ordered, total_price,
    COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(address, ''),
    COALESCE(city, ''), COALESCE(province, ''), COALESCE(note, ''),
    COALESCE(created_at::text, '')`

const itemColumns = `oi.item_id, oi.order_id, oi.product_id, oi.quantity, p.name, p.price`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var ord Order
	err := row.Scan(&ord.ID, &ord.UserID, &ord.IsOrdered, &ord.TotalPrice,
		&ord.FullName, &ord.Phone, &ord.Address, &ord.City, &ord.Province, &ord.Note,
		&ord.CreatedAt)
	return ord, err
}

func (r *PostgresRepository) getOrder(where string, args ...any) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE `+where, args...))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	items, err := r.loadItems([]int{ord.ID})
	if err != nil {
		return Order{}, err
	}
	ord.Items = items[ord.ID]
	if ord.Items == nil {
		ord.Items = []Item{}
	}
	return ord, nil
}

// loadItems batch-loads items for the given order ids, keyed by order id.
func (r *PostgresRepository) loadItems(orderIDs []int) (map[int][]Item, error) {
	out := make(map[int][]Item)
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(`SELECT `+itemColumns+`
        FROM order_items oi
        JOIN products p ON p.product_id = oi.product_id
        WHERE oi.order_id = ANY($1::int[])
        ORDER BY oi.item_id`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.ProductName, &item.UnitPrice); err != nil {
			return nil, err
		}
		out[item.OrderID] = append(out[item.OrderID], item)
	}
	return out, rows.Err()
}

// recomputeTotal refreshes the cached order total inside the caller's
// transaction so it stays consistent with concurrent item changes.
func recomputeTotal(tx *sql.Tx, orderID int) error {
	_, err := tx.Exec(`UPDATE orders SET total_price = COALESCE((
        SELECT SUM(p.price * oi.quantity)
        FROM order_items oi
        JOIN products p ON p.product_id = oi.product_id
        WHERE oi.order_id = $1), 0)
        WHERE order_id = $1`, orderID)
	return err
}

func (r *PostgresRepository) AddItem(userID, productID, quantity int) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow(`SELECT product_id FROM products WHERE product_id = $1`, productID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	// the partial unique index on (user_id) WHERE NOT is_ordered makes this
	// a race-free get-or-create for the open order
	var orderID int
	err = tx.QueryRow(`INSERT INTO orders (user_id) VALUES ($1)
        ON CONFLICT (user_id) WHERE NOT is_ordered
        DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING order_id`, userID).Scan(&orderID)
	if err != nil {
		return Order{}, err
	}

	_, err = tx.Exec(`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1,$2,$3)
        ON CONFLICT (order_id, product_id)
        DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity`,
		orderID, productID, quantity)
	if err != nil {
		return Order{}, err
	}

	if err := recomputeTotal(tx, orderID); err != nil {
		return Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return r.getOrder(`order_id = $1`, orderID)
}

func (r *PostgresRepository) OpenOrder(userID int) (Order, error) {
	ord, err := r.getOrder(`user_id = $1 AND NOT is_ordered`, userID)
	if err == ErrNotFound {
		return Order{}, ErrNoOpenOrder
	}
	return ord, err
}

func (r *PostgresRepository) GetItem(userID, itemID int) (Item, error) {
	var item Item
	err := r.db.QueryRow(`SELECT `+itemColumns+`
        FROM order_items oi
        JOIN orders o ON o.order_id = oi.order_id
        JOIN products p ON p.product_id = oi.product_id
        WHERE oi.item_id = $1 AND o.user_id = $2 AND NOT o.is_ordered`, itemID, userID).
		Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.ProductName, &item.UnitPrice)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	return item, err
}

func (r *PostgresRepository) SetItemQuantity(userID, itemID, quantity int) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(`UPDATE order_items oi SET quantity = $1
        FROM orders o
        WHERE oi.item_id = $2 AND o.order_id = oi.order_id
          AND o.user_id = $3 AND NOT o.is_ordered
        RETURNING oi.order_id`, quantity, itemID, userID).Scan(&orderID)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	if err := recomputeTotal(tx, orderID); err != nil {
		return Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return r.getOrder(`order_id = $1`, orderID)
}

func (r *PostgresRepository) DeleteItem(userID, itemID int) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(`DELETE FROM order_items oi
        USING orders o
        WHERE oi.item_id = $1 AND o.order_id = oi.order_id
          AND o.user_id = $2 AND NOT o.is_ordered
        RETURNING oi.order_id`, itemID, userID).Scan(&orderID)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	if err := recomputeTotal(tx, orderID); err != nil {
		return Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return r.getOrder(`order_id = $1`, orderID)
}

func (r *PostgresRepository) SaveBilling(userID int, billing Billing) (Order, error) {
	var orderID int
	err := r.db.QueryRow(`UPDATE orders
        SET full_name = $1, phone = $2, address = $3, city = $4, province = $5, note = $6
        WHERE user_id = $7 AND NOT is_ordered
        RETURNING order_id`,
		billing.FullName, billing.Phone, billing.Address, billing.City, billing.Province, billing.Note, userID).
		Scan(&orderID)
	if err == sql.ErrNoRows {
		return Order{}, ErrNoOpenOrder
	}
	if err != nil {
		return Order{}, err
	}
	return r.getOrder(`order_id = $1`, orderID)
}

func (r *PostgresRepository) MarkOrdered(userID int) (Order, error) {
	var orderID int
	err := r.db.QueryRow(`UPDATE orders SET is_ordered = TRUE
        WHERE user_id = $1 AND NOT is_ordered
        RETURNING order_id`, userID).Scan(&orderID)
	if err == sql.ErrNoRows {
		return Order{}, ErrNoOpenOrder
	}
	if err != nil {
		return Order{}, err
	}
	return r.getOrder(`order_id = $1`, orderID)
}

func (r *PostgresRepository) GetByID(userID, orderID int) (Order, error) {
	return r.getOrder(`order_id = $1 AND user_id = $2`, orderID, userID)
}

func (r *PostgresRepository) OpenByID(userID, orderID int) (Order, error) {
	return r.getOrder(`order_id = $1 AND user_id = $2 AND NOT is_ordered`, orderID, userID)
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.loadItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []Item{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) Create(userID int, ord Order) (Order, error) {
	var orderID int
	err := r.db.QueryRow(`INSERT INTO orders (user_id, is_ordered, full_name, phone, address, city, province, note)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING order_id`,
		userID, ord.IsOrdered, ord.FullName, ord.Phone, ord.Address, ord.City, ord.Province, ord.Note).
		Scan(&orderID)
	if err != nil {
		if strings.Contains(err.Error(), "one_open_order_per_user") {
			return Order{}, ErrOpenOrderExists
		}
		return Order{}, err
	}
	return r.getOrder(`order_id = $1`, orderID)
}
