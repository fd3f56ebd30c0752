package database

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects via the pgx stdlib driver and verifies the connection.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        user_id SERIAL PRIMARY KEY,
        username TEXT NOT NULL,
        email TEXT UNIQUE NOT NULL,
        password TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS categories (
        category_id SERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        slug TEXT UNIQUE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        product_id SERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        slug TEXT UNIQUE NOT NULL,
        category_id INT NOT NULL REFERENCES categories (category_id),
        price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
        stock INT NOT NULL DEFAULT 0,
        description TEXT NOT NULL DEFAULT '',
        is_featured BOOLEAN NOT NULL DEFAULT FALSE,
        image TEXT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS blogs (
        blog_id SERIAL PRIMARY KEY,
        title TEXT NOT NULL,
        slug TEXT UNIQUE NOT NULL,
        author_id INT NOT NULL REFERENCES users (user_id),
        content TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        order_id SERIAL PRIMARY KEY,
        user_id INT NOT NULL REFERENCES users (user_id),
        is_ordered BOOLEAN NOT NULL DEFAULT FALSE,
        total_price NUMERIC(12,2) NOT NULL DEFAULT 0,
        full_name TEXT,
        phone TEXT,
        address TEXT,
        city TEXT,
        province TEXT,
        note TEXT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	// at most one open order (the cart) per user, enforced by the store
	`CREATE UNIQUE INDEX IF NOT EXISTS one_open_order_per_user
        ON orders (user_id) WHERE NOT is_ordered`,
	`CREATE TABLE IF NOT EXISTS order_items (
        item_id SERIAL PRIMARY KEY,
        order_id INT NOT NULL REFERENCES orders (order_id) ON DELETE CASCADE,
        product_id INT NOT NULL REFERENCES products (product_id),
        quantity INT NOT NULL DEFAULT 1 CHECK (quantity >= 1),
        UNIQUE (order_id, product_id)
    )`,
}

// Migrate applies the idempotent schema statements.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
