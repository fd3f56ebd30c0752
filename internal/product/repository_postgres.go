package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const productColumns = `product_id, name, slug, category_id, price, stock, description, is_featured, COALESCE(image, ''), COALESCE(created_at::text, '')`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CategoryID, &p.Price, &p.Stock, &p.Description, &p.IsFeatured, &p.Image, &p.CreatedAt)
	return p, err
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY product_id`)
}

func (r *PostgresRepository) ListByCategoryID(categoryID int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY product_id`, categoryID)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Featured(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE is_featured ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) Latest(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) Random(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products ORDER BY random() LIMIT $1`, limit)
}

func (r *PostgresRepository) Related(categoryID int, excludeSlug string, limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE category_id = $1 AND slug <> $2 LIMIT $3`, categoryID, excludeSlug, limit)
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	err := r.db.QueryRow(`INSERT INTO products (name, slug, category_id, price, stock, description, is_featured, image)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING product_id, COALESCE(created_at::text, '')`,
		p.Name, p.Slug, p.CategoryID, p.Price, p.Stock, p.Description, p.IsFeatured, p.Image).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}
