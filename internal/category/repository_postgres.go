package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	var cat Category
	err := r.db.QueryRow(`SELECT category_id, name, slug FROM categories WHERE category_id = $1`, id).
		Scan(&cat.ID, &cat.Name, &cat.Slug)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	return cat, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Category, error) {
	var cat Category
	err := r.db.QueryRow(`SELECT category_id, name, slug FROM categories WHERE slug = $1`, slug).
		Scan(&cat.ID, &cat.Name, &cat.Slug)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	return cat, err
}

func (r *PostgresRepository) Create(cat Category) (Category, error) {
	err := r.db.QueryRow(`INSERT INTO categories (name, slug) VALUES ($1, $2)
        ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
        RETURNING category_id`, cat.Name, cat.Slug).Scan(&cat.ID)
	if err != nil {
		return Category{}, err
	}
	return cat, nil
}
