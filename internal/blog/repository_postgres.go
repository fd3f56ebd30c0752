package blog

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const blogColumns = `b.blog_id, b.title, b.slug, b.author_id, COALESCE(u.username, ''), b.content, COALESCE(b.created_at::text, '')`

const blogFrom = ` FROM blogs b LEFT JOIN users u ON u.user_id = b.author_id `

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanBlog(row interface{ Scan(...any) error }) (Blog, error) {
	var b Blog
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.AuthorID, &b.AuthorName, &b.Content, &b.CreatedAt)
	return b, err
}

func (r *PostgresRepository) queryBlogs(query string, args ...any) ([]Blog, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List() ([]Blog, error) {
	return r.queryBlogs(`SELECT ` + blogColumns + blogFrom + `ORDER BY b.created_at DESC`)
}

func (r *PostgresRepository) Latest(limit int) ([]Blog, error) {
	return r.queryBlogs(`SELECT `+blogColumns+blogFrom+`ORDER BY b.created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) GetByID(id int) (Blog, error) {
	b, err := scanBlog(r.db.QueryRow(`SELECT `+blogColumns+blogFrom+`WHERE b.blog_id = $1`, id))
	if err == sql.ErrNoRows {
		return Blog{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Blog, error) {
	b, err := scanBlog(r.db.QueryRow(`SELECT `+blogColumns+blogFrom+`WHERE b.slug = $1`, slug))
	if err == sql.ErrNoRows {
		return Blog{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepository) Create(b Blog) (Blog, error) {
	err := r.db.QueryRow(`INSERT INTO blogs (title, slug, author_id, content) VALUES ($1,$2,$3,$4)
        RETURNING blog_id, COALESCE(created_at::text, '')`,
		b.Title, b.Slug, b.AuthorID, b.Content).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return Blog{}, err
	}
	return b, nil
}
