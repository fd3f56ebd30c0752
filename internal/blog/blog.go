package blog

// Blog is a standalone article; it has no relation to commerce entities.
type Blog struct {
	ID         int    `json:"blogID"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	AuthorID   int    `json:"authorID"`
	AuthorName string `json:"authorName,omitempty"`
	Content    string `json:"content,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
