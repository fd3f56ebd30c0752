package category

// Category groups products and is addressed by its URL-safe slug.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Category struct {
	ID   int    `json:"categoryID"`
	Name string `json:"categoryName"`
	Slug string `json:"slug"`
}
