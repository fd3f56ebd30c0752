package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. Prices are decimals, never floats.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID          int             `json:"productID"`
	Name        string          `json:"productName"`
	Slug        string          `json:"slug"`
	CategoryID  int             `json:"categoryID"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description,omitempty"`
	IsFeatured  bool            `json:"isFeatured"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

// Slugify lowercases a name and maps everything outside [a-z0-9] to
// hyphens, collapsing runs. Keeps slugs URL-safe and unique-per-name.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
