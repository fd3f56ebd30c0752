package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/blog"
	"github.com/bundaravattey/ogani-shop-backend/internal/category"
	"github.com/bundaravattey/ogani-shop-backend/internal/config"
	"github.com/bundaravattey/ogani-shop-backend/internal/database"
	"github.com/bundaravattey/ogani-shop-backend/internal/product"
	"github.com/bundaravattey/ogani-shop-backend/internal/user"
)

type seedProduct struct {
	name  string
	price string
}

var catalog = []struct {
	category string
	products []seedProduct
}{
	{"Fresh Meat", []seedProduct{
		{"Beef Steak", "50.00"}, {"Chicken Wings", "15.00"}, {"Pork Chops", "25.00"},
		{"Lamb Chops", "45.00"}, {"Ground Beef", "18.00"},
	}},
	{"Vegetables", []seedProduct{
		{"Broccoli", "5.00"}, {"Carrots", "3.00"}, {"Spinach", "4.00"},
		{"Bell Peppers", "6.00"}, {"Tomatoes", "4.50"}, {"Potatoes", "2.00"},
	}},
	{"Fruits", []seedProduct{
		{"Organic Bananas", "12.00"}, {"Red Apples", "8.00"}, {"Fresh Oranges", "10.00"},
		{"Grapes", "14.00"}, {"Mangoes", "15.00"}, {"Strawberries", "10.00"},
	}},
	{"Dried Fruit & Nuts", []seedProduct{
		{"Raisins", "25.00"}, {"Almonds", "35.00"}, {"Cashews", "40.00"},
		{"Dried Apricots", "30.00"},
	}},
	{"Ocean Foods", []seedProduct{
		{"Salmon Fillet", "45.00"}, {"Tuna Steak", "55.00"}, {"Shrimp", "40.00"},
		{"Lobster Tail", "85.00"},
	}},
	{"Fastfood", []seedProduct{
		{"Hamburger", "12.00"}, {"Cheeseburger", "14.00"}, {"Fried Chicken", "10.00"},
	}},
}

var blogTitles = []string{
	"Cooking tips make cooking simple",
	"6 ways to prepare breakfast for 30",
	"Visit the clean farm in the US",
	"Best vegetables for your garden",
	"Healthy benefits of fresh meat",
}

const blogContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		panic(err)
	}

	// clear catalog and blog data so reseeding never duplicates rows;
	// users and orders are left alone
	if _, err := db.Exec(`TRUNCATE order_items, products, categories, blogs RESTART IDENTITY CASCADE`); err != nil {
		panic(err)
	}
	fmt.Println("existing catalog data cleared")

	users := user.NewService(user.NewPostgresRepository(db))
	categories := category.NewService(category.NewPostgresRepository(db))
	products := product.NewService(product.NewPostgresRepository(db))
	blogs := blog.NewService(blog.NewPostgresRepository(db))

	admin, err := users.Register(user.User{
		Username: "admin",
		Email:    "admin@ogani.local",
		Password: "admin123",
	})
	if err == user.ErrEmailExists {
		admin, err = users.Authenticate("admin@ogani.local", "admin123")
	}
	if err != nil {
		panic(err)
	}

	for _, entry := range catalog {
		cat, err := categories.Create(category.Category{
			Name: entry.category,
			Slug: product.Slugify(entry.category),
		})
		if err != nil {
			panic(err)
		}
		fmt.Println("category:", cat.Name)

		for _, sp := range entry.products {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				panic(err)
			}
			image := "products/" + strings.ReplaceAll(sp.name, " ", "_") + ".jpg"
			p, err := products.Create(product.Product{
				Name:        sp.name,
				CategoryID:  cat.ID,
				Price:       price,
				Stock:       50 + rand.Intn(151),
				Description: "Fresh and high quality " + sp.name + " sourced directly from organic farms.",
				IsFeatured:  rand.Intn(2) == 0,
				Image:       image,
			})
			if err != nil {
				panic(err)
			}
			fmt.Printf(" - product: %s ($%s)\n", p.Name, p.Price.StringFixed(2))
		}
	}

	for _, title := range blogTitles {
		b, err := blogs.Create(blog.Blog{
			Title:    title,
			Slug:     product.Slugify(title),
			AuthorID: admin.ID,
			Content:  blogContent,
		})
		if err != nil {
			panic(err)
		}
		fmt.Println("blog:", b.Title)
	}

	fmt.Println("database populated successfully")
}
