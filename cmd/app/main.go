package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/bundaravattey/ogani-shop-backend/internal/blog"
	"github.com/bundaravattey/ogani-shop-backend/internal/category"
	"github.com/bundaravattey/ogani-shop-backend/internal/config"
	"github.com/bundaravattey/ogani-shop-backend/internal/database"
	"github.com/bundaravattey/ogani-shop-backend/internal/order"
	"github.com/bundaravattey/ogani-shop-backend/internal/payment"
	"github.com/bundaravattey/ogani-shop-backend/internal/product"
	"github.com/bundaravattey/ogani-shop-backend/internal/user"
	"github.com/bundaravattey/ogani-shop-backend/internal/web"
)

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

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(logger.New())
	setupCORS(app)

	categoryService := category.NewService(category.NewPostgresRepository(db))
	productService := product.NewService(product.NewPostgresRepository(db))
	blogService := blog.NewService(blog.NewPostgresRepository(db))
	userService := user.NewService(user.NewPostgresRepository(db))
	orderService := order.NewService(order.NewPostgresRepository(db))
	gateway := payment.NewPayWayGateway(cfg.PayWay)

	// server-rendered storefront; auth rides on the session cookie
	store := session.New()
	webHandler := web.NewHandler(categoryService, productService, blogService, userService, orderService, gateway, store)
	webHandler.RegisterRoutes(app)

	app.Static("/static", "./static")

	// public API
	userHandler := user.NewHandler(userService)
	userHandler.RegisterPublicRoutes(app)
	category.NewHandler(categoryService).RegisterPublicRoutes(app)
	product.NewHandler(productService).RegisterPublicRoutes(app)
	blog.NewHandler(blogService).RegisterPublicRoutes(app)

	// everything under /api/v1 registered from here on requires a JWT
	app.Use("/api/v1", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	order.NewHandler(orderService).RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))
}
