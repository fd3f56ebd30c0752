package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/bundaravattey/ogani-shop-backend/internal/blog"
	"github.com/bundaravattey/ogani-shop-backend/internal/category"
	"github.com/bundaravattey/ogani-shop-backend/internal/order"
	"github.com/bundaravattey/ogani-shop-backend/internal/payment"
	"github.com/bundaravattey/ogani-shop-backend/internal/product"
	"github.com/bundaravattey/ogani-shop-backend/internal/user"
)

// Handler serves the server-rendered storefront. Auth rides on the session
// cookie; failures become a redirect plus a flash notice rather than JSON.
type Handler struct {
	categories *category.Service
	products   *product.Service
	blogs      *blog.Service
	users      *user.Service
	orders     *order.Service
	gateway    payment.Gateway
	store      *session.Store
}

func NewHandler(
	categories *category.Service,
	products *product.Service,
	blogs *blog.Service,
	users *user.Service,
	orders *order.Service,
	gateway payment.Gateway,
	store *session.Store,
) *Handler {
	return &Handler{
		categories: categories,
		products:   products,
		blogs:      blogs,
		users:      users,
		orders:     orders,
		gateway:    gateway,
		store:      store,
	}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.index)
	app.Get("/shop", h.shopGrid)
	app.Get("/shop/category/:slug", h.shopGrid)
	app.Get("/product/:slug", h.shopDetails)
	app.Get("/blog", h.blogList)
	app.Get("/blog/:slug", h.blogDetails)
	app.Get("/contact", h.contact)
	app.Get("/register", h.registerPage)
	app.Post("/register", h.register)
	app.Get("/login", h.loginPage)
	app.Post("/login", h.login)
	app.Get("/logout", h.logout)

	app.Post("/add-to-cart/:slug", h.requireLogin, h.addToCart)
	app.Get("/cart", h.requireLogin, h.viewCart)
	app.Post("/update-cart-item/:id<[0-9]+>", h.requireLogin, h.updateCartItem)
	app.Post("/remove-from-cart/:id<[0-9]+>", h.requireLogin, h.removeFromCart)
	app.Get("/checkout", h.requireLogin, h.checkoutPage)
	app.Post("/checkout", h.requireLogin, h.checkout)
	app.Get("/khqr-payment/:orderID<[0-9]+>", h.requireLogin, h.khqrPayment)
	app.Get("/order-success/:orderID<[0-9]+>", h.requireLogin, h.orderSuccess)
}

// render injects the data every page needs: the category list for the nav,
// the signed-in user id, and any pending flash notice.
func (h *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	cats, err := h.categories.List()
	if err == nil {
		data["Categories"] = cats
	}
	level, message := h.takeFlash(c)
	data["FlashLevel"] = level
	data["FlashMessage"] = message
	data["UserID"] = h.currentUserID(c)
	return c.Render(name, data)
}

func (h *Handler) index(c *fiber.Ctx) error {
	featured, _ := h.products.Featured(40)
	latest, _ := h.products.Latest(6)
	topRated, _ := h.products.Random(6)
	review, _ := h.products.Random(6)
	blogs, _ := h.blogs.Latest(3)

	return h.render(c, "index", fiber.Map{
		"FeaturedProducts": featured,
		"LatestProducts":   latest,
		"TopRatedProducts": topRated,
		"ReviewProducts":   review,
		"Blogs":            blogs,
	})
}

func (h *Handler) shopGrid(c *fiber.Ctx) error {
	var (
		products []product.Product
		current  *category.Category
		err      error
	)

	if slug := c.Params("slug"); slug != "" {
		cat, err := h.categories.GetBySlug(slug)
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		current = &cat
		products, err = h.products.ListByCategoryID(cat.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
	} else {
		products, err = h.products.List()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
	}

	return h.render(c, "shop-grid", fiber.Map{
		"Products":        products,
		"CurrentCategory": current,
	})
}

func (h *Handler) shopDetails(c *fiber.Ctx) error {
	p, err := h.products.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	related, _ := h.products.Related(p.CategoryID, p.Slug, 4)

	return h.render(c, "shop-details", fiber.Map{
		"Product":         p,
		"RelatedProducts": related,
	})
}

func (h *Handler) blogList(c *fiber.Ctx) error {
	blogs, err := h.blogs.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return h.render(c, "blog", fiber.Map{"Blogs": blogs})
}

func (h *Handler) blogDetails(c *fiber.Ctx) error {
	b, err := h.blogs.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return h.render(c, "blog-details", fiber.Map{"Blog": b})
}

func (h *Handler) contact(c *fiber.Ctx) error {
	return h.render(c, "contact", fiber.Map{})
}
