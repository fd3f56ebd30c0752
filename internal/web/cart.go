package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bundaravattey/ogani-shop-backend/internal/order"
	"github.com/bundaravattey/ogani-shop-backend/internal/payment"
)

func isAjax(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "XMLHttpRequest"
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	p, err := h.products.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	ord, err := h.orders.AddToCart(userID, p.ID, quantity)
	if err != nil {
		h.flash(c, "error", err.Error())
		return c.Redirect("/product/" + p.Slug)
	}

	// merged into an existing line or added a new one
	merged := false
	for _, item := range ord.Items {
		if item.ProductID == p.ID && item.Quantity > quantity {
			merged = true
			break
		}
	}
	if merged {
		h.flash(c, "success", "Updated quantity for "+p.Name)
	} else {
		h.flash(c, "success", "Added "+p.Name+" to your cart")
	}
	return c.Redirect("/product/" + p.Slug)
}

func (h *Handler) viewCart(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	ord, err := h.orders.ViewCart(userID)
	if err != nil {
		if err == order.ErrNoOpenOrder {
			return h.render(c, "cart", fiber.Map{"Order": nil, "OrderItems": []order.Item{}})
		}
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return h.render(c, "cart", fiber.Map{"Order": ord, "OrderItems": ord.Items})
}

func (h *Handler) updateCartItem(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil {
		quantity = 1
	}

	upd, err := h.orders.UpdateItemQuantity(userID, itemID, quantity)
	if err != nil {
		if isAjax(c) {
			status := fiber.StatusInternalServerError
			if err == order.ErrNotFound {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		h.flash(c, "error", err.Error())
		return c.Redirect("/cart")
	}

	if upd.Removed {
		if isAjax(c) {
			return c.JSON(fiber.Map{
				"success":    true,
				"removed":    true,
				"cart_total": upd.CartTotal.InexactFloat64(),
				"message":    "Removed " + upd.ProductName + " from cart",
			})
		}
		h.flash(c, "info", "Removed "+upd.ProductName+" from cart")
		return c.Redirect("/cart")
	}

	if isAjax(c) {
		return c.JSON(fiber.Map{
			"success":    true,
			"item_total": upd.ItemTotal.InexactFloat64(),
			"cart_total": upd.CartTotal.InexactFloat64(),
			"quantity":   upd.Quantity,
			"message":    "Updated " + upd.ProductName + " quantity",
		})
	}
	h.flash(c, "success", "Updated "+upd.ProductName+" quantity")
	return c.Redirect("/cart")
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	upd, err := h.orders.RemoveItem(userID, itemID)
	if err != nil {
		if err == order.ErrNotFound {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	h.flash(c, "success", "Removed "+upd.ProductName+" from your cart")
	return c.Redirect("/cart")
}

func (h *Handler) checkoutPage(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	ord, err := h.orders.ViewCart(userID)
	if err != nil || len(ord.Items) == 0 {
		h.flash(c, "warning", "Your cart is empty")
		return c.Redirect("/shop")
	}

	return h.render(c, "checkout", fiber.Map{"Order": ord, "OrderItems": ord.Items})
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	billing := order.Billing{
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
		Address:  c.FormValue("address"),
		City:     c.FormValue("city"),
		Province: c.FormValue("province"),
		Note:     c.FormValue("notes"),
	}
	method := c.FormValue("payment_method")

	ord, placed, err := h.orders.Checkout(userID, billing, method)
	if err != nil {
		h.flash(c, "warning", "Your cart is empty")
		return c.Redirect("/shop")
	}

	if !placed {
		return c.Redirect("/khqr-payment/" + strconv.Itoa(ord.ID))
	}

	h.flash(c, "success", "Order placed successfully!")
	return c.Redirect("/order-success/" + strconv.Itoa(ord.ID))
}

func (h *Handler) khqrPayment(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	orderID, err := strconv.Atoi(c.Params("orderID"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	// only the owner's still-open order can be paid
	ord, err := h.orders.OpenByID(userID, orderID)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	link, err := h.gateway.PaymentLink(ord.TotalPrice)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	qr, err := payment.QRBase64(link)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return h.render(c, "khqr-payment", fiber.Map{
		"Order":         ord,
		"OrderItems":    ord.Items,
		"MerchantName":  h.gateway.MerchantName(),
		"AccountNumber": h.gateway.AccountNumber(),
		"PaymentURL":    link,
		"QRCodeBase64":  qr,
	})
}

func (h *Handler) orderSuccess(c *fiber.Ctx) error {
	userID := h.currentUserID(c)

	orderID, err := strconv.Atoi(c.Params("orderID"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	ord, err := h.orders.GetByID(userID, orderID)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return h.render(c, "order-success", fiber.Map{"Order": ord})
}
