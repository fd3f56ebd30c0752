package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bundaravattey/ogani-shop-backend/internal/user"
)

const sessionUserKey = "user_id"

// currentUserID returns the signed-in user's id, or 0 for anonymous.
func (h *Handler) currentUserID(c *fiber.Ctx) int {
	sess, err := h.store.Get(c)
	if err != nil {
		return 0
	}
	if id, ok := sess.Get(sessionUserKey).(int); ok {
		return id
	}
	return 0
}

func (h *Handler) signIn(c *fiber.Ctx, userID int) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// flash stores a one-shot notice; takeFlash consumes it on the next render.
func (h *Handler) flash(c *fiber.Ctx, level, message string) {
	sess, err := h.store.Get(c)
	if err != nil {
		return
	}
	sess.Set("flash_level", level)
	sess.Set("flash_message", message)
	sess.Save()
}

func (h *Handler) takeFlash(c *fiber.Ctx) (string, string) {
	sess, err := h.store.Get(c)
	if err != nil {
		return "", ""
	}
	level, _ := sess.Get("flash_level").(string)
	message, _ := sess.Get("flash_message").(string)
	if level != "" || message != "" {
		sess.Delete("flash_level")
		sess.Delete("flash_message")
		sess.Save()
	}
	return level, message
}

func (h *Handler) requireLogin(c *fiber.Ctx) error {
	if h.currentUserID(c) == 0 {
		h.flash(c, "error", "Please sign in first")
		return c.Redirect("/login")
	}
	return c.Next()
}

func (h *Handler) registerPage(c *fiber.Ctx) error {
	return h.render(c, "register", fiber.Map{})
}

func (h *Handler) register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	if password != confirm {
		h.flash(c, "error", "Passwords do not match")
		return c.Redirect("/register")
	}
	if username == "" || email == "" || password == "" {
		h.flash(c, "error", "All fields are required")
		return c.Redirect("/register")
	}

	created, err := h.users.Register(user.User{Username: username, Email: email, Password: password})
	if err != nil {
		if err == user.ErrEmailExists {
			h.flash(c, "error", "Email already exists")
		} else {
			h.flash(c, "error", "Registration failed: "+err.Error())
		}
		return c.Redirect("/register")
	}

	if err := h.signIn(c, created.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	h.flash(c, "success", "Registration successful")
	return c.Redirect("/")
}

func (h *Handler) loginPage(c *fiber.Ctx) error {
	return h.render(c, "login", fiber.Map{})
}

func (h *Handler) login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	u, err := h.users.Authenticate(email, password)
	if err != nil {
		h.flash(c, "error", "Invalid email or password")
		return c.Redirect("/login")
	}

	if err := h.signIn(c, u.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	h.flash(c, "success", "Welcome back, "+u.Username+"!")
	return c.Redirect("/")
}

func (h *Handler) logout(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		sess.Destroy()
	}
	h.flash(c, "info", "You have been logged out")
	return c.Redirect("/")
}
