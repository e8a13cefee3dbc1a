package handlers

import (
	"errors"

	"kicktwin/internal/domain"
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	size, ok := validate.Size(c.FormValue("size"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "size", "value": c.FormValue("size")})
		return c.Status(400).SendString("size must be 38-46")
	}
	if err := h.Cart.Add(sid, productID, size); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": productID})
		return c.Status(500).SendString("Could not add item")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": productID, "size": size})
	return c.Redirect("/cart")
}

// Update replaces a line's quantity; zero removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	size, ok := validate.Size(c.FormValue("size"))
	if !ok {
		return c.Status(400).SendString("size must be 38-46")
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		return c.Status(400).SendString("invalid quantity")
	}
	if err := h.Cart.SetQuantity(sid, productID, size, qty); err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			return c.Status(404).SendString("no such cart line")
		}
		applog.Error(c, "cart.update.fail", err, map[string]any{"product": productID})
		return c.Status(500).SendString("Could not update item")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	size, ok := validate.Size(c.FormValue("size"))
	if !ok {
		return c.Status(400).SendString("size must be 38-46")
	}
	if err := h.Cart.Remove(sid, productID, size); err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			return c.Status(404).SendString("no such cart line")
		}
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": productID})
		return c.Status(500).SendString("Could not remove item")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}
