package handlers

import (
	applog "kicktwin/internal/log"
	"kicktwin/internal/repos"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Repo *repos.OrderRepo
}

// View shows the confirmation page. Only the owning session may see an
// order; everyone else gets the same 404 as a missing id.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.TrackingID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	o, items, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	sid := c.Cookies("sid")
	if sid == "" || sid != o.SessionID {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	return render(c, "order", fiber.Map{"Order": o, "Items": items})
}

// History lists the session's orders.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return render(c, "order_history", fiber.Map{"Orders": []repos.OrderRow{}})
	}
	orders, err := h.Repo.ListBySession(sid)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "order_history", fiber.Map{"Orders": orders})
}
