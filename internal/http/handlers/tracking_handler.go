package handlers

import (
	"errors"
	"strings"

	"kicktwin/internal/domain"
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TrackingHandler struct {
	Tracking services.TrackingProvider
}

// Page renders the lookup form, or the tracked order when an identifier was
// submitted.
func (h *TrackingHandler) Page(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		return render(c, "track", fiber.Map{})
	}
	id, ok := validate.TrackingID(raw)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "tracking", "value": raw})
		return c.Status(fiber.StatusBadRequest).Render("track", fiber.Map{
			"Err": "Enter a valid order number or tracking code",
		})
	}

	order, err := h.Tracking.Lookup(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).Render("track", fiber.Map{
				"Q": id, "Err": "No order found for that identifier",
			})
		}
		applog.Error(c, "track.lookup.fail", err, map[string]any{"id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not look up the order"})
	}

	return render(c, "track", fiber.Map{"Q": id, "Order": order})
}

// Check is the JSON lookup endpoint.
func (h *TrackingHandler) Check(c *fiber.Ctx) error {
	id, ok := validate.TrackingID(c.Query("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "enter a valid order number or tracking code",
		})
	}

	order, err := h.Tracking.Lookup(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}
