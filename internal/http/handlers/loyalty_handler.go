package handlers

import (
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LoyaltyHandler struct {
	Loyalty *services.LoyaltyService
}

func (h *LoyaltyHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

func (h *LoyaltyHandler) Status(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	st, err := h.Loyalty.Status(sid)
	if err != nil {
		applog.Error(c, "loyalty.status.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load loyalty status"})
	}
	return render(c, "loyalty", fiber.Map{"Status": st})
}

// StatusJSON mirrors the page for the SPA-style client.
func (h *LoyaltyHandler) StatusJSON(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	st, err := h.Loyalty.Status(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"spend":    st.Spend,
		"current":  st.Current,
		"next":     st.Next,
		"progress": st.Progress,
		"tiers":    st.Tiers,
	})
}
