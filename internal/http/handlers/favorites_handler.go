package handlers

import (
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FavoritesHandler struct {
	Fav *services.FavoritesService
}

func (h *FavoritesHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	items, err := h.Fav.List(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load favorites"})
	}
	return render(c, "favorites", fiber.Map{"Items": items})
}

func (h *FavoritesHandler) Save(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	pid, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Fav.Save(sid, pid); err != nil {
		applog.Error(c, "favorites.save.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not save item")
	}
	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	applog.Audit(c, "favorites.save", map[string]any{"product": pid})
	return c.Redirect(back)
}

func (h *FavoritesHandler) Unsave(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	pid, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Fav.Unsave(sid, pid); err != nil {
		applog.Error(c, "favorites.unsave.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not unsave item")
	}
	applog.Audit(c, "favorites.unsave", map[string]any{"product": pid})
	return c.Redirect("/favorites")
}
