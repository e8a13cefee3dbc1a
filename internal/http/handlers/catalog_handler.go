package handlers

import (
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Home renders the storefront with the original/replica filter applied.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	kind, ok := validate.Kind(c.Query("kind"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "kind", "value": c.Query("kind")})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Unknown catalog filter"})
	}

	products, err := h.Catalog.List(kind)
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	counts, err := h.Catalog.Counts()
	if err != nil {
		applog.Error(c, "catalog.counts.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}

	return render(c, "home", fiber.Map{
		"Kind":     string(kind),
		"Products": products,
		"Counts":   counts,
	})
}
