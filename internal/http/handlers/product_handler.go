package handlers

import (
	"kicktwin/internal/domain"
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This sneaker is no longer available"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == 0 {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This sneaker is no longer available"})
	}
	sizes := []int{}
	for s := domain.SizeMin; s <= domain.SizeMax; s++ {
		sizes = append(sizes, s)
	}
	return render(c, "product", fiber.Map{"P": p, "Sizes": sizes})
}
