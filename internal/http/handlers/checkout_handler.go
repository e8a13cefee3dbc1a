package handlers

import (
	"errors"

	"kicktwin/internal/domain"
	applog "kicktwin/internal/log"
	"kicktwin/internal/services"
	"kicktwin/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) ensureSID(c *fiber.Ctx) string {
	// Copy out of the request buffer: the sid is retained past the request as
	// the draft-map key, and fasthttp recycles the backing bytes.
	sid := utils.CopyString(c.Cookies("sid"))
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// View renders whichever step the session's draft is on.
func (h *CheckoutHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	d := h.Checkout.Current(sid)
	fee := domain.SurchargeFor(d.Delivery)
	return render(c, "checkout", fiber.Map{
		"Cart":            cv,
		"Draft":           d,
		"Step":            int(d.Step),
		"DeliveryOptions": domain.DeliveryOptions,
		"PaymentOptions":  domain.PaymentOptions,
		"DeliveryFee":     fee,
		"FinalTotal":      cv.Total + fee,
	})
}

// Contact handles the step-one form. Presence gating lives in the draft; the
// handler only rejects values that are present but malformed.
func (h *CheckoutHandler) Contact(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	name := c.FormValue("name")
	phone := c.FormValue("phone")
	email := c.FormValue("email")

	if name != "" {
		if _, ok := validate.Name(name); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "name"})
			return c.Status(fiber.StatusBadRequest).SendString("name must be 1-60 characters")
		}
	}
	if phone != "" {
		if _, ok := validate.Phone(phone); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
			return c.Status(fiber.StatusBadRequest).SendString("invalid phone")
		}
	}
	if email != "" {
		if _, ok := validate.Email(email); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "email"})
			return c.Status(fiber.StatusBadRequest).SendString("invalid email")
		}
	}

	h.Checkout.SubmitContact(sid, name, phone, email)
	return c.Redirect("/checkout")
}

// Address handles the step-two form including the delivery method choice.
func (h *CheckoutHandler) Address(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	city := c.FormValue("city")
	address := c.FormValue("address")

	if city != "" {
		if _, ok := validate.City(city); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "city"})
			return c.Status(fiber.StatusBadRequest).SendString("city must be 1-40 characters")
		}
	}
	if address != "" {
		if _, ok := validate.Address(address); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "address"})
			return c.Status(fiber.StatusBadRequest).SendString("address must be 1-120 characters")
		}
	}

	delivery := domain.DeliveryMethod(c.FormValue("delivery"))
	h.Checkout.SubmitAddress(sid, city, address, delivery)
	return c.Redirect("/checkout")
}

func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Checkout.Back(sid)
	return c.Redirect("/checkout")
}

// Place is the terminal submit at step three.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	payment := domain.PaymentMethod(c.FormValue("payment"))
	orderID, err := h.Checkout.Place(sid, payment)
	if err != nil {
		if errors.Is(err, services.ErrNotReady) || errors.Is(err, services.ErrEmptyCart) {
			applog.Security(c, "order.place.fail", map[string]any{"error": err.Error()})
			return c.Status(fiber.StatusBadRequest).SendString("Could not place order. Please complete checkout first.")
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not place order. Please try again.")
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})

	return c.Redirect("/order/" + orderID)
}
