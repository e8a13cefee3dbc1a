package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"kicktwin/internal/domain"
	"kicktwin/internal/repos"

	"github.com/google/uuid"
)

// CheckoutService walks a session through the three checkout steps and turns
// the finished draft plus the cart into a placed order. Drafts live in memory
// only; abandoning checkout costs nothing.
type CheckoutService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
	Notify Notifier

	mu     sync.Mutex
	drafts map[string]*domain.OrderDraft
}

func NewCheckoutService(carts *repos.CartRepo, orders *repos.OrderRepo, n Notifier) *CheckoutService {
	if n == nil {
		n = LogNotifier{}
	}
	return &CheckoutService{
		Carts:  carts,
		Orders: orders,
		Notify: n,
		drafts: map[string]*domain.OrderDraft{},
	}
}

func (s *CheckoutService) draft(sessionID string) *domain.OrderDraft {
	d, ok := s.drafts[sessionID]
	if !ok {
		d = domain.NewOrderDraft()
		s.drafts[sessionID] = d
	}
	return d
}

// Current returns a copy of the session's draft so callers can't mutate
// state behind the lock.
func (s *CheckoutService) Current(sessionID string) domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.draft(sessionID)
}

// SubmitContact records step-one fields and advances when all are present.
// An incomplete form leaves the step where it was.
func (s *CheckoutService) SubmitContact(sessionID, name, phone, email string) domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft(sessionID)
	if d.Step == domain.StepContact {
		d.Name = strings.TrimSpace(name)
		d.Phone = strings.TrimSpace(phone)
		d.Email = strings.TrimSpace(email)
		d.Next()
	}
	return *d
}

// SubmitAddress records step-two fields plus the delivery choice and advances
// when city and address are present.
func (s *CheckoutService) SubmitAddress(sessionID, city, address string, delivery domain.DeliveryMethod) domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft(sessionID)
	if d.Step == domain.StepAddress {
		d.City = strings.TrimSpace(city)
		d.Address = strings.TrimSpace(address)
		if domain.ValidDelivery(delivery) {
			d.Delivery = delivery
		}
		d.Next()
	}
	return *d
}

func (s *CheckoutService) Back(sessionID string) domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft(sessionID)
	d.Back()
	return *d
}

var (
	ErrNotReady  = errors.New("checkout incomplete")
	ErrEmptyCart = errors.New("cart empty")
)

// Place is the terminal submit: only legal at the payment step and with a
// non-empty cart. On success the order is persisted, the cart cleared and the
// draft discarded.
func (s *CheckoutService) Place(sessionID string, payment domain.PaymentMethod) (string, error) {
	s.mu.Lock()
	d := s.draft(sessionID)
	if !d.Submittable() {
		s.mu.Unlock()
		return "", ErrNotReady
	}
	if domain.ValidPayment(payment) {
		d.Payment = payment
	}
	snapshot := *d
	s.mu.Unlock()

	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return "", err
	}
	lines, err := s.Carts.Lines(cartID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	var itemsTotal int64
	for _, l := range lines {
		itemsTotal += l.PriceAtAdd * int64(l.Qty)
	}
	fee := domain.SurchargeFor(snapshot.Delivery)

	sub := domain.OrderSubmission{
		ID:          newOrderID(),
		SessionID:   sessionID,
		Name:        snapshot.Name,
		Phone:       snapshot.Phone,
		Email:       snapshot.Email,
		City:        snapshot.City,
		Address:     snapshot.Address,
		Delivery:    snapshot.Delivery,
		Payment:     snapshot.Payment,
		ItemsTotal:  itemsTotal,
		DeliveryFee: fee,
		Total:       itemsTotal + fee,
	}

	if err := s.Orders.Create(sub, newTrackingNumber(), estimateDelivery(snapshot.Delivery)); err != nil {
		return "", err
	}
	for _, l := range lines {
		if err := s.Orders.InsertItem(sub.ID, l.ProductID, l.Size, l.Qty, l.PriceAtAdd); err != nil {
			return "", err
		}
	}
	_ = s.Carts.Clear(cartID)

	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()

	s.Notify.Notify(sessionID, "Order placed: "+sub.ID)
	return sub.ID, nil
}

// Order numbers stay human-readable like the confirmation emails show them;
// tracking numbers mimic the carrier format.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "ORD-" + time.Now().Format("2006") + "-" + suffix
}

func newTrackingNumber() string {
	suffix := ""
	for _, r := range uuid.NewString() {
		if r >= '0' && r <= '9' {
			suffix += string(r)
		}
		if len(suffix) == 9 {
			break
		}
	}
	for len(suffix) < 9 {
		suffix += "0"
	}
	return "TR" + suffix + "RU"
}

func estimateDelivery(m domain.DeliveryMethod) string {
	days := 3
	switch m {
	case domain.DeliveryExpress:
		days = 1
	case domain.DeliveryPickup:
		days = 0
	}
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
