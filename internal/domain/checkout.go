package domain

// CheckoutStep is a tagged state rather than a bare counter so the flow can
// never hold an out-of-range step.
type CheckoutStep int

const (
	StepContact CheckoutStep = iota + 1
	StepAddress
	StepPayment
)

func (s CheckoutStep) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

type DeliveryMethod string

const (
	DeliveryCourier DeliveryMethod = "courier"
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryExpress DeliveryMethod = "express"
)

type DeliveryOption struct {
	ID        DeliveryMethod
	Name      string
	Duration  string // display only
	Surcharge int64
}

var DeliveryOptions = []DeliveryOption{
	{ID: DeliveryCourier, Name: "Courier delivery", Duration: "2-3 days", Surcharge: 0},
	{ID: DeliveryPickup, Name: "Store pickup", Duration: "Today", Surcharge: 0},
	{ID: DeliveryExpress, Name: "Express delivery", Duration: "Next day", Surcharge: 1500},
}

// SurchargeFor returns the delivery fee for a method; unknown methods cost
// nothing, matching the courier default.
func SurchargeFor(m DeliveryMethod) int64 {
	for _, opt := range DeliveryOptions {
		if opt.ID == m {
			return opt.Surcharge
		}
	}
	return 0
}

func ValidDelivery(m DeliveryMethod) bool {
	for _, opt := range DeliveryOptions {
		if opt.ID == m {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentCash    PaymentMethod = "cash"
	PaymentInstant PaymentMethod = "instant"
)

type PaymentOption struct {
	ID   PaymentMethod
	Name string
	Desc string
}

var PaymentOptions = []PaymentOption{
	{ID: PaymentCard, Name: "Bank card", Desc: "Visa, MasterCard, MIR"},
	{ID: PaymentInstant, Name: "Instant transfer", Desc: "By phone number"},
	{ID: PaymentCash, Name: "Cash on delivery", Desc: "Pay the courier"},
}

func ValidPayment(m PaymentMethod) bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentInstant:
		return true
	}
	return false
}

// OrderDraft accumulates checkout form fields across the three steps. It is
// the whole state machine: Next refuses to advance until the current step's
// required fields are present, Back always works except at the first step.
type OrderDraft struct {
	Step     CheckoutStep
	Name     string
	Phone    string
	Email    string
	City     string
	Address  string
	Delivery DeliveryMethod
	Payment  PaymentMethod
}

func NewOrderDraft() *OrderDraft {
	return &OrderDraft{Step: StepContact, Delivery: DeliveryCourier, Payment: PaymentCard}
}

// CanAdvance reports whether the current step's required fields are filled.
// At the payment step there is nothing further to advance to.
func (d *OrderDraft) CanAdvance() bool {
	switch d.Step {
	case StepContact:
		return d.Name != "" && d.Phone != "" && d.Email != ""
	case StepAddress:
		return d.City != "" && d.Address != ""
	}
	return false
}

// Next moves the draft one step forward when the gate passes. A blocked
// transition is silent: the step stays put and no error is raised.
func (d *OrderDraft) Next() {
	if !d.CanAdvance() {
		return
	}
	switch d.Step {
	case StepContact:
		d.Step = StepAddress
	case StepAddress:
		d.Step = StepPayment
	}
}

func (d *OrderDraft) Back() {
	if d.Step > StepContact {
		d.Step--
	}
}

// Submittable reports whether the draft has walked all three steps.
func (d *OrderDraft) Submittable() bool {
	return d.Step == StepPayment
}
