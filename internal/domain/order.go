package domain

type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusInTransit  OrderStatus = "in_transit"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Label() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusInTransit:
		return "In transit"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// rank orders the shipment milestones; cancelled orders sit outside the
// happy path and complete nothing past placement.
func (s OrderStatus) rank() int {
	switch s {
	case StatusProcessing:
		return 1
	case StatusShipped:
		return 2
	case StatusInTransit:
		return 3
	case StatusDelivered:
		return 4
	}
	return 0
}

// Milestone is one entry of the fixed shipment timeline.
type Milestone struct {
	Status    OrderStatus `json:"status"`
	Title     string      `json:"title"`
	Desc      string      `json:"desc"`
	Completed bool        `json:"completed"`
}

// Timeline derives the ordered milestone list for a status. The sequence is
// fixed; only the completed flags vary.
func Timeline(status OrderStatus) []Milestone {
	steps := []Milestone{
		{Status: StatusProcessing, Title: "Order placed", Desc: "We received your order"},
		{Status: StatusShipped, Title: "Order shipped", Desc: "Handed to the delivery service"},
		{Status: StatusInTransit, Title: "In transit", Desc: "The parcel is on its way"},
		{Status: StatusDelivered, Title: "Delivered", Desc: "The order arrived at the address"},
	}
	for i := range steps {
		steps[i].Completed = steps[i].Status.rank() <= status.rank()
	}
	return steps
}

// OrderSubmission is the immutable result of a completed checkout. Totals are
// rubles; ItemsTotal excludes the delivery fee, Total includes it.
type OrderSubmission struct {
	ID          string
	SessionID   string
	Name        string
	Phone       string
	Email       string
	City        string
	Address     string
	Delivery    DeliveryMethod
	Payment     PaymentMethod
	ItemsTotal  int64
	DeliveryFee int64
	Total       int64
}
