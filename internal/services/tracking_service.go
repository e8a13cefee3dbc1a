package services

import (
	"kicktwin/internal/domain"
	"kicktwin/internal/repos"
)

// TrackedItem is one line of a tracked order as shown on the lookup page.
type TrackedItem struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Size     int    `json:"size"`
	Qty      int    `json:"qty"`
	Price    int64  `json:"price"`
	Subtotal int64  `json:"subtotal"`
}

type TrackedOrder struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	Status      domain.OrderStatus `json:"status"`
	StatusLabel string             `json:"status_label"`
	Items       []TrackedItem      `json:"items"`
	Total       int64              `json:"total"`
	TrackingNo  string             `json:"tracking_number,omitempty"`
	City        string             `json:"city"`
	Address     string             `json:"address"`
	EstDelivery string             `json:"estimated_delivery,omitempty"`
	Timeline    []domain.Milestone `json:"timeline"`
}

// TrackingProvider is the seam for a real carrier/tracking backend. The
// shipped implementation answers from the local orders table; unknown
// identifiers return domain.ErrOrderNotFound.
type TrackingProvider interface {
	Lookup(identifier string) (TrackedOrder, error)
}

type TrackingService struct {
	Orders *repos.OrderRepo
}

func NewTrackingService(orders *repos.OrderRepo) *TrackingService {
	return &TrackingService{Orders: orders}
}

func (s *TrackingService) Lookup(identifier string) (TrackedOrder, error) {
	o, items, err := s.Orders.GetByIdentifier(identifier)
	if err != nil {
		return TrackedOrder{}, err
	}

	status := domain.OrderStatus(o.Status)
	t := TrackedOrder{
		ID:          o.ID,
		Date:        o.CreatedAt,
		Status:      status,
		StatusLabel: status.Label(),
		Total:       o.Total,
		TrackingNo:  o.TrackingNo,
		City:        o.City,
		Address:     o.Address,
		EstDelivery: o.EstDelivery,
		Timeline:    domain.Timeline(status),
	}
	for _, it := range items {
		t.Items = append(t.Items, TrackedItem{
			Name:     it.Name,
			Image:    it.Image,
			Size:     it.Size,
			Qty:      it.Qty,
			Price:    it.Price,
			Subtotal: it.Subtotal,
		})
	}
	return t, nil
}
