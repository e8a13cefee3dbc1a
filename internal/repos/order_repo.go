package repos

import (
	"database/sql"

	"kicktwin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID            string `db:"id"`
	SessionID     string `db:"session_id"`
	CustomerName  string `db:"customer_name"`
	CustomerPhone string `db:"customer_phone"`
	CustomerEmail string `db:"customer_email"`
	City          string `db:"city"`
	Address       string `db:"address"`
	Delivery      string `db:"delivery"`
	Payment       string `db:"payment"`
	ItemsTotal    int64  `db:"items_total"`
	DeliveryFee   int64  `db:"delivery_fee"`
	Total         int64  `db:"total"`
	Status        string `db:"status"`
	TrackingNo    string `db:"tracking_number"`
	EstDelivery   string `db:"estimated_delivery"`
	CreatedAt     string `db:"created_at"`
}

type OrderItemRow struct {
	Name     string `db:"name"`
	Kind     string `db:"kind"`
	Image    string `db:"image"`
	Size     int    `db:"size"`
	Qty      int    `db:"qty"`
	Price    int64  `db:"price"`
	Subtotal int64  `db:"subtotal"`
}

// Create inserts a new order header from a completed checkout.
func (r *OrderRepo) Create(sub domain.OrderSubmission, trackingNo, estDelivery string) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, session_id, customer_name, customer_phone, customer_email,
	     city, address, delivery, payment,
	     items_total, delivery_fee, total, status,
	     tracking_number, estimated_delivery, created_at)
	  VALUES
	    (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'processing', ?, ?, CURRENT_TIMESTAMP)
	`, sub.ID, sub.SessionID, sub.Name, sub.Phone, sub.Email,
		sub.City, sub.Address, string(sub.Delivery), string(sub.Payment),
		sub.ItemsTotal, sub.DeliveryFee, sub.Total, trackingNo, estDelivery)
	return err
}

func (r *OrderRepo) InsertItem(orderID string, productID int64, size, qty int, price int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, size, qty, price)
	  VALUES(?, ?, ?, ?, ?)
	`, orderID, productID, size, qty, price)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
		SELECT id, session_id, customer_name, customer_phone, customer_email,
		       city, address, delivery, payment,
		       items_total, delivery_fee, total, status,
		       COALESCE(tracking_number,'') AS tracking_number,
		       COALESCE(estimated_delivery,'') AS estimated_delivery,
		       created_at
		FROM orders
		WHERE id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}
	items, err := r.items(orderID)
	if err != nil {
		return OrderRow{}, nil, err
	}
	return o, items, nil
}

// GetByIdentifier resolves an order number or a shipment tracking code.
func (r *OrderRepo) GetByIdentifier(identifier string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	err := r.db.Get(&o, `
		SELECT id, session_id, customer_name, customer_phone, customer_email,
		       city, address, delivery, payment,
		       items_total, delivery_fee, total, status,
		       COALESCE(tracking_number,'') AS tracking_number,
		       COALESCE(estimated_delivery,'') AS estimated_delivery,
		       created_at
		FROM orders
		WHERE id = ? OR tracking_number = ?
	`, identifier, identifier)
	if err == sql.ErrNoRows {
		return OrderRow{}, nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return OrderRow{}, nil, err
	}
	items, err := r.items(o.ID)
	if err != nil {
		return OrderRow{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) items(orderID string) ([]OrderItemRow, error) {
	var items []OrderItemRow
	err := r.db.Select(&items, `
		SELECT p.name, p.kind, p.image, oi.size, oi.qty, oi.price, (oi.qty * oi.price) AS subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name, oi.size
	`, orderID)
	return items, err
}

// SpendBySession sums a session's order totals; feeds the loyalty tier.
func (r *OrderRepo) SpendBySession(sessionID string) (int64, error) {
	var spend int64
	err := r.db.Get(&spend, `
		SELECT COALESCE(SUM(total),0) FROM orders WHERE session_id = ?
	`, sessionID)
	return spend, err
}

func (r *OrderRepo) ListBySession(sessionID string) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, session_id, customer_name, customer_phone, customer_email,
		       city, address, delivery, payment,
		       items_total, delivery_fee, total, status,
		       COALESCE(tracking_number,'') AS tracking_number,
		       COALESCE(estimated_delivery,'') AS estimated_delivery,
		       created_at
		FROM orders
		WHERE session_id = ?
		ORDER BY datetime(created_at) DESC
	`, sessionID)
	return out, err
}
