package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

type CartLineRow struct {
	ProductID  int64  `db:"product_id"`
	Name       string `db:"name"`
	Brand      string `db:"brand"`
	Kind       string `db:"kind"`
	Image      string `db:"image"`
	Size       int    `db:"size"`
	Qty        int    `db:"qty"`
	PriceAtAdd int64  `db:"price_at_add"`
	Subtotal   int64  `db:"subtotal"`
}

func (r *CartRepo) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := r.db.Exec(`INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// UpsertLine merges on the (product, size) key: a repeat add bumps the
// quantity instead of creating a second line.
func (r *CartRepo) UpsertLine(cartID string, productID int64, size, qty int, price int64) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(cart_id,product_id,size,qty,price_at_add,created_at)
		VALUES(?,?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(cart_id,product_id,size) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, cartID, productID, size, qty, price)
	return err
}

// SetQty replaces a line's quantity. Returns the number of rows touched so
// the service can distinguish a missing line.
func (r *CartRepo) SetQty(cartID string, productID int64, size, qty int) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE cart_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE cart_id = ? AND product_id = ? AND size = ?
	`, qty, cartID, productID, size)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CartRepo) Remove(cartID string, productID int64, size int) (int64, error) {
	res, err := r.db.Exec(`
		DELETE FROM cart_items WHERE cart_id = ? AND product_id = ? AND size = ?
	`, cartID, productID, size)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Lines returns cart lines in insertion order for display.
func (r *CartRepo) Lines(cartID string) ([]CartLineRow, error) {
	rows := []CartLineRow{}
	err := r.db.Select(&rows, `
	  SELECT ci.product_id, p.name, p.brand, p.kind, p.image, ci.size, ci.qty, ci.price_at_add,
	         (ci.qty*ci.price_at_add) AS subtotal
	  FROM cart_items ci JOIN products p ON p.id=ci.product_id
	  WHERE ci.cart_id = ?
	  ORDER BY ci.rowid
	`, cartID)
	return rows, err
}

func (r *CartRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID)
	return err
}
