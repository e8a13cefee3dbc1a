package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type FavoritesRepo struct{ db *sqlx.DB }

func NewFavoritesRepo(db *sqlx.DB) *FavoritesRepo { return &FavoritesRepo{db: db} }

func (r *FavoritesRepo) Ensure(sessionID string) (string, error) {
	var id string
	if err := r.db.Get(&id, `SELECT id FROM favorites WHERE session_id=?`, sessionID); err == nil {
		return id, nil
	}
	_, err := r.db.Exec(`INSERT INTO favorites(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *FavoritesRepo) Add(favoritesID string, productID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO favorite_items(favorites_id, product_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(favorites_id, product_id) DO NOTHING
	`, favoritesID, productID)
	return err
}

func (r *FavoritesRepo) Remove(favoritesID string, productID int64) error {
	_, err := r.db.Exec(`DELETE FROM favorite_items WHERE favorites_id=? AND product_id=?`, favoritesID, productID)
	return err
}

type FavoriteRow struct {
	ProductID  int64  `db:"product_id"`
	Name       string `db:"name"`
	Brand      string `db:"brand"`
	Kind       string `db:"kind"`
	Price      int64  `db:"price"`
	Similarity int    `db:"similarity"`
	Image      string `db:"image"`
}

func (r *FavoritesRepo) List(favoritesID string) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.db.Select(&out, `
	  SELECT p.id AS product_id, p.name, p.brand, p.kind, p.price, p.similarity, p.image
	  FROM favorite_items fi
	  JOIN products p ON p.id = fi.product_id
	  WHERE fi.favorites_id = ?
	  ORDER BY p.name
	`, favoritesID)
	return out, err
}
