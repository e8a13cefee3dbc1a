package repos

import (
	"kicktwin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the catalog, optionally narrowed to one kind.
func (r *ProductRepo) List(kind domain.Kind) ([]domain.Product, error) {
	var out []domain.Product
	if kind == "" {
		err := r.db.Select(&out, `
		  SELECT id, name, brand, kind, price, similarity, image, created_at
		  FROM products
		  ORDER BY id
		`)
		return out, err
	}
	err := r.db.Select(&out, `
	  SELECT id, name, brand, kind, price, similarity, image, created_at
	  FROM products
	  WHERE kind = ?
	  ORDER BY id
	`, kind)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, brand, kind, price, similarity, image, created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Search(q string, kind domain.Kind, limit int) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(brand) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if kind != "" {
		where += ` AND kind = ?`
		args = append(args, kind)
	}
	args = append(args, limit)

	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, brand, kind, price, similarity, image, created_at
	  FROM products
	  WHERE `+where+`
	  ORDER BY id
	  LIMIT ?`, args...)
	return out, err
}

// CountByKind feeds the filter bar counters.
func (r *ProductRepo) CountByKind(kind domain.Kind) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE kind = ?`, kind)
	return n, err
}
