package repos

import (
	"kicktwin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TierRepo struct{ db *sqlx.DB }

func NewTierRepo(db *sqlx.DB) *TierRepo { return &TierRepo{db: db} }

// List returns tiers ascending by threshold; the loyalty math relies on
// that order.
func (r *TierRepo) List() ([]domain.LoyaltyTier, error) {
	var out []domain.LoyaltyTier
	err := r.db.Select(&out, `
	  SELECT name, threshold, discount
	  FROM loyalty_tiers
	  ORDER BY threshold
	`)
	return out, err
}
