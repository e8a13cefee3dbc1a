package domain

import "errors"

// Kind separates authentic sneakers from their replica counterparts.
type Kind string

const (
	KindOriginal Kind = "original"
	KindReplica  Kind = "replica"
)

// Product prices are whole rubles. Similarity only means something for
// replicas; originals always carry 100.
type Product struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Brand      string `db:"brand"`
	Kind       Kind   `db:"kind"`
	Price      int64  `db:"price"`
	Similarity int    `db:"similarity"`
	Image      string `db:"image"`
	CreatedAt  string `db:"created_at"`
}

// Size range the shop stocks. Anything outside is rejected at the validation
// layer, so cart code never sees an unknown size.
const (
	SizeMin = 38
	SizeMax = 46
)

type LoyaltyTier struct {
	Name      string `db:"name"`
	Threshold int64  `db:"threshold"`
	Discount  int    `db:"discount"`
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrLineNotFound  = errors.New("cart line not found")
)
