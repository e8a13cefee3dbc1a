package services

import (
	"fmt"

	"kicktwin/internal/domain"
	"kicktwin/internal/repos"
)

type CartService struct {
	Carts  *repos.CartRepo
	Prods  *repos.ProductRepo
	Notify Notifier
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo, n Notifier) *CartService {
	if n == nil {
		n = LogNotifier{}
	}
	return &CartService{Carts: carts, Prods: prods, Notify: n}
}

// Add puts one unit of (product, size) in the cart. A repeat add merges into
// the existing line; the price is captured at first add.
func (s *CartService) Add(sessionID string, productID int64, size int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	if err := s.Carts.UpsertLine(cartID, productID, size, 1, p.Price); err != nil {
		return err
	}
	s.Notify.Notify(sessionID, fmt.Sprintf("Added to cart: %s (size %d)", p.Name, size))
	return nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line, so
// the cart can never hold a zero-quantity row.
func (s *CartService) SetQuantity(sessionID string, productID int64, size, qty int) error {
	if qty <= 0 {
		return s.Remove(sessionID, productID, size)
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	n, err := s.Carts.SetQty(cartID, productID, size, qty)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLineNotFound
	}
	return nil
}

func (s *CartService) Remove(sessionID string, productID int64, size int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	n, err := s.Carts.Remove(cartID, productID, size)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLineNotFound
	}
	s.Notify.Notify(sessionID, "Item removed from cart")
	return nil
}

type CartView struct {
	Lines []repos.CartLineRow
	Total int64
	Count int
}

// View loads the cart and derives Total and Count from the lines. Nothing is
// cached; every read recomputes from current rows.
func (s *CartService) View(sessionID string) (CartView, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return CartView{}, err
	}
	lines, err := s.Carts.Lines(cartID)
	if err != nil {
		return CartView{}, err
	}
	cv := CartView{Lines: lines}
	for _, l := range lines {
		cv.Total += l.Subtotal
		cv.Count += l.Qty
	}
	return cv, nil
}
