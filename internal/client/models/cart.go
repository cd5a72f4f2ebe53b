package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrIncompleteLine is returned when a cart line lacks the price or quantity
// needed to compute totals.
var ErrIncompleteLine = errors.New("incomplete cart line")

// CartLine is one product entry of a cart. Price and Quantity are pointers so
// a field missing from the server response is distinguishable from zero.
type CartLine struct {
	ID        string           `json:"_id"`
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Image     string           `json:"image,omitempty"`
	Size      string           `json:"size,omitempty"`
	Color     string           `json:"color,omitempty"`
	Quantity  *int             `json:"quantity"`
}

// Qty returns the quantity, or 0 when absent.
func (l CartLine) Qty() int {
	if l.Quantity == nil {
		return 0
	}
	return *l.Quantity
}

// Subtotal is price × quantity, or ErrIncompleteLine.
func (l CartLine) Subtotal() (decimal.Decimal, error) {
	if l.Price == nil || l.Quantity == nil {
		return decimal.Zero, fmt.Errorf("line %q: %w", l.ID, ErrIncompleteLine)
	}
	return l.Price.Mul(decimal.NewFromInt(int64(*l.Quantity))), nil
}

// CartSnapshot is a cached, server-authoritative view of the cart.
type CartSnapshot struct {
	Lines []CartLine `json:"items"`
}

// Empty reports whether the snapshot holds no lines.
func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

// TotalPrice folds price × quantity over all lines.
func (s CartSnapshot) TotalPrice() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range s.Lines {
		sub, err := l.Subtotal()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(sub)
	}
	return total, nil
}

// TotalItems folds quantity over all lines.
func (s CartSnapshot) TotalItems() (int, error) {
	total := 0
	for _, l := range s.Lines {
		if l.Quantity == nil {
			return 0, fmt.Errorf("line %q: %w", l.ID, ErrIncompleteLine)
		}
		total += *l.Quantity
	}
	return total, nil
}

// Clone returns a deep copy safe to hand out to callers.
func (s CartSnapshot) Clone() CartSnapshot {
	if s.Lines == nil {
		return CartSnapshot{Lines: []CartLine{}}
	}
	lines := make([]CartLine, len(s.Lines))
	for i, l := range s.Lines {
		if l.Price != nil {
			p := *l.Price
			l.Price = &p
		}
		if l.Quantity != nil {
			q := *l.Quantity
			l.Quantity = &q
		}
		lines[i] = l
	}
	return CartSnapshot{Lines: lines}
}

// AddToCartRequest is the payload of POST /cart/add.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}
