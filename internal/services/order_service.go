package services

import (
	"context"

	"urbanbean/internal/domain"
	"urbanbean/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Receipt describes a stored order. LineTotal is informational; the order keeps
// the client's Subtotal.
type Receipt struct {
	ID        string
	Subtotal  float64
	LineTotal float64
}

// Mismatch reports whether the client subtotal disagrees with the item lines.
func (r Receipt) Mismatch() bool { return r.Subtotal != r.LineTotal }

// Place records the order exactly as submitted. No stock is checked or
// reserved and no payment is taken.
func (s *OrderService) Place(ctx context.Context, raw map[string]any) (Receipt, error) {
	o, err := domain.NewOrder(raw)
	if err != nil {
		return Receipt{}, err
	}
	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{ID: id, Subtotal: o.Subtotal, LineTotal: o.LineTotal()}, nil
}
