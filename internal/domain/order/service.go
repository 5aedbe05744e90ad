package order

import (
	"context"
	"fmt"
)

type OrderService struct {
	orderRepo OrderRepo
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (Order, error) {
	o, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetDetails returns the order together with its notes and metadata.
func (s *OrderService) GetDetails(ctx context.Context, id string) (Details, error) {
	o, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return Details{}, err
	}

	notes, err := s.orderRepo.GetNotes(ctx, id)
	if err != nil {
		return Details{}, fmt.Errorf("get notes for order %s: %w", id, err)
	}

	meta, err := s.orderRepo.GetMeta(ctx, id)
	if err != nil {
		return Details{}, fmt.Errorf("get metadata for order %s: %w", id, err)
	}

	if notes == nil {
		notes = []Note{}
	}
	if meta == nil {
		meta = map[string]string{}
	}

	return Details{Order: o, Notes: notes, Metadata: meta}, nil
}
