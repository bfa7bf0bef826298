package store

import (
	"encoding/json"
	"fmt"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

// Orders returns the full order collection, front-to-back = newest-first.
// Like users, a corrupt blob is a hard error.
func (s *Store) Orders() ([]models.Order, error) {
	blob, ok, err := s.readBlob(keyOrders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(blob), &orders); err != nil {
		return nil, fmt.Errorf("corrupt order collection: %w", err)
	}
	return orders, nil
}

func (s *Store) SaveOrders(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	blob, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.writeBlob(keyOrders, string(blob))
}

// AppendOrder inserts at the front of the collection, so newest-first is
// maintained at write time and reads never have to sort.
func (s *Store) AppendOrder(order models.Order) error {
	orders, err := s.Orders()
	if err != nil {
		return err
	}
	orders = append([]models.Order{order}, orders...)
	return s.SaveOrders(orders)
}

// OrdersForUser filters by userId preserving store order (newest-first).
func (s *Store) OrdersForUser(userID string) ([]models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	matched := []models.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
