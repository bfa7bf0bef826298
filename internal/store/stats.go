package store

import "sort"

type DashboardStats struct {
	TotalProducts   int
	TotalOrders     int
	OrdersByStatus  map[string]int
	ProductOrdCount []ProductOrderCount
}

type ProductOrderCount struct {
	ProductID  string
	Name       string
	OrderCount int
}

// GetDashboardStats aggregates the admin dashboard numbers from the current
// collections. Counts per product include every order line referencing it.
func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	products := s.Products()
	stats.TotalProducts = len(products)

	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = len(orders)

	counts := make(map[string]int)
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		for _, item := range o.Items {
			counts[item.ID]++
		}
	}

	for _, p := range products {
		stats.ProductOrdCount = append(stats.ProductOrdCount, ProductOrderCount{
			ProductID:  p.ID,
			Name:       p.Name,
			OrderCount: counts[p.ID],
		})
	}
	sort.SliceStable(stats.ProductOrdCount, func(i, j int) bool {
		return stats.ProductOrdCount[i].OrderCount > stats.ProductOrdCount[j].OrderCount
	})

	return stats, nil
}
