package store

import "github.com/Shah049/WALKIN-ECOMERCE/internal/models"

// DefaultCatalog is the built-in product seed. It populates an empty store
// on first open and stands in for the product collection whenever the
// stored blob cannot be decoded.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Walkin Air Pro",
			Price:       189.99,
			Category:    "Running",
			Description: "Designed for the marathon runner, featuring ultra-lightweight foam and breathable mesh.",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{7, 8, 9, 10, 11, 12},
			Featured:    true,
			Reviews: []models.Review{
				{ID: "r1", UserID: "u1", UserName: "Alex R.", Rating: 5, Comment: "Best running shoes I have ever owned!", Date: "2023-10-15"},
				{ID: "r2", UserID: "u2", UserName: "Sarah M.", Rating: 4, Comment: "Great cushion, but runs a bit small.", Date: "2023-11-02"},
			},
		},
		{
			ID:          "2",
			Name:        "Urban Drifter",
			Price:       129.50,
			Category:    "Lifestyle",
			Description: "Street-ready aesthetics with all-day comfort. The perfect daily driver.",
			Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{6, 7, 8, 9, 10, 11},
			Featured:    true,
			Reviews:     []models.Review{},
		},
		{
			ID:          "3",
			Name:        "Court Master V",
			Price:       159.00,
			Category:    "Basketball",
			Description: "Dominate the court with superior ankle support and high-traction soles.",
			Image:       "https://images.unsplash.com/photo-1515555230216-82228b88ea98?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{8, 9, 10, 11, 12, 13, 14},
			Featured:    true,
			Reviews: []models.Review{
				{ID: "r3", UserID: "u3", UserName: "Mike J.", Rating: 5, Comment: "Grip is insane on these.", Date: "2023-12-10"},
			},
		},
		{
			ID:          "4",
			Name:        "Trail Blazer",
			Price:       145.00,
			Category:    "Outdoor",
			Description: "Rugged durability meets modern style. Water-resistant and ready for any terrain.",
			Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{7, 8, 9, 10, 11},
			Reviews:     []models.Review{},
		},
		{
			ID:          "5",
			Name:        "Retro High",
			Price:       110.00,
			Category:    "Lifestyle",
			Description: "A nod to the classics. Vintage colorways with modern materials.",
			Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{5, 6, 7, 8, 9, 10},
			Reviews:     []models.Review{},
		},
		{
			ID:          "6",
			Name:        "Velocity X",
			Price:       210.00,
			Category:    "Running",
			Description: "Our fastest shoe yet. Carbon plate technology for maximum energy return.",
			Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?q=80&w=1000&auto=format&fit=crop",
			Sizes:       []int{8, 9, 10, 11, 12},
			Featured:    true,
			Reviews:     []models.Review{},
		},
	}
}

// Categories shown by the shop filter UI. "All" disables the filter.
var Categories = []string{"All", "Running", "Lifestyle", "Basketball", "Outdoor"}
