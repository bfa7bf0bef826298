package store

import (
	"encoding/json"
	"log/slog"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

// Products returns the full product collection. A missing or undecodable
// blob falls back to the built-in catalog rather than failing the caller;
// the stored blob is left untouched until the next SaveProducts.
func (s *Store) Products() []models.Product {
	blob, ok, err := s.readBlob(keyProducts)
	if err != nil || !ok {
		if err != nil {
			slog.Error("Failed to read product collection, serving default catalog", "error", err)
		}
		return DefaultCatalog()
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(blob), &products); err != nil {
		slog.Error("Corrupt product collection, serving default catalog", "error", err)
		return DefaultCatalog()
	}
	return products
}

// SaveProducts replaces the entire product collection.
func (s *Store) SaveProducts(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	blob, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.writeBlob(keyProducts, string(blob))
}
