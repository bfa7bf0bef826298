// Package catalog owns the application-visible product list. It keeps an
// in-memory mirror of the store's product collection and is the only
// component that mutates it; every mutation round-trips through the store
// and then refreshes the mirror, so reads after a mutating call always see
// the just-applied change.
package catalog

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
)

type Directory struct {
	store *store.Store

	mu       sync.RWMutex
	products []models.Product
}

func NewDirectory(s *store.Store) *Directory {
	d := &Directory{store: s}
	d.products = s.Products()
	return d
}

// Products returns a copy of the current mirror.
func (d *Directory) Products() []models.Product {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Product, len(d.products))
	copy(out, d.products)
	return out
}

// FindByID looks up against the mirror, not the store.
func (d *Directory) FindByID(id string) (models.Product, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, p := range d.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Create appends the product to the collection. An empty id is assigned
// from the creation time; uniqueness is collision-improbable, not proven.
func (d *Directory) Create(product models.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if product.ID == "" {
		product.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	products := d.store.Products()
	products = append(products, product)
	if err := d.store.SaveProducts(products); err != nil {
		return err
	}
	d.refreshLocked()
	return nil
}

// Update replaces the record matching product.ID whole. An unknown id is a
// silent no-op: the collection is rewritten unchanged.
func (d *Directory) Update(product models.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateLocked(product)
}

func (d *Directory) updateLocked(product models.Product) error {
	products := d.store.Products()
	found := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		slog.Debug("Update for unknown product id ignored", "id", product.ID)
		return nil
	}
	if err := d.store.SaveProducts(products); err != nil {
		return err
	}
	d.refreshLocked()
	return nil
}

// Remove filters the id out of the collection. An unknown id rewrites the
// collection unchanged.
func (d *Directory) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	products := d.store.Products()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := d.store.SaveProducts(kept); err != nil {
		return err
	}
	d.refreshLocked()
	return nil
}

// AttachReview appends the review to the product's review sequence and
// persists the updated record. An unknown product id is silently skipped.
func (d *Directory) AttachReview(productID string, review models.Review) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var product models.Product
	found := false
	for _, p := range d.products {
		if p.ID == productID {
			product = p
			found = true
			break
		}
	}
	if !found {
		slog.Debug("Review for unknown product id ignored", "id", productID)
		return nil
	}

	product.Reviews = append(product.Reviews, review)
	return d.updateLocked(product)
}

func (d *Directory) refreshLocked() {
	d.products = d.store.Products()
}
