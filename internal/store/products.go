package store

import (
	"sort"

	"github.com/vendorahq/vendora/internal/domain"
)

// Products returns every product in insertion order.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Products
}

// SaveProduct inserts the product, or replaces the record sharing its ID.
func (s *Store) SaveProduct(p domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	created := true
	for i := range doc.Products {
		if doc.Products[i].ID == p.ID {
			doc.Products[i] = p
			created = false
			break
		}
	}
	if created {
		doc.Products = append(doc.Products, p)
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	s.publish(TopicProductSaved, p)
	return created, nil
}

// DeleteProduct removes the product with the given ID. Line items in
// historical records keep referencing it; name lookups degrade to the
// sentinel.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	doc.Products = kept
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicProductDeleted, id)
	return nil
}

// ProductByID returns the product with the given ID.
func (s *Store) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductName resolves a product ID to its display name, falling back to
// the "Unknown Product" sentinel for dangling IDs.
func (s *Store) ProductName(id string) string {
	if p, ok := s.ProductByID(id); ok {
		return p.Name
	}
	return UnknownProduct
}

// ProductCategories returns the distinct non-empty categories in use,
// sorted alphabetically.
func (s *Store) ProductCategories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range s.Products() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
