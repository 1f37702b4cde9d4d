package store

import "github.com/vendorahq/vendora/internal/domain"

// Sales returns every sale in insertion order.
func (s *Store) Sales() []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Sales
}

// SaveSale inserts the sale, or replaces the record sharing its ID.
func (s *Store) SaveSale(sale domain.Sale) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	created := true
	for i := range doc.Sales {
		if doc.Sales[i].ID == sale.ID {
			doc.Sales[i] = sale
			created = false
			break
		}
	}
	if created {
		doc.Sales = append(doc.Sales, sale)
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	s.publish(TopicSaleSaved, sale)
	return created, nil
}

// DeleteSale removes the sale with the given ID.
func (s *Store) DeleteSale(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := make([]domain.Sale, 0, len(doc.Sales))
	for _, sale := range doc.Sales {
		if sale.ID != id {
			kept = append(kept, sale)
		}
	}
	doc.Sales = kept
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicSaleDeleted, id)
	return nil
}

// SaleByID returns the sale with the given ID.
func (s *Store) SaleByID(id string) (domain.Sale, bool) {
	for _, sale := range s.Sales() {
		if sale.ID == id {
			return sale, true
		}
	}
	return domain.Sale{}, false
}
