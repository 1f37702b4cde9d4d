package store

import "github.com/vendorahq/vendora/internal/domain"

// Orders returns every order in insertion order.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Orders
}

// SaveOrder inserts the order, or replaces the record sharing its ID.
func (s *Store) SaveOrder(o domain.Order) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	created := true
	for i := range doc.Orders {
		if doc.Orders[i].ID == o.ID {
			doc.Orders[i] = o
			created = false
			break
		}
	}
	if created {
		doc.Orders = append(doc.Orders, o)
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	s.publish(TopicOrderSaved, o)
	return created, nil
}

// DeleteOrder removes the order with the given ID.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := make([]domain.Order, 0, len(doc.Orders))
	for _, o := range doc.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	doc.Orders = kept
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicOrderDeleted, id)
	return nil
}

// OrderByID returns the order with the given ID.
func (s *Store) OrderByID(id string) (domain.Order, bool) {
	for _, o := range s.Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}
