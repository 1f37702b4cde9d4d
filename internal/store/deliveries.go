package store

import "github.com/vendorahq/vendora/internal/domain"

// Deliveries returns every delivery in insertion order.
func (s *Store) Deliveries() []domain.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Deliveries
}

// SaveDelivery inserts the delivery, or replaces the record sharing its ID.
func (s *Store) SaveDelivery(d domain.Delivery) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	created := true
	for i := range doc.Deliveries {
		if doc.Deliveries[i].ID == d.ID {
			doc.Deliveries[i] = d
			created = false
			break
		}
	}
	if created {
		doc.Deliveries = append(doc.Deliveries, d)
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	s.publish(TopicDeliverySaved, d)
	return created, nil
}

// DeleteDelivery removes the delivery with the given ID.
func (s *Store) DeleteDelivery(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := make([]domain.Delivery, 0, len(doc.Deliveries))
	for _, d := range doc.Deliveries {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	doc.Deliveries = kept
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicDeliveryDeleted, id)
	return nil
}

// DeliveryByID returns the delivery with the given ID.
func (s *Store) DeliveryByID(id string) (domain.Delivery, bool) {
	for _, d := range s.Deliveries() {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Delivery{}, false
}
