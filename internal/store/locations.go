package store

import "github.com/vendorahq/vendora/internal/domain"

// Locations returns every location in insertion order.
func (s *Store) Locations() []domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Locations
}

// SaveLocation inserts the location, or replaces the record sharing its ID.
// The returned flag reports whether a new record was appended.
func (s *Store) SaveLocation(loc domain.Location) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	created := true
	for i := range doc.Locations {
		if doc.Locations[i].ID == loc.ID {
			doc.Locations[i] = loc
			created = false
			break
		}
	}
	if created {
		doc.Locations = append(doc.Locations, loc)
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	s.publish(TopicLocationSaved, loc)
	return created, nil
}

// DeleteLocation removes the location with the given ID. Removing an
// unknown ID is a no-op. References from historical deliveries, orders and
// sales are left dangling on purpose.
func (s *Store) DeleteLocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := make([]domain.Location, 0, len(doc.Locations))
	for _, l := range doc.Locations {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	doc.Locations = kept
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicLocationDeleted, id)
	return nil
}

// LocationByID returns the location with the given ID.
func (s *Store) LocationByID(id string) (domain.Location, bool) {
	for _, l := range s.Locations() {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

// LocationName resolves a location ID to its display name, falling back to
// the "Unknown Location" sentinel for dangling IDs.
func (s *Store) LocationName(id string) string {
	if l, ok := s.LocationByID(id); ok {
		return l.Name
	}
	return UnknownLocation
}
