// Package store owns the persisted tracker document: five record
// collections serialized as one JSON object, read and rewritten wholesale
// on every mutation through an injected Backend.
package store

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vendorahq/vendora/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sentinel display names returned when a referenced record no longer
// exists. Deletes do not cascade, so historical line items may carry
// dangling IDs; lookups degrade to these instead of failing.
const (
	UnknownLocation = "Unknown Location"
	UnknownProduct  = "Unknown Product"
)

// Store provides typed access to the single persisted document. A mutex
// serializes the load-modify-save cycle so concurrent mutations within one
// process cannot interleave.
type Store struct {
	mu      sync.Mutex
	backend Backend
	bus     EventBus.Bus
	node    *snowflake.Node
}

// Option configures optional store collaborators.
type Option func(*Store)

// WithBus attaches an event bus; the store publishes a topic after every
// committed mutation. Publishing never affects the mutation's outcome.
func WithBus(bus EventBus.Bus) Option {
	return func(s *Store) { s.bus = bus }
}

// New creates a store over the given persistence backend.
func New(backend Backend, opts ...Option) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "init id generator")
	}
	s := &Store{backend: backend, node: node}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// load reads and decodes the whole document. Any failure falls back to an
// empty document: a broken payload must never take the tool down, it only
// loses what could not be read.
func (s *Store) load() domain.Document {
	raw, err := s.backend.Load()
	if err != nil {
		zap.S().Errorf("failed to load data: %v", err)
		return domain.NewDocument()
	}
	if len(raw) == 0 {
		return domain.NewDocument()
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.S().Errorf("failed to decode stored data: %v", err)
		return domain.NewDocument()
	}
	doc.Normalize()
	return doc
}

// save encodes and persists the whole document.
func (s *Store) save(doc domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode data store")
	}
	if err := s.backend.Save(raw); err != nil {
		return errors.Wrap(err, "persist data store")
	}
	return nil
}

// Snapshot returns the current document. The copy is independent of stored
// state; callers may mutate it freely.
func (s *Store) Snapshot() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ReplaceAll overwrites the entire persisted document.
func (s *Store) ReplaceAll(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Normalize()
	if err := s.save(doc); err != nil {
		return err
	}
	s.publish(TopicImported, doc)
	return nil
}

func (s *Store) publish(topic string, args ...interface{}) {
	if s.bus != nil {
		s.bus.Publish(topic, args...)
	}
}
