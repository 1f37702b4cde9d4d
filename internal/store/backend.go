package store

// Backend persists the serialized document as an opaque byte payload. The
// store reads and writes the payload wholesale; backends never interpret
// its contents.
//
// Load returns (nil, nil) when no document has been persisted yet.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}
