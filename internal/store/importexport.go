package store

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vendorahq/vendora/internal/domain"
)

// ErrInvalidImport marks import payloads rejected by structural validation.
// The persisted document is never touched when this is returned.
var ErrInvalidImport = errors.New("invalid import payload")

// Export serializes the entire document to JSON text, suitable for writing
// to a backup file and feeding back through Import.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.load(), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode export")
	}
	return string(raw), nil
}

// Import parses jsonText as a full document and overwrites the persisted
// state wholesale. Validation is shallow and all-or-nothing: each of the
// five collection keys must be present, non-null and an array, otherwise
// the payload is rejected and existing data is left untouched. There is no
// merging of partial payloads.
func (s *Store) Import(jsonText string) error {
	payload := []byte(jsonText)

	var keys map[string]jsoniter.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		return errors.Wrapf(ErrInvalidImport, "not a JSON object: %v", err)
	}
	for _, key := range domain.CollectionKeys {
		raw, found := keys[key]
		if !found {
			return errors.Wrapf(ErrInvalidImport, "missing collection %q", key)
		}
		if !isJSONArray(raw) {
			return errors.Wrapf(ErrInvalidImport, "collection %q is not an array", key)
		}
	}

	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return errors.Wrapf(ErrInvalidImport, "malformed records: %v", err)
	}
	doc.Normalize()
	return s.ReplaceAll(doc)
}

func isJSONArray(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
