package store

import "strconv"

// GenerateID produces an opaque, time-ordered record ID: a snowflake int64
// encoded base36. IDs are unique per process; no check is made against
// existing records.
func (s *Store) GenerateID() string {
	return strconv.FormatInt(s.node.Generate().Int64(), 36)
}
