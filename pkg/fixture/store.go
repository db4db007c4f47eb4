package fixture

import (
	"sort"

	"github.com/getstubd/stubd/pkg/util"
)

// Store is an immutable mapping from resource identifier to example
// payload. Payloads are deep-copied on construction, so later mutation of
// the source maps cannot leak into the store. All methods are safe for
// concurrent use because the store is never written after New returns.
type Store struct {
	fixtures map[string]map[string]any
}

// New builds a Store from a map of resource id to payload. A nil map
// yields an empty store.
func New(fixtures map[string]map[string]any) *Store {
	copied := make(map[string]map[string]any, len(fixtures))
	for id, payload := range fixtures {
		copied[id] = util.DeepCopyMap(payload)
	}
	return &Store{fixtures: copied}
}

// Lookup returns the payload stored for resourceID. The second return
// reports presence; absence is an expected outcome the caller must handle.
// The empty string is a legal key.
//
// The returned map is the store's own copy; callers that intend to mutate
// it must deep-copy it first.
func (s *Store) Lookup(resourceID string) (map[string]any, bool) {
	payload, ok := s.fixtures[resourceID]
	return payload, ok
}

// Count returns the number of stored fixtures.
func (s *Store) Count() int {
	return len(s.fixtures)
}

// IDs returns the stored resource identifiers in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.fixtures))
	for id := range s.fixtures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
