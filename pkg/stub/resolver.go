package stub

import (
	"github.com/getstubd/stubd/pkg/fixture"
	"github.com/getstubd/stubd/pkg/schema"
	"github.com/getstubd/stubd/pkg/util"
)

// listEnvelopeProperties is the fixed property set that marks a response
// fragment as a list envelope. The check is by name only: a fragment that
// happens to declare all three names triggers list handling even if the
// property types differ. Changing this matching would silently alter which
// fixtures existing schemas select, so it stays as-is.
var listEnvelopeProperties = []string{"has_more", "data", "url"}

// Resolve translates a response schema fragment plus the fixture store into
// a generated response for the current request.
//
// The fragment's own resource id is tried first; a hit yields a deep copy
// of that fixture. On a miss, a fragment whose declared properties cover
// the list-envelope set is treated as a list response: the item resource id
// is looked up and, on a hit, the envelope skeleton is returned with its
// "data" property holding exactly that one fixture. Everything else fails
// with *FixtureNotFoundError.
//
// The returned map is owned by the caller: it shares nothing with the
// store, so override code may mutate it freely.
func Resolve(frag *schema.Fragment, store *fixture.Store) (map[string]any, error) {
	if frag == nil {
		frag = &schema.Fragment{}
	}

	// An absent resource id degrades to the empty string on purpose: the
	// lookup then fails loudly as `no fixture for resource ""` instead of
	// silently passing through.
	resourceID := frag.ResourceID
	if payload, ok := store.Lookup(resourceID); ok {
		return util.DeepCopyMap(payload), nil
	}

	if !frag.HasProperties(listEnvelopeProperties...) {
		return nil, &FixtureNotFoundError{ResourceID: resourceID}
	}

	var itemID string
	if frag.Items != nil {
		itemID = frag.Items.ResourceID
	}
	payload, ok := store.Lookup(itemID)
	if !ok {
		return nil, &FixtureNotFoundError{ResourceID: itemID, ListContext: true}
	}

	envelope := util.DeepCopyMap(frag.Envelope)
	if envelope == nil {
		envelope = make(map[string]any)
	}
	envelope["data"] = []any{util.DeepCopyMap(payload)}
	return envelope, nil
}
