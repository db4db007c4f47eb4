package stub

import "fmt"

// FixtureNotFoundError is returned by Resolve when no fixture satisfies the
// schema fragment. ListContext reports whether the missing resource was the
// item type of a list envelope rather than the endpoint's direct resource.
// It always indicates a fixture library that is out of date relative to the
// schema, so callers surface it verbatim and never retry.
type FixtureNotFoundError struct {
	ResourceID  string
	ListContext bool
}

// Error implements the error interface.
func (e *FixtureNotFoundError) Error() string {
	if e.ListContext {
		return fmt.Sprintf("no fixture for list resource %q", e.ResourceID)
	}
	return fmt.Sprintf("no fixture for resource %q", e.ResourceID)
}

// UndefinedKeyError is returned by a Restricted view on any read or write of
// a key absent from the backing map, unless the operation was relaxed. It
// signals override code assuming a field the schema-driven fixture never
// produced.
type UndefinedKeyError struct {
	Key string
}

// Error implements the error interface.
func (e *UndefinedKeyError) Error() string {
	return fmt.Sprintf("undefined key %q in restricted response", e.Key)
}

// InvalidMergeTargetError is returned by DeepMerge when a nested map would
// be merged into an existing value that is not itself a map, without the
// relax flag.
type InvalidMergeTargetError struct {
	Key string
}

// Error implements the error interface.
func (e *InvalidMergeTargetError) Error() string {
	return fmt.Sprintf("cannot merge map into non-map value at key %q", e.Key)
}
