package stub

// Exchange is the per-request bridge between the resolver's output and
// user-authored override logic. It owns the generated response for exactly
// one request: it is never shared across requests and needs no locking.
type Exchange struct {
	response   map[string]any
	suppressed bool
}

// NewExchange creates an Exchange around a generated response. A nil
// response is valid and means the schema had no opinion on this route.
func NewExchange(generated map[string]any) *Exchange {
	return &Exchange{response: generated}
}

// GeneratedResponse exposes the current generated response for inspection.
// May be nil. Callers wanting to change it go through
// ModifyGeneratedResponse so the restricted-key guard applies.
func (e *Exchange) GeneratedResponse() map[string]any {
	return e.response
}

// ModifyGeneratedResponse runs mutator against a fresh Restricted view of
// the generated response and, on success, commits the unwrapped result
// back as the response. A failing mutator propagates its error and commits
// nothing, so partial edits never persist silently.
func (e *Exchange) ModifyGeneratedResponse(mutator func(*Restricted) error) error {
	view := NewRestricted(e.response)
	if err := mutator(view); err != nil {
		return err
	}
	e.response = view.Unwrap()
	return nil
}

// SuppressGeneratedResponse marks the generated response as void for this
// request: the dispatch pipeline must let the override handler produce the
// answer instead. Idempotent.
func (e *Exchange) SuppressGeneratedResponse() {
	e.suppressed = true
}

// Suppressed reports whether the generated response has been suppressed.
func (e *Exchange) Suppressed() bool {
	return e.suppressed
}
