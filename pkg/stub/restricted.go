package stub

// Restricted is a key-restricted view over a generated response. Reads and
// writes are refused for keys not present in the backing map unless the
// caller passes allowUndefined for that operation. Nested maps are wrapped
// recursively at construction time, including maps inside slices, so the
// restriction holds at every depth.
//
// The guard is checked against the live backing map: a key introduced with
// allowUndefined=true is visible to subsequent Get and Set calls on the
// same view.
//
// A Restricted view is built fresh per override invocation and discarded
// after Unwrap. It is never shared across requests, so it needs no locking.
type Restricted struct {
	data map[string]any
}

// NewRestricted wraps m in a Restricted view. The map is not copied; the
// view takes ownership of it for the duration of the override call. A nil
// map is treated as empty.
func NewRestricted(m map[string]any) *Restricted {
	r := &Restricted{data: make(map[string]any, len(m))}
	for k, v := range m {
		r.data[k] = wrapValue(v)
	}
	return r
}

// Get returns the value at key. Nested maps come back as *Restricted so
// the guard applies at depth. Fails with *UndefinedKeyError when the key
// is absent and allowUndefined is false; with allowUndefined it returns
// nil for absent keys.
func (r *Restricted) Get(key string, allowUndefined bool) (any, error) {
	v, ok := r.data[key]
	if !ok && !allowUndefined {
		return nil, &UndefinedKeyError{Key: key}
	}
	return v, nil
}

// Set assigns value at key, wrapping map values so later nested access
// stays guarded. Fails with *UndefinedKeyError when the key is absent and
// allowUndefined is false.
func (r *Restricted) Set(key string, value any, allowUndefined bool) error {
	if _, ok := r.data[key]; !ok && !allowUndefined {
		return &UndefinedKeyError{Key: key}
	}
	r.data[key] = wrapValue(value)
	return nil
}

// DeepMerge merges src into the view one key at a time.
//
// A map-valued source entry merges recursively into an existing nested
// view at the same key. Merging a map into an existing non-map value fails
// with *InvalidMergeTargetError unless allowUndefined is set, in which
// case the old value is replaced wholesale. A map-valued entry whose key
// does not exist yet falls back to a plain Set, so the undefined-key guard
// still applies. Scalar and slice source values are a plain Set.
func (r *Restricted) DeepMerge(src map[string]any, allowUndefined bool) error {
	for key, value := range src {
		nested, isMap := value.(map[string]any)
		if !isMap {
			if err := r.Set(key, value, allowUndefined); err != nil {
				return err
			}
			continue
		}

		current, exists := r.data[key]
		if !exists {
			if err := r.Set(key, nested, allowUndefined); err != nil {
				return err
			}
			continue
		}

		target, isView := current.(*Restricted)
		if !isView {
			if !allowUndefined {
				return &InvalidMergeTargetError{Key: key}
			}
			r.data[key] = NewRestricted(nested)
			continue
		}

		if err := target.DeepMerge(nested, allowUndefined); err != nil {
			return err
		}
	}
	return nil
}

// Unwrap returns the current state as a plain map, recursively unwrapping
// nested views, including inside slices.
func (r *Restricted) Unwrap() map[string]any {
	out := make(map[string]any, len(r.data))
	for k, v := range r.data {
		out[k] = unwrapValue(v)
	}
	return out
}

// Len reports the number of keys currently visible in the view.
func (r *Restricted) Len() int {
	return len(r.data)
}

// Has reports whether key is currently visible in the view.
func (r *Restricted) Has(key string) bool {
	_, ok := r.data[key]
	return ok
}

func wrapValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return NewRestricted(val)
	case *Restricted:
		return val
	case []any:
		wrapped := make([]any, len(val))
		for i, item := range val {
			wrapped[i] = wrapValue(item)
		}
		return wrapped
	default:
		return v
	}
}

func unwrapValue(v any) any {
	switch val := v.(type) {
	case *Restricted:
		return val.Unwrap()
	case []any:
		plain := make([]any, len(val))
		for i, item := range val {
			plain[i] = unwrapValue(item)
		}
		return plain
	default:
		return v
	}
}
