package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ResourceIDExtension is the OpenAPI extension naming the fixture a schema
// fragment maps to.
const ResourceIDExtension = "x-resourceId"

// Fragment describes the expected success-response shape of the endpoint
// currently being dispatched. It is read-only input to the resolver.
type Fragment struct {
	// ResourceID is the fixture key declared directly on the fragment via
	// x-resourceId. Empty when the fragment declares none; an empty string
	// is still a legal lookup key and fails loudly downstream.
	ResourceID string

	// Properties holds the declared property names of the fragment. Only
	// names matter here: list-envelope detection compares names, not types.
	Properties map[string]struct{}

	// Items is the fragment of the "data" property's item schema, present
	// only when the fragment describes a list envelope.
	Items *Fragment

	// Envelope is a skeleton payload synthesized from the declared
	// properties' defaults and examples. The resolver replaces its "data"
	// entry when building a list response.
	Envelope map[string]any
}

// HasProperties reports whether every given name is among the fragment's
// declared properties.
func (f *Fragment) HasProperties(names ...string) bool {
	for _, name := range names {
		if _, ok := f.Properties[name]; !ok {
			return false
		}
	}
	return true
}

// FromSchema builds a Fragment from an OpenAPI schema. A nil schema yields
// an empty fragment, which resolves to "no fixture for resource ''".
func FromSchema(s *openapi3.Schema) *Fragment {
	f := &Fragment{Properties: map[string]struct{}{}}
	if s == nil {
		return f
	}

	if raw, ok := s.Extensions[ResourceIDExtension]; ok {
		if id, ok := raw.(string); ok {
			f.ResourceID = id
		}
	}

	for name := range s.Properties {
		f.Properties[name] = struct{}{}
	}

	if len(s.Properties) > 0 {
		f.Envelope = make(map[string]any, len(s.Properties))
		for name, ref := range s.Properties {
			f.Envelope[name] = skeletonValue(ref)
		}
	}

	if dataRef, ok := s.Properties["data"]; ok && dataRef != nil && dataRef.Value != nil {
		items := dataRef.Value.Items
		if items != nil && items.Value != nil {
			f.Items = FromSchema(items.Value)
		}
	}

	return f
}

// skeletonValue picks a placeholder for a declared property: its default,
// then its example, then the zero value of its declared type.
func skeletonValue(ref *openapi3.SchemaRef) any {
	if ref == nil || ref.Value == nil {
		return nil
	}
	s := ref.Value
	if s.Default != nil {
		return s.Default
	}
	if s.Example != nil {
		return s.Example
	}
	if s.Type == nil {
		return nil
	}
	switch {
	case s.Type.Is(openapi3.TypeBoolean):
		return false
	case s.Type.Is(openapi3.TypeString):
		return ""
	case s.Type.Is(openapi3.TypeInteger):
		return 0
	case s.Type.Is(openapi3.TypeNumber):
		return 0.0
	case s.Type.Is(openapi3.TypeArray):
		return []any{}
	case s.Type.Is(openapi3.TypeObject):
		return map[string]any{}
	default:
		return nil
	}
}
