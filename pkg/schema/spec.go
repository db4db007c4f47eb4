package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Spec is the process-wide API description: an OpenAPI document loaded and
// validated once before any request is handled, immutable afterwards. It is
// passed explicitly into the resolver and the dispatch pipeline rather than
// referenced as ambient global state.
type Spec struct {
	doc *openapi3.T
}

// Load reads and validates an OpenAPI document from a file path.
func Load(path string) (*Spec, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from file %s: %w", path, err)
	}
	return newSpec(doc)
}

// LoadFromData reads and validates an OpenAPI document from raw bytes
// (JSON or YAML).
func LoadFromData(data []byte) (*Spec, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from data: %w", err)
	}
	return newSpec(doc)
}

func newSpec(doc *openapi3.T) (*Spec, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return &Spec{doc: doc}, nil
}

// Doc exposes the underlying OpenAPI document for routing and validation.
func (s *Spec) Doc() *openapi3.T {
	return s.doc
}

// ResponseFragment distills the success-response fragment of an operation.
// The first 2xx response with JSON content wins, with 200 preferred. A nil
// return means the schema has no opinion on this route; the pipeline then
// starts from an empty generated response.
func (s *Spec) ResponseFragment(op *openapi3.Operation) *Fragment {
	if op == nil || op.Responses == nil {
		return nil
	}

	responses := op.Responses.Map()
	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// "200" sorts first among 2xx codes already, but make the preference
	// explicit so "201"-only specs do not mask a present "200".
	if _, ok := responses["200"]; ok {
		codes = append([]string{"200"}, codes...)
	}

	for _, code := range codes {
		if !strings.HasPrefix(code, "2") {
			continue
		}
		ref := responses[code]
		if ref == nil || ref.Value == nil {
			continue
		}
		if schema := jsonContentSchema(ref.Value); schema != nil {
			return FromSchema(schema)
		}
	}
	return nil
}

func jsonContentSchema(resp *openapi3.Response) *openapi3.Schema {
	for contentType, mediaType := range resp.Content {
		if contentType != "application/json" && !strings.HasPrefix(contentType, "application/json;") {
			continue
		}
		if mediaType.Schema != nil && mediaType.Schema.Value != nil {
			return mediaType.Schema.Value
		}
	}
	return nil
}
