package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/getstubd/stubd/pkg/schema"
)

// maxValidationBodySize caps how much request body is buffered for
// validation (10MB).
const maxValidationBodySize = 10 << 20

// Validator validates incoming requests against the loaded API spec.
type Validator struct {
	doc    *openapi3.T
	router routers.Router
}

// New creates a Validator for the given spec.
func New(spec *schema.Spec) (*Validator, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec is required")
	}
	router, err := gorillamux.NewRouter(spec.Doc())
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}
	return &Validator{doc: spec.Doc(), router: router}, nil
}

// RouteMatch is a request matched to an operation in the spec.
type RouteMatch struct {
	Route      *routers.Route
	PathParams map[string]string
}

// Operation returns the matched OpenAPI operation, or nil.
func (m *RouteMatch) Operation() *openapi3.Operation {
	if m == nil || m.Route == nil {
		return nil
	}
	return m.Route.Operation
}

// FindRoute matches a request to an operation in the spec. A failed match
// means the endpoint is not part of the stubbed API.
func (v *Validator) FindRoute(r *http.Request) (*RouteMatch, error) {
	route, pathParams, err := v.router.FindRoute(r)
	if err != nil {
		return nil, err
	}
	return &RouteMatch{Route: route, PathParams: pathParams}, nil
}

// ValidateRequest validates the request's parameters and body against the
// matched operation. The request body is buffered and restored so the
// dispatch pipeline can still read it.
func (v *Validator) ValidateRequest(r *http.Request, match *RouteMatch) *Result {
	result := &Result{Valid: true}
	if match == nil || match.Route == nil {
		return result
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: match.PathParams,
		Route:      match.Route,
		Options: &openapi3filter.Options{
			MultiError:         true,
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}

	if r.Body != nil && r.Body != http.NoBody {
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxValidationBodySize))
		if err != nil {
			result.AddError(&FieldError{
				Location: LocationBody,
				Code:     "read_error",
				Message:  fmt.Sprintf("failed to read request body: %s", err.Error()),
			})
			return result
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		input.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		collectValidationErrors(err, result)
	}
	return result
}

// collectValidationErrors converts kin-openapi errors to FieldErrors.
func collectValidationErrors(err error, result *Result) {
	if err == nil {
		return
	}

	var multiErr openapi3.MultiError
	if errors.As(err, &multiErr) {
		for _, e := range multiErr {
			collectValidationErrors(e, result)
		}
		return
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		fe := &FieldError{
			Code:    "openapi_validation",
			Message: reqErr.Error(),
		}
		switch {
		case reqErr.Parameter != nil:
			fe.Field = reqErr.Parameter.Name
			switch reqErr.Parameter.In {
			case "path":
				fe.Location = LocationPath
			case "query":
				fe.Location = LocationQuery
			case "header":
				fe.Location = LocationHeader
			default:
				fe.Location = "parameter"
			}
		default:
			fe.Location = LocationBody
		}
		result.AddError(fe)
		return
	}

	var secErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &secErr) {
		result.AddError(&FieldError{
			Location: LocationHeader,
			Code:     "security",
			Message:  secErr.Error(),
		})
		return
	}

	result.AddError(&FieldError{
		Location: LocationBody,
		Code:     "openapi_validation",
		Message:  err.Error(),
	})
}
