// Core HTTP request handler for the stub engine.

package engine

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/getstubd/stubd/pkg/fixture"
	"github.com/getstubd/stubd/pkg/httputil"
	"github.com/getstubd/stubd/pkg/logging"
	"github.com/getstubd/stubd/pkg/schema"
	"github.com/getstubd/stubd/pkg/stub"
	"github.com/getstubd/stubd/pkg/util"
	"github.com/getstubd/stubd/pkg/validation"
)

// Handler dispatches intercepted requests through the stub pipeline:
// route match, request validation, response resolution, override
// processing, final answer.
type Handler struct {
	spec      *schema.Spec
	store     *fixture.Store
	validator *validation.Validator
	overrides *Overrides
	log       *slog.Logger

	// validateRequests gates schema validation of incoming requests.
	// Route matching always runs; it is how the pipeline finds the
	// operation's response schema.
	validateRequests bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRequestValidation toggles request validation (default on).
func WithRequestValidation(enabled bool) HandlerOption {
	return func(h *Handler) {
		h.validateRequests = enabled
	}
}

// WithOverrides installs an override table. Without one the handler uses
// an empty table and every request falls through to the generated
// response.
func WithOverrides(o *Overrides) HandlerOption {
	return func(h *Handler) {
		if o != nil {
			h.overrides = o
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler creates a Handler for the given spec and fixture store.
func NewHandler(spec *schema.Spec, store *fixture.Store, opts ...HandlerOption) (*Handler, error) {
	validator, err := validation.New(spec)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		spec:             spec,
		store:            store,
		validator:        validator,
		overrides:        NewOverrides(),
		log:              logging.Nop(),
		validateRequests: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Overrides returns the handler's override table for registration.
func (h *Handler) Overrides() *Overrides {
	return h.overrides
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	match, err := h.validator.FindRoute(r)
	if err != nil {
		h.log.Debug("no route in spec", "method", r.Method, "path", r.URL.Path)
		httputil.WriteError(w, http.StatusNotFound, "no_route",
			"no operation in the API spec matches "+r.Method+" "+r.URL.Path)
		return
	}

	if h.validateRequests {
		if result := h.validator.ValidateRequest(r, match); result.HasErrors() {
			h.log.Debug("request failed schema validation",
				"method", r.Method, "path", r.URL.Path,
				"errors", util.TruncateBody(result.Summary(), 0))
			httputil.WriteErrorWithDetails(w, http.StatusBadRequest, "invalid_request",
				result.Summary(), result.Errors)
			return
		}
	}

	generated, ok := h.resolve(w, match)
	if !ok {
		return
	}

	ex := stub.NewExchange(generated)
	if fn, rr, found := h.overrides.match(r); found {
		if err := fn(ex, w, rr); err != nil {
			h.writeOverrideError(w, r, err)
			return
		}
		if ex.Suppressed() {
			// The override owns the answer; the generated response is void.
			return
		}
	}

	body := ex.GeneratedResponse()
	if body == nil {
		body = map[string]any{}
	}
	httputil.WriteOK(w, body)
}

// resolve computes the generated response for the matched route. A nil
// fragment means the schema has no opinion; resolution is skipped and the
// override layer starts from an empty response.
func (h *Handler) resolve(w http.ResponseWriter, match *validation.RouteMatch) (map[string]any, bool) {
	frag := h.spec.ResponseFragment(match.Operation())
	if frag == nil {
		return nil, true
	}

	generated, err := stub.Resolve(frag, h.store)
	if err != nil {
		var notFound *stub.FixtureNotFoundError
		if errors.As(err, &notFound) {
			h.log.Error("fixture library out of date for schema",
				"resource", notFound.ResourceID, "list", notFound.ListContext)
			httputil.WriteError(w, http.StatusInternalServerError, "fixture_not_found",
				err.Error()+"; add the fixture or update the API spec")
			return nil, false
		}
		httputil.WriteError(w, http.StatusInternalServerError, "resolution_failed", err.Error())
		return nil, false
	}
	return generated, true
}

func (h *Handler) writeOverrideError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("override handler failed",
		"method", r.Method, "path", r.URL.Path, "error", err)

	var undefined *stub.UndefinedKeyError
	var badMerge *stub.InvalidMergeTargetError
	switch {
	case errors.As(err, &undefined):
		httputil.WriteError(w, http.StatusInternalServerError, "undefined_key", err.Error())
	case errors.As(err, &badMerge):
		httputil.WriteError(w, http.StatusInternalServerError, "invalid_merge_target", err.Error())
	default:
		httputil.WriteError(w, http.StatusInternalServerError, "override_failed", err.Error())
	}
}
