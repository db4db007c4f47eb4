package engine

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/getstubd/stubd/pkg/stub"
)

// OverrideFunc is user-authored override logic for one route. It receives
// the per-request Exchange plus the raw request, and may inspect the
// generated response, edit it under the restricted-key guard, or suppress
// it and write the answer to w itself.
type OverrideFunc func(ex *stub.Exchange, w http.ResponseWriter, r *http.Request) error

// Overrides is a routing table of override handlers. The zero-value table
// from NewOverrides has no routes, so every request falls through to the
// generated response unmodified. Registration happens during test setup,
// before the server handles requests; matching is read-only.
type Overrides struct {
	router *mux.Router
}

// NewOverrides creates an empty override table.
func NewOverrides() *Overrides {
	return &Overrides{router: mux.NewRouter()}
}

// overrideEntry adapts an OverrideFunc to the router's handler slot. It is
// never served directly; match pulls the function back out.
type overrideEntry struct {
	fn OverrideFunc
}

func (overrideEntry) ServeHTTP(http.ResponseWriter, *http.Request) {}

// Handle registers fn for a method and gorilla/mux path template, e.g.
// ("GET", "/v1/charges/{id}").
func (o *Overrides) Handle(method, pathTemplate string, fn OverrideFunc) {
	o.router.Handle(pathTemplate, overrideEntry{fn: fn}).Methods(method)
}

// match returns the override registered for the request, if any. Path
// variables from the template are attached to the returned request so the
// override can read them via mux.Vars.
func (o *Overrides) match(r *http.Request) (OverrideFunc, *http.Request, bool) {
	var m mux.RouteMatch
	if !o.router.Match(r, &m) || m.Handler == nil {
		return nil, r, false
	}
	entry, ok := m.Handler.(overrideEntry)
	if !ok {
		return nil, r, false
	}
	if len(m.Vars) > 0 {
		r = mux.SetURLVars(r, m.Vars)
	}
	return entry.fn, r, true
}
