package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"choicedge/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// serveWithEstimate runs EstimateMiddleware and, when it resolved an
// estimate, the handler.
func serveWithEstimate(t *testing.T, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := EstimateMiddleware(testhelpers.NewTestEstimator(t))(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if _, ok := GetEstimate(e.Request); !ok {
		return rec
	}
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}
