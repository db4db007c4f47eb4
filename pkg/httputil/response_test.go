package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]any{"id": "ch_123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "ch_123", gjson.Get(w.Body.String(), "id").String())
}

func TestWriteJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusNotFound, "no_route", "nothing here")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := w.Body.String()
	assert.Equal(t, "no_route", gjson.Get(body, "error").String())
	assert.Equal(t, "nothing here", gjson.Get(body, "message").String())
}

func TestWriteErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorWithDetails(w, http.StatusBadRequest, "invalid_request", "bad", []string{"field a"})

	body := w.Body.String()
	assert.Equal(t, "invalid_request", gjson.Get(body, "error").String())
	assert.Equal(t, "field a", gjson.Get(body, "details.0").String())
}

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()
	WriteOK(w, map[string]any{"ok": true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "ok").Bool())
}
