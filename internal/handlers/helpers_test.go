package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// serve routes a single request through a chi router so URL params are populated.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
