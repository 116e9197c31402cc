package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get("X-Request-Id")
	if id == "" {
		t.Fatal("X-Request-Id header not set")
	}
	if seen != id {
		t.Errorf("context id %q != header id %q", seen, id)
	}
}

func TestRecoverDev(t *testing.T) {
	h := Recover("dev")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Stack   string `json:"stack"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Status != "error" || env.Message != "boom" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Stack == "" {
		t.Error("dev envelope should carry the stack")
	}
}

func TestRecoverProd(t *testing.T) {
	h := Recover("prod")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var env struct {
		Message string `json:"message"`
		Stack   string `json:"stack"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Message != "Internal server error" {
		t.Errorf("prod message leaked: %q", env.Message)
	}
	if env.Stack != "" {
		t.Error("prod envelope must not carry the stack")
	}
}
