package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	clierr "github.com/suitools/suiwallet/internal/errors"
)

func TestPostJSONRetriesServerError(t *testing.T) {
	var count int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&count, 1)
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"x"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 1)
	var out map[string]any
	if err := client.PostJSON(context.Background(), srv.URL, []byte(`{}`), &out); err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
	if out["ok"] != true {
		t.Fatalf("unexpected response: %#v", out)
	}
}

func TestPostJSONPreservesNumberText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value": 12345678901234567890}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)
	var out map[string]any
	if err := client.PostJSON(context.Background(), srv.URL, []byte(`{}`), &out); err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
	num, ok := out["value"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", out["value"])
	}
	if num.String() != "12345678901234567890" {
		t.Fatalf("unexpected number text: %s", num)
	}
}

func TestPostJSONRateLimitedAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)
	err := client.PostJSON(context.Background(), srv.URL, []byte(`{}`), nil)
	cErr, ok := clierr.As(err)
	if !ok || cErr.Code != clierr.CodeRateLimited {
		t.Fatalf("expected rate limited error, got %v", err)
	}
}
