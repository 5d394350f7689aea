package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "dress" {
			t.Errorf("query not forwarded, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]int{"n": 3})
	}))
	defer srv.Close()

	var out map[string]int
	q := map[string][]string{"name": {"dress"}}
	if err := New(srv.URL).Get(context.Background(), "/x", q, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out["n"] != 3 {
		t.Fatalf("decoded %v", out)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %q", ct)
		}
		var body map[string]int
		json.NewDecoder(r.Body).Decode(&body)
		if body["quantity"] != 2 {
			t.Errorf("body %v", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := New(srv.URL).Post(context.Background(), "/cart", map[string]int{"quantity": 2}, nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
}

func TestStatusErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/x", nil, nil)
	if !IsStatus(err, http.StatusTeapot) {
		t.Fatalf("want status 418 error, got %v", err)
	}
}

func TestContextCancellationIsNetworkError(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(srv.URL).Get(ctx, "/x", nil, nil)
	if !IsNetwork(err) {
		t.Fatalf("want network error, got %v", err)
	}
}

func TestDecodeErrorOnBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	var out map[string]int
	err := New(srv.URL).Get(context.Background(), "/x", nil, &out)
	if !IsDecode(err) {
		t.Fatalf("want decode error, got %v", err)
	}
}
