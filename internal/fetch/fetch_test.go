package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientGetReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "internwatch") {
			t.Errorf("unexpected user agent %q", ua)
		}
		_, _ = w.Write([]byte("<html>listings</html>"))
	}))
	defer server.Close()

	client := NewClient(time.Second, "")
	body, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if body != "<html>listings</html>" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestClientGetRetriesTransientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(time.Second, "test/1.0")
	body, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("get failed after retries: %v", err)
	}
	if body != "ok" {
		t.Fatalf("unexpected body %q", body)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestClientGetFailsOnTerminalStatus(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(time.Second, "test/1.0")
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestClientGetRequiresURL(t *testing.T) {
	client := NewClient(time.Second, "test/1.0")
	if _, err := client.Get(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
