package agentruntime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		baseURL:    serverURL,
		maxRetries: 2,
		backoff:    time.Millisecond,
		client:     &http.Client{Timeout: time.Second},
	}
}

func TestInvoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invocations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"result":"東京タワーは港区にあります。"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Invoke(context.Background(), "東京タワーについて教えて", "U123", "U123")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result != "東京タワーは港区にあります。" {
		t.Errorf("Invoke() = %q", result)
	}
}

func TestInvokeRetriesOn5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Invoke(context.Background(), "p", "s", "a")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result != "ok" {
		t.Errorf("Invoke() = %q", result)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestInvokeDoesNotRetryOn4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Invoke(context.Background(), "p", "s", "a")
	if err == nil {
		t.Fatal("Invoke() should fail on 400")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestInvokeRuntimeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"処理中にエラーが発生しました。","details":"model unavailable"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Invoke(context.Background(), "p", "s", "a")
	if err == nil {
		t.Fatal("Invoke() should surface runtime error")
	}
}

func TestPadSessionID(t *testing.T) {
	short := "C1234567890"
	padded := PadSessionID(short)
	if len(padded) < minSessionIDLength {
		t.Errorf("padded length = %d, want >= %d", len(padded), minSessionIDLength)
	}
	//決定的であること
	if padded != PadSessionID(short) {
		t.Error("PadSessionID() is not deterministic")
	}
	if UnpadSessionID(padded) != short {
		t.Errorf("UnpadSessionID(%q) = %q, want %q", padded, UnpadSessionID(padded), short)
	}

	long := strings.Repeat("U", 40)
	if PadSessionID(long) != long {
		t.Error("long session id should pass through unchanged")
	}
	if UnpadSessionID(long) != long {
		t.Error("unpadded id should pass through unchanged")
	}
}
