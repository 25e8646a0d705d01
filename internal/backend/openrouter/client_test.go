package openrouter_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mdtask/internal/backend/openrouter"
	"mdtask/internal/config"
)

const completionBody = `{
	"id": "gen-1",
	"object": "chat.completion",
	"model": "test-model",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "Buy a gallon of milk from the store."},
			"finish_reason": "stop"
		}
	]
}`

// newClient builds a client pointed at the given test server.
func newClient(t *testing.T, srv *httptest.Server) *openrouter.Client {
	t.Helper()
	cfg := &config.Config{
		APIKey: "test-key",
		Settings: config.Settings{
			BaseURL: srv.URL,
			Model:   "test-model",
		},
	}
	c, err := openrouter.New(cfg)
	if err != nil {
		t.Fatalf("client construction failed: %v", err)
	}
	return c
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := openrouter.New(&config.Config{APIKey: "  "})
	if !errors.Is(err, openrouter.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestImproveTask_RequestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	c := newClient(t, srv)
	improved, err := c.ImproveTask(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("ImproveTask failed: %v", err)
	}

	if improved != "Buy a gallon of milk from the store." {
		t.Errorf("unexpected improved text %q", improved)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("expected /chat/completions, got %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", gotBody.Messages)
	}
	if !strings.Contains(gotBody.Messages[0].Content, "buy milk") {
		t.Errorf("prompt must contain the raw task, got %q", gotBody.Messages[0].Content)
	}
	if strings.Contains(gotBody.Messages[0].Content, "- [ ]") {
		t.Errorf("prompt must not ask for checklist syntax, got %q", gotBody.Messages[0].Content)
	}
}

func TestImproveTask_TrimsAndStripsChecklistPrefix(t *testing.T) {
	body := `{"choices":[{"index":0,"message":{"role":"assistant","content":"  - [ ] Water the plants.\n"},"finish_reason":"stop"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := newClient(t, srv)
	improved, err := c.ImproveTask(context.Background(), "plants")
	if err != nil {
		t.Fatalf("ImproveTask failed: %v", err)
	}
	if improved != "Water the plants." {
		t.Errorf("expected stripped text, got %q", improved)
	}
}

func TestImproveTask_MalformedResponse(t *testing.T) {
	for name, body := range map[string]string{
		"empty object":  `{}`,
		"empty choices": `{"choices":[]}`,
		"empty content": `{"choices":[{"index":0,"message":{"role":"assistant","content":""},"finish_reason":"stop"}]}`,
		"blank content": `{"choices":[{"index":0,"message":{"role":"assistant","content":"   "},"finish_reason":"stop"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer srv.Close()

			c := newClient(t, srv)
			_, err := c.ImproveTask(context.Background(), "x")
			if !errors.Is(err, openrouter.ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestImproveTask_HTTPError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.ImproveTask(context.Background(), "x")

	var statusErr *openrouter.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", statusErr.Code)
	}
	if calls != 1 {
		t.Errorf("expected exactly one request (no retries), got %d", calls)
	}
}

func TestImproveTask_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newClient(t, srv)
	_, err := c.ImproveTask(context.Background(), "x")
	if err == nil {
		t.Fatal("expected a network error")
	}
	var statusErr *openrouter.StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("network failure must not map to a status error, got %v", err)
	}
	if errors.Is(err, openrouter.ErrMalformedResponse) {
		t.Errorf("network failure must not map to a malformed response, got %v", err)
	}
}
