package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Parker2127/Amigo/internal/config"
	"github.com/Parker2127/Amigo/internal/handler"
	"github.com/Parker2127/Amigo/internal/respond"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(config.Config{Project: "test-project"}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestWebhook_GreetingFulfillment(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/webhook", `{
		"queryResult": {
			"intent": {"displayName": "greeting"},
			"queryText": "hello",
			"parameters": {}
		},
		"session": "projects/test-project/agent/sessions/abc-123"
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		FulfillmentText string            `json:"fulfillmentText"`
		OutputContexts  []handler.Context `json:"outputContexts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	found := false
	for _, g := range respond.Greetings {
		if out.FulfillmentText == g {
			found = true
		}
	}
	if !found {
		t.Fatalf("fulfillmentText %q is not a greeting candidate", out.FulfillmentText)
	}
	if len(out.OutputContexts) != 1 {
		t.Fatalf("got %d contexts, want 1", len(out.OutputContexts))
	}
	c := out.OutputContexts[0]
	if !strings.HasSuffix(c.Name, "/contexts/conversation-started") {
		t.Errorf("context name = %q", c.Name)
	}
	if !strings.Contains(c.Name, "/sessions/abc-123/") {
		t.Errorf("context name not scoped to session: %q", c.Name)
	}
	if c.LifespanCount != 5 {
		t.Errorf("lifespanCount = %d, want 5", c.LifespanCount)
	}
}

func TestWebhook_UnknownIntentIsNotAnError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/webhook", `{
		"queryResult": {
			"intent": {"displayName": "order_pizza"},
			"queryText": "pepperoni please"
		},
		"session": "projects/p/agent/sessions/s1"
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out fulfillmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.FulfillmentText == "" {
		t.Fatal("empty fulfillmentText for unknown intent")
	}
	if len(out.OutputContexts) != 1 {
		t.Fatalf("got %d contexts, want 1", len(out.OutputContexts))
	}
	if out.OutputContexts[0].Parameters["original_query"] != "pepperoni please" {
		t.Errorf("original_query = %v", out.OutputContexts[0].Parameters["original_query"])
	}
}

func TestWebhook_MalformedBody(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/webhook", `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["fulfillmentText"] != missingBodyText {
		t.Fatalf("fulfillmentText = %q, want fixed apology", out["fulfillmentText"])
	}
}

func TestWebhook_ContextsAlwaysPresent(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// goodbye emits no contexts; the field must still serialize as [].
	resp := postJSON(t, srv.URL+"/webhook", `{
		"queryResult": {"intent": {"displayName": "goodbye"}},
		"session": "projects/p/agent/sessions/s1"
	}`)
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["outputContexts"]) != "[]" {
		t.Fatalf("outputContexts = %s, want []", raw["outputContexts"])
	}
}

func TestSessionIDFromPath(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"projects/p/agent/sessions/tail", "tail"},
		{"", "unknown"},
		{"bare-session", "bare-session"},
		{"trailing/", ""},
	}
	for _, tc := range cases {
		if got := sessionIDFromPath(tc.in); got != tc.want {
			t.Errorf("sessionIDFromPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
