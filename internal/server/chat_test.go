package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Parker2127/Amigo/internal/respond"
)

func TestChat_SadnessEndToEnd(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/chat", `{"message": "I feel really sad today"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Response string `json:"response"`
		Intent   string `json:"intent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Intent != "express_sadness" {
		t.Fatalf("intent = %q, want express_sadness", out.Intent)
	}
	found := false
	for _, s := range respond.Sadness {
		if out.Response == s {
			found = true
		}
	}
	if !found {
		t.Fatalf("response %q is not a sadness candidate", out.Response)
	}
}

func TestChat_EmptyMessageRejectedBeforeClassification(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`, ``} {
		resp := postJSON(t, srv.URL+"/chat", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, resp.StatusCode)
		}
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			t.Fatalf("body %q: decode: %v", body, err)
		}
		var text string
		if err := json.Unmarshal(raw["response"], &text); err != nil || text != emptyMessageText {
			t.Fatalf("body %q: response = %s, want fixed rejection", body, raw["response"])
		}
		// No classification happened, so no intent is echoed.
		if _, ok := raw["intent"]; ok {
			t.Fatalf("body %q: rejection carried an intent field: %s", body, raw["intent"])
		}
	}
}

func TestChat_SessionCookieMintedOnceAndReused(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	first := postJSON(t, srv.URL+"/chat", `{"message": "hi"}`)
	var session *http.Cookie
	for _, c := range first.Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("first chat call did not set a session cookie")
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/chat", bytes.NewBufferString(`{"message": "hello again"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("second chat call: %v", err)
	}
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			t.Fatalf("session cookie re-minted on reuse: %q", c.Value)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["status"] != "healthy" || out["service"] != serviceName || out["version"] != serviceVersion {
		t.Fatalf("unexpected health payload: %v", out)
	}
}

func TestResources_StaticCrisisContent(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/resources")
	if err != nil {
		t.Fatalf("GET /resources: %v", err)
	}
	defer resp.Body.Close()

	var out resourcesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Crisis.ImmediateDanger.Resources) != 4 {
		t.Errorf("immediate_danger has %d entries, want 4", len(out.Crisis.ImmediateDanger.Resources))
	}
	if len(out.Encouragement) != 10 {
		t.Errorf("encouragement has %d entries, want 10", len(out.Encouragement))
	}
	// No feed configured: articles present but empty.
	if out.Articles == nil || len(out.Articles) != 0 {
		t.Errorf("articles = %v, want empty list", out.Articles)
	}
}
