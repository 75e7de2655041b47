package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func fetchDoc(t *testing.T, url string) *goquery.Document {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("GET %s: content-type %q", url, ct)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse %s: %v", url, err)
	}
	return doc
}

func TestHomePage_ChatInterface(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	doc := fetchDoc(t, srv.URL+"/")

	if doc.Find("#messageInput").Length() != 1 {
		t.Error("missing message input")
	}
	if doc.Find("#chatContainer").Length() != 1 {
		t.Error("missing chat container")
	}
	if n := doc.Find(".quick-action-btn").Length(); n != 4 {
		t.Errorf("quick action buttons = %d, want 4", n)
	}
	if !strings.Contains(doc.Find(".footer-section").Text(), "988") {
		t.Error("crisis footer does not mention the 988 lifeline")
	}
	if doc.Find(`a[href="/webhook-info"]`).Length() == 0 {
		t.Error("missing developer info link")
	}
}

func TestWebhookInfoPage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	doc := fetchDoc(t, srv.URL+"/webhook-info")

	codes := doc.Find("code").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	var sawWebhook, sawHealth bool
	for _, c := range codes {
		if c == "/webhook" {
			sawWebhook = true
		}
		if c == "/health" {
			sawHealth = true
		}
	}
	if !sawWebhook || !sawHealth {
		t.Errorf("endpoint docs incomplete: webhook=%v health=%v", sawWebhook, sawHealth)
	}
	if doc.Find(`a[href="/"]`).Length() == 0 {
		t.Error("missing back link to chat demo")
	}
	if !strings.Contains(doc.Text(), "express_sadness") {
		t.Error("sample curl request missing")
	}
}
