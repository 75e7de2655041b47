// Package feed polls an optional RSS/Atom feed of wellbeing articles and
// keeps the newest items cached in memory for the resources endpoint. The
// service never depends on the feed being reachable: fetch failures keep the
// previous cache and are only logged.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	maxArticles  = 12
	maxFeedBytes = 5 * 1024 * 1024
	fetchTimeout = 25 * time.Second
)

type Article struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Published time.Time `json:"published,omitempty"`
}

type Poller struct {
	logPrefix  string
	feedURL    string
	interval   time.Duration
	httpClient *http.Client
	parser     *gofeed.Parser

	mu           sync.RWMutex
	articles     []Article
	etag         string
	lastModified string
}

func NewPoller(feedURL string, interval time.Duration, httpClient *http.Client) *Poller {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: fetchTimeout}
	}
	return &Poller{
		logPrefix:  "[amigo] feed",
		feedURL:    feedURL,
		interval:   interval,
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
	}
}

// Articles returns the cached articles, newest first.
func (p *Poller) Articles() []Article {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Article, len(p.articles))
	copy(out, p.articles)
	return out
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		log.Printf("%s initial fetch failed: %v", p.logPrefix, err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				log.Printf("%s fetch failed: %v", p.logPrefix, err)
			}
		}
	}
}

// Refresh fetches the feed with conditional headers and replaces the cache
// when the feed has changed.
func (p *Poller) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.feedURL, nil)
	if err != nil {
		return err
	}
	p.mu.RLock()
	etag, lastModified := p.etag, p.lastModified
	p.mu.RUnlock()
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastModified != "" {
		req.Header.Set("If-Modified-Since", lastModified)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("status=%d: %s", resp.StatusCode, msg)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return err
	}

	parsed, err := p.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}

	articles := make([]Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		a := Article{Title: title, URL: link}
		if item.PublishedParsed != nil {
			a.Published = *item.PublishedParsed
		}
		articles = append(articles, a)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}

	p.mu.Lock()
	p.articles = articles
	p.etag = strings.TrimSpace(resp.Header.Get("ETag"))
	p.lastModified = strings.TrimSpace(resp.Header.Get("Last-Modified"))
	p.mu.Unlock()

	log.Printf("%s refreshed: url=%s items=%d", p.logPrefix, p.feedURL, len(articles))
	return nil
}
