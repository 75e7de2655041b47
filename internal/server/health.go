package server

import (
	"net/http"

	"github.com/Parker2127/Amigo/internal/feed"
	"github.com/Parker2127/Amigo/internal/respond"
)

const (
	serviceName    = "AMIGO Therapy Chatbot Webhook"
	serviceVersion = "1.0.0"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

type resourcesResponse struct {
	Crisis        respond.CrisisResources `json:"crisis"`
	Encouragement []string                `json:"encouragement"`
	Articles      []feed.Article          `json:"articles"`
}

// handleResources serves the static crisis listings plus whatever wellbeing
// articles the feed poller currently has cached.
func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	out := resourcesResponse{
		Crisis:        respond.Crisis(),
		Encouragement: respond.Encouragements,
		Articles:      []feed.Article{},
	}
	if s.feed != nil {
		out.Articles = s.feed.Articles()
	}
	writeJSON(w, http.StatusOK, out)
}
