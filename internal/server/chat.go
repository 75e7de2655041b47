package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Parker2127/Amigo/internal/intent"
)

const sessionCookieName = "amigo_session"

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent,omitempty"`
}

// handleChat serves the browser chat client, which has no NLU of its own:
// the message is classified here before dispatch.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("%s chat panic: %v", s.logPrefix, rec)
			writeJSON(w, http.StatusInternalServerError, chatResponse{Response: techDifficultiesText})
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Response: emptyMessageText})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		// Rejected before the classifier ever runs.
		writeJSON(w, http.StatusBadRequest, chatResponse{Response: emptyMessageText})
		return
	}

	sessionID := s.chatSession(w, r)
	detected := intent.Classify(message)
	log.Printf("%s chat: session=%s intent=%s", s.logPrefix, sessionID, detected)

	resp := s.dispatcher.Dispatch(detected.String(), map[string]any{}, message, sessionID, nil)
	writeJSON(w, http.StatusOK, chatResponse{Response: resp.Text, Intent: detected.String()})
}

// chatSession returns the browser session id, minting one on the first call
// and reusing it via cookie on later calls. The id only namespaces context
// names; nothing is stored server-side.
func (s *Server) chatSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && strings.TrimSpace(c.Value) != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
