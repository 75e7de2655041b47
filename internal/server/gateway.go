package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Parker2127/Amigo/internal/intent"
)

const (
	gatewayReadLimit    = 16 * 1024
	gatewayReadTimeout  = 5 * time.Minute
	gatewayWriteTimeout = 10 * time.Second
)

// handleGateway serves the websocket variant of the chat endpoint: one
// session id per connection, one {"message"} frame in, one
// {"response","intent"} frame out. Semantics match POST /chat.
func (s *Server) handleGateway(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("%s gateway upgrade failed: %v", s.logPrefix, err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	logPrefix := s.logPrefix + " gateway session=" + sessionID
	log.Printf("%s connected", logPrefix)
	conn.SetReadLimit(gatewayReadLimit)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(gatewayReadTimeout))

		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("%s read error: %v", logPrefix, err)
			}
			return
		}

		reply := s.gatewayReply(req, sessionID, logPrefix)

		_ = conn.SetWriteDeadline(time.Now().Add(gatewayWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("%s write error: %v", logPrefix, err)
			return
		}
	}
}

func (s *Server) gatewayReply(req chatRequest, sessionID, logPrefix string) (out chatResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("%s panic: %v", logPrefix, rec)
			out = chatResponse{Response: techDifficultiesText}
		}
	}()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return chatResponse{Response: emptyMessageText}
	}

	detected := intent.Classify(message)
	log.Printf("%s intent=%s", logPrefix, detected)
	resp := s.dispatcher.Dispatch(detected.String(), map[string]any{}, message, sessionID, nil)
	return chatResponse{Response: resp.Text, Intent: detected.String()}
}
