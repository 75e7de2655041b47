package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Parker2127/Amigo/internal/handler"
)

// fulfillmentRequest is the subset of the Dialogflow webhook request the
// service consumes. outputContexts are passed through to the dispatcher
// unread.
type fulfillmentRequest struct {
	QueryResult struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters     map[string]any    `json:"parameters"`
		QueryText      string            `json:"queryText"`
		OutputContexts []handler.Context `json:"outputContexts"`
	} `json:"queryResult"`
	Session string `json:"session"`
}

type fulfillmentResponse struct {
	FulfillmentText    string              `json:"fulfillmentText"`
	OutputContexts     []handler.Context   `json:"outputContexts"`
	FollowupEventInput *followupEventInput `json:"followupEventInput,omitempty"`
}

type followupEventInput struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("%s webhook panic: %v", s.logPrefix, rec)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"fulfillmentText": techDifficultiesText,
			})
		}
	}()

	var req fulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("%s webhook: no JSON payload received: %v", s.logPrefix, err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"fulfillmentText": missingBodyText,
		})
		return
	}

	intentName := req.QueryResult.Intent.DisplayName
	sessionID := sessionIDFromPath(req.Session)
	log.Printf("%s webhook: intent=%q session=%s", s.logPrefix, intentName, sessionID)

	resp := s.dispatcher.Dispatch(
		intentName,
		req.QueryResult.Parameters,
		req.QueryResult.QueryText,
		sessionID,
		req.QueryResult.OutputContexts,
	)

	out := fulfillmentResponse{
		FulfillmentText: resp.Text,
		OutputContexts:  resp.OutputContexts,
	}
	if out.OutputContexts == nil {
		out.OutputContexts = []handler.Context{}
	}
	if resp.FollowupEvent != "" {
		out.FollowupEventInput = &followupEventInput{
			Name:       resp.FollowupEvent,
			Parameters: resp.FollowupParams,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// sessionIDFromPath extracts the session id from a Dialogflow session path
// (the segment after the last slash).
func sessionIDFromPath(session string) string {
	if session == "" {
		return "unknown"
	}
	if i := strings.LastIndex(session, "/"); i >= 0 {
		return session[i+1:]
	}
	return session
}
