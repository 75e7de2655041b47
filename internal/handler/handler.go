// Package handler turns a classified intent into a reply payload. Handlers
// are pure apart from uniform random reply selection: no I/O, no shared
// state, every input has a defined response.
package handler

import (
	"fmt"

	"github.com/Parker2127/Amigo/internal/intent"
)

// Context is an advisory conversation-state record echoed to the caller. The
// caller decrements the lifespan and enforces expiry; this service only
// produces fresh contexts and passes inbound ones through untouched.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    map[string]any `json:"parameters"`
}

// Response is the payload a handler produces for one turn.
type Response struct {
	Text           string
	OutputContexts []Context

	// FollowupEvent, when set, asks the NLU platform to trigger another
	// intent immediately. No current handler sets it, but the fulfillment
	// contract supports it.
	FollowupEvent  string
	FollowupParams map[string]any
}

// Func is the shared handler signature. inputContexts are received for
// contract compatibility but never branched on.
type Func func(params map[string]any, queryText, sessionID string, inputContexts []Context) Response

// Dispatcher routes intent display names to handlers. Unknown names route to
// the fallback handler rather than failing.
type Dispatcher struct {
	project string
	table   map[string]Func
}

// NewDispatcher builds a Dispatcher whose context names are scoped to the
// given Dialogflow project id.
func NewDispatcher(project string) *Dispatcher {
	d := &Dispatcher{project: project}
	d.table = map[string]Func{
		"Default Welcome Intent":            d.handleGreeting,
		intent.Greeting.String():            d.handleGreeting,
		intent.PositiveWellbeing.String():   d.handlePositiveWellbeing,
		intent.ExpressSadness.String():      d.handleExpressSadness,
		intent.ExpressAnxiety.String():      d.handleExpressAnxiety,
		intent.ExpressAnger.String():        d.handleExpressAnger,
		intent.AskCopingStrategy.String():   d.handleAskCopingStrategy,
		intent.BreathingExercise.String():   d.handleBreathingExercise,
		intent.GroundingTechnique.String():  d.handleGroundingTechnique,
		intent.PositiveAffirmation.String(): d.handlePositiveAffirmation,
		intent.CheckIn.String():             d.handleCheckIn,
		intent.Goodbye.String():             d.handleGoodbye,
		"Default Fallback Intent":           d.handleFallback,
		intent.Fallback.String():            d.handleFallback,
	}
	return d
}

// Dispatch invokes the handler for intentName, or the fallback handler when
// the name is unrecognized.
func (d *Dispatcher) Dispatch(intentName string, params map[string]any, queryText, sessionID string, inputContexts []Context) Response {
	h, ok := d.table[intentName]
	if !ok {
		h = d.handleFallback
	}
	return h(params, queryText, sessionID, inputContexts)
}

// contextName scopes a context category to the session, in the platform's
// projects/<id>/agent/sessions/<session>/contexts/<category> shape.
func (d *Dispatcher) contextName(sessionID, category string) string {
	return fmt.Sprintf("projects/%s/agent/sessions/%s/contexts/%s", d.project, sessionID, category)
}
