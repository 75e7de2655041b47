package handler

import (
	"strings"

	"github.com/Parker2127/Amigo/internal/respond"
)

func (d *Dispatcher) handleGreeting(_ map[string]any, _, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Greetings),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "conversation-started"),
			LifespanCount: 5,
			Parameters:    map[string]any{"greeting_given": true},
		}},
	}
}

func (d *Dispatcher) handlePositiveWellbeing(_ map[string]any, _, _ string, _ []Context) Response {
	text := respond.Pick(respond.PositiveWellbeing)
	// Sometimes add a follow-up question.
	if respond.Coin() {
		text += " " + respond.Pick(respond.PositiveFollowups)
	}
	return Response{Text: text}
}

func (d *Dispatcher) handleExpressSadness(_ map[string]any, _, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Sadness),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "emotional-state"),
			LifespanCount: 10,
			Parameters: map[string]any{
				"emotion":         "sadness",
				"support_offered": true,
			},
		}},
	}
}

func (d *Dispatcher) handleExpressAnxiety(_ map[string]any, _, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Anxiety),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "emotional-state"),
			LifespanCount: 10,
			Parameters: map[string]any{
				"emotion":          "anxiety",
				"coping_suggested": false,
			},
		}},
	}
}

func (d *Dispatcher) handleExpressAnger(_ map[string]any, _, sessionID string, _ []Context) Response {
	validation := respond.Pick(respond.ValidationsFor("anger"))
	followup := respond.Pick(respond.AngerFollowups)
	return Response{
		Text: validation + " " + followup,
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "emotional-state"),
			LifespanCount: 10,
			Parameters: map[string]any{
				"emotion":          "anger",
				"validation_given": true,
			},
		}},
	}
}

func (d *Dispatcher) handleAskCopingStrategy(_ map[string]any, _, sessionID string, _ []Context) Response {
	intro := respond.Pick(respond.CopingIntros)
	strategy := respond.Pick(respond.CopingStrategies)
	return Response{
		Text: intro + " " + strategy,
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "coping-strategy"),
			LifespanCount: 5,
			Parameters: map[string]any{
				"strategy_provided": true,
				"strategy_type":     "general",
			},
		}},
	}
}

func (d *Dispatcher) handleBreathingExercise(_ map[string]any, _, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Breathing),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "coping-strategy"),
			LifespanCount: 5,
			Parameters: map[string]any{
				"strategy_provided": true,
				"strategy_type":     "breathing",
			},
		}},
	}
}

func (d *Dispatcher) handleGroundingTechnique(_ map[string]any, _, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Grounding),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "coping-strategy"),
			LifespanCount: 5,
			Parameters: map[string]any{
				"strategy_provided": true,
				"strategy_type":     "grounding",
			},
		}},
	}
}

func (d *Dispatcher) handlePositiveAffirmation(_ map[string]any, _, _ string, _ []Context) Response {
	return Response{Text: respond.Pick(respond.Affirmations)}
}

// selfCheckPhrases detect the user asking about AMIGO's own wellbeing. The
// branch keys off the raw query text, not the classified intent.
var selfCheckPhrases = []string{"how are you", "how you doing", "how you been", "how's it going"}

func (d *Dispatcher) handleCheckIn(_ map[string]any, queryText, _ string, _ []Context) Response {
	q := strings.ToLower(queryText)
	for _, phrase := range selfCheckPhrases {
		if strings.Contains(q, phrase) {
			return Response{Text: respond.Pick(respond.CheckInSelf)}
		}
	}
	return Response{Text: respond.Pick(respond.CheckInGeneric)}
}

func (d *Dispatcher) handleGoodbye(_ map[string]any, _, _ string, _ []Context) Response {
	return Response{Text: respond.Pick(respond.Goodbyes)}
}

func (d *Dispatcher) handleFallback(_ map[string]any, queryText, sessionID string, _ []Context) Response {
	return Response{
		Text: respond.Pick(respond.Fallbacks),
		OutputContexts: []Context{{
			Name:          d.contextName(sessionID, "clarification-needed"),
			LifespanCount: 3,
			Parameters: map[string]any{
				"fallback_triggered": true,
				"original_query":     queryText,
			},
		}},
	}
}
