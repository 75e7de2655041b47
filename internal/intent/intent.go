// Package intent defines the closed set of conversation intents and the
// keyword classifier used by the direct chat path. The Dialogflow webhook
// path receives an already-classified intent and never calls the classifier.
package intent

// Intent is a closed-set label naming the user's conversational goal for one
// turn.
type Intent string

const (
	Greeting            Intent = "greeting"
	PositiveWellbeing   Intent = "positive_wellbeing"
	ExpressSadness      Intent = "express_sadness"
	ExpressAnxiety      Intent = "express_anxiety"
	ExpressAnger        Intent = "express_anger"
	AskCopingStrategy   Intent = "ask_coping_strategy"
	BreathingExercise   Intent = "breathing_exercise"
	GroundingTechnique  Intent = "grounding_technique"
	PositiveAffirmation Intent = "positive_affirmation"
	CheckIn             Intent = "check_in"
	Goodbye             Intent = "goodbye"
	Fallback            Intent = "fallback"
)

// All lists every intent in the closed set.
func All() []Intent {
	return []Intent{
		Greeting,
		PositiveWellbeing,
		ExpressSadness,
		ExpressAnxiety,
		ExpressAnger,
		AskCopingStrategy,
		BreathingExercise,
		GroundingTechnique,
		PositiveAffirmation,
		CheckIn,
		Goodbye,
		Fallback,
	}
}

func (i Intent) String() string { return string(i) }
