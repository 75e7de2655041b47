package intent

import "strings"

// Trigger phrase groups, evaluated in order. The order encodes the
// disambiguation policy: positive wellbeing before greetings and check-ins so
// "I feel good" is celebrated rather than greeted, technique requests before
// raw emotion words so "breathing exercise" never falls into an emotion
// bucket, and greetings only when no need/help words co-occur.
var (
	positivePhrases = []string{
		"i am good", "i'm good", "feeling good", "doing well", "i'm great",
		"i am great", "feeling better", "much better", "doing better",
		"i'm fine", "i am fine", "feeling fine", "i'm okay", "i am okay",
		"feeling happy", "feeling positive",
	}

	breathingPhrases = []string{
		"breathing exercise", "breathing technique", "need a breathing", "breathing help",
	}

	groundingPhrases = []string{
		"grounding", "ground me", "present moment", "grounding technique",
	}

	copingPhrases = []string{
		"coping strategy", "coping mechanism", "help me cope", "need coping help",
		"what can i do", "how do i",
	}

	affirmationPhrases = []string{
		"affirmation", "positive thoughts", "encourage me", "motivation", "need encouragement",
	}

	sadnessWords = []string{
		"sad", "depressed", "down", "upset", "cry", "crying", "heartbroken", "grief", "feel sad",
	}

	anxietyWords = []string{
		"anxious", "anxiety", "worried", "nervous", "panic", "stress", "overwhelmed", "feel anxious",
	}

	angerWords = []string{
		"angry", "mad", "furious", "frustrated", "annoyed", "irritated", "feel angry",
	}

	checkInPhrases = []string{"how are you", "checking in", "check in"}

	greetingWords = []string{
		"hello", "hi there", "hey", "good morning", "good afternoon", "good evening",
	}

	// greetingExclusions keep support requests like "I need help" from being
	// read as a greeting.
	greetingExclusions = []string{"need", "help", "feel", "want"}

	goodbyeWords = []string{"bye", "goodbye", "see you", "talk later", "take care"}
)

// Classify maps a raw user message to exactly one Intent. It is deterministic
// and contains no randomness; the first matching group wins.
func Classify(message string) Intent {
	m := strings.ToLower(message)

	switch {
	case containsAny(m, positivePhrases):
		return PositiveWellbeing
	case containsAny(m, breathingPhrases):
		return BreathingExercise
	case containsAny(m, groundingPhrases):
		return GroundingTechnique
	case containsAny(m, copingPhrases):
		return AskCopingStrategy
	case containsAny(m, affirmationPhrases):
		return PositiveAffirmation
	case containsAny(m, sadnessWords):
		return ExpressSadness
	case containsAny(m, anxietyWords):
		return ExpressAnxiety
	case containsAny(m, angerWords):
		return ExpressAnger
	case containsAny(m, checkInPhrases):
		return CheckIn
	case containsAny(m, greetingWords) && !containsAny(m, greetingExclusions):
		return Greeting
	}

	// Bare salutations bypass the exclusion filter above, so a plain "hi"
	// still greets even when the broad rule was skipped.
	switch strings.TrimSpace(m) {
	case "hi", "hello", "hey":
		return Greeting
	}

	if containsAny(m, goodbyeWords) {
		return Goodbye
	}

	// Loose breathing cues, checked last among real matches.
	if strings.Contains(m, "breathe") || strings.Contains(m, "calm down") {
		return BreathingExercise
	}

	return Fallback
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
