// Package respond holds the canned reply catalogs for every intent. The lists
// are pure content: routing never branches on them, and content tests can run
// without touching the classifier or the dispatcher.
package respond

// Greetings are the welcome replies for the greeting intent.
var Greetings = []string{
	"Hello! I'm AMIGO, and I'm here to listen and support you. How are you feeling today?",
	"Hi there! I'm glad you're here. My name is AMIGO, and I'm here to provide a safe space for you to share what's on your mind. How can I support you today?",
	"Welcome! I'm AMIGO, your compassionate AI companion. I'm here to listen without judgment and help you work through whatever you're experiencing. What's on your heart today?",
	"Hello, and thank you for reaching out. I'm AMIGO, and I care about your wellbeing. This is a safe space where you can share your thoughts and feelings. How are you doing right now?",
	"Hi! I'm AMIGO, here to offer support and understanding. I'm glad you decided to connect today. What would you like to talk about?",
}

// DefaultReply is used when a catalog lookup has no entry for the requested key.
const DefaultReply = "I'm here to help. How can I support you today?"

var PositiveWellbeing = []string{
	"That's wonderful to hear! I'm so glad you're feeling good today. It's important to celebrate these positive moments. Is there anything that's particularly contributing to your good mood?",
	"I'm really happy to hear you're doing well! These positive feelings are precious. What's been going well for you lately?",
	"That's fantastic! It's great that you're feeling good. Sometimes sharing our positive moments can make them even brighter. What's bringing you joy today?",
	"I love hearing that you're feeling good! It's wonderful when we can recognize and appreciate these positive emotions. Is there anything specific that's making today good for you?",
	"That's so great to hear! Your positive energy comes through even in text. It's beautiful when we can acknowledge our good moments. What would you like to talk about while you're feeling this way?",
}

var PositiveFollowups = []string{
	"Would you like to share what's been going well?",
	"Is there anything you'd like to celebrate or talk about?",
	"I'm here if you want to share more about your good day!",
	"What's been the highlight of your day so far?",
}

var Sadness = []string{
	"Oh, I'm really sorry you're feeling sad right now. That sounds really tough. You know, it takes a lot of courage to share that with me. What's been weighing on your heart?",
	"I can hear the sadness in your words, and I just want you to know that what you're feeling is so valid. Sometimes life just hits us hard, doesn't it? Want to tell me what's been going on?",
	"Aw, I'm sorry you're going through this. Sadness can feel so heavy sometimes. I'm really glad you reached out though - that shows strength. What's been making things difficult lately?",
	"I feel for you, I really do. It sounds like you're carrying something heavy right now. You don't have to carry it alone though. What's been on your mind?",
	"That sounds really hard. I can sense you're hurting, and I want you to know I'm here with you in this moment. Sometimes it just helps to have someone listen, you know? What's been making you feel this way?",
}

var Anxiety = []string{
	"Oh no, anxiety can be so overwhelming. I totally get that - it's like your mind just won't stop racing, right? You're not alone in this feeling. What's been making you feel anxious today?",
	"Ugh, anxiety is the worst. It can make everything feel so much bigger and scarier than it actually is. I'm really glad you're talking about it though. What's been on your mind that's got you feeling worried?",
	"I hear you on the anxiety - it can be such a tough feeling to sit with. Sometimes it feels like it just takes over everything, doesn't it? I'm here to help you work through this. What's been triggering these feelings?",
	"Anxiety can be so exhausting, both mentally and physically. I really feel for you right now. You know what though? Reaching out like this is actually a really healthy way to handle it. What's been causing these anxious feelings?",
	"Oh, I'm sorry you're dealing with anxiety. It can make even simple things feel impossible sometimes. But hey, you're here talking about it, which is honestly really brave. What's been making you feel this way?",
}

// Validations are empathetic validation openers keyed by emotion name.
var Validations = map[string][]string{
	"sadness": {
		"I can hear the sadness in your words, and I want you to know that what you're feeling is completely valid.",
		"It sounds like you're going through a really difficult time. Your feelings of sadness are important and deserving of attention.",
		"I'm sorry you're experiencing this sadness. It takes courage to acknowledge and share these feelings.",
		"Thank you for trusting me with your feelings. Sadness is a natural part of the human experience, and you're not alone in feeling this way.",
		"I can sense the weight of what you're carrying. Your sadness is real and valid, and I'm here to support you through this.",
	},
	"anxiety": {
		"I understand that you're feeling anxious, and I want you to know that anxiety is a very real and challenging experience.",
		"It sounds like anxiety is making things feel overwhelming right now. These feelings are valid and you're not alone.",
		"I hear that you're struggling with anxious feelings. Anxiety can be incredibly difficult to manage, and I'm here to help.",
		"Thank you for sharing what you're experiencing. Anxiety affects so many people, and what you're feeling is completely understandable.",
		"I can sense that anxiety is weighing on you. These feelings are real and important, and together we can work through them.",
	},
	"anger": {
		"I can hear that you're feeling angry, and those feelings are completely valid. Anger often tells us something important.",
		"It sounds like something has really upset you. Your anger is a natural response, and it's okay to feel this way.",
		"I understand that you're experiencing anger right now. These feelings deserve to be acknowledged and respected.",
		"Thank you for sharing these difficult feelings with me. Anger can be a powerful emotion, and it's important to honor what you're experiencing.",
		"I can sense the frustration and anger you're feeling. These emotions are part of being human, and you have every right to feel them.",
	},
	"stress": {
		"It sounds like you're under a lot of stress right now. These feelings of being overwhelmed are completely understandable.",
		"I can hear that stress is taking a toll on you. What you're experiencing is real and significant.",
		"Stress can feel so overwhelming. I want you to know that what you're going through is valid and you don't have to handle it alone.",
		"I understand that you're feeling stressed. This is such a common human experience, and your feelings about it are important.",
		"It sounds like there's a lot on your plate right now. Feeling stressed under these circumstances makes complete sense.",
	},
}

// DefaultValidation backs ValidationsFor for emotions without a dedicated list.
var DefaultValidation = []string{
	"I can hear that you're going through something difficult right now, and I want you to know that your feelings are valid and important.",
}

// ValidationsFor returns the validation list for an emotion, falling back to
// the generic validation when the emotion has no dedicated entries.
func ValidationsFor(emotion string) []string {
	if v, ok := Validations[emotion]; ok {
		return v
	}
	return DefaultValidation
}

var AngerFollowups = []string{
	"What happened that made you feel this way?",
	"It sounds like something really frustrated you. Would you like to share what happened?",
	"Anger often comes from feeling hurt or misunderstood. What's behind these feelings?",
	"I can hear that you're upset. What would help you feel better right now?",
}

var CopingIntros = []string{
	"Here's something that might help:",
	"Let's try this together:",
	"This technique has helped many people:",
	"I'd like to suggest something that might be helpful:",
}

var CopingStrategies = []string{
	"Try the 'STOP' technique: Stop what you're doing, Take a breath, Observe your thoughts and feelings without judgment, and then Proceed with intention. This can help create space between you and overwhelming emotions.",
	"Practice progressive muscle relaxation: Start with your toes and work your way up, tensing each muscle group for 5 seconds, then releasing. Notice how the tension melts away as you let go.",
	"Use the 'name it to tame it' approach: Simply naming what you're feeling (like 'I notice I'm feeling anxious') can help reduce the intensity of the emotion by engaging the rational part of your brain.",
	"Try journaling for 5-10 minutes. Write down everything you're thinking and feeling without worrying about grammar or making sense. Sometimes getting thoughts out of your head and onto paper can bring relief.",
	"Practice the 'gentle rain' visualization: Imagine your difficult emotions as clouds passing through the sky of your mind. Like weather, emotions are temporary - they come and go naturally.",
	"Create a 'comfort kit' - gather small items that bring you peace, like a soft blanket, calming music, tea, or photos that make you smile. Use these when you need comfort.",
	"Try the 'one thing' approach: When feeling overwhelmed, focus on just one small thing you can do right now. It could be drinking a glass of water, taking three deep breaths, or organizing one small area.",
	"Practice self-compassion by asking yourself: 'What would I say to a good friend going through this?' Then offer yourself that same kindness and understanding.",
	"Use the 'time travel' technique: Remind yourself of a time when you felt capable and strong. You've overcome challenges before, and you have that same strength within you now.",
	"Try the 'worry window' technique: Set aside 15 minutes each day to worry intentionally. When worries come up outside this time, remind yourself to save them for your worry window.",
}

var Breathing = []string{
	"Absolutely! Breathing exercises are amazing - they're like a reset button for your nervous system. Let's do the 4-7-8 technique together. It might feel a bit weird at first, but trust me on this one. Ready? Breathe in through your nose for 4... hold it for 7... and out through your mouth for 8. You're doing great! Want to try that a couple more times?",
	"Great idea! I love box breathing - it's so simple but really effective. Think of it like drawing a square with your breath. Breathe in for 4 counts, hold for 4, out for 4, hold for 4. Let's do it together: In... 2... 3... 4... Hold... 2... 3... 4... Out... 2... 3... 4... Hold... 2... 3... 4. How does that feel?",
	"Perfect choice! Here's one of my favorites - belly breathing. It's super simple but really powerful. Put one hand on your chest, one on your belly. When you breathe in through your nose, try to make only your belly hand move, not the chest one. Then breathe out slowly through your mouth. It tells your body 'hey, everything's okay' and activates that natural relaxation response. Give it a try!",
}

var Grounding = []string{
	"Let's try the 5-4-3-2-1 grounding technique. Look around and name: 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. This helps bring you back to the present moment.",
	"Here's a grounding exercise: Put your feet flat on the floor and really feel them touching the ground. Take three deep breaths. Now notice the temperature of the air on your skin. You're safe here in this moment.",
	"Try this grounding technique: Hold an object near you - your phone, a cup, anything. Focus on how it feels - its weight, texture, temperature. Describe it to yourself in detail. This helps anchor you to the present.",
}

var Affirmations = []string{
	"Remember: You are worthy of love and kindness, especially from yourself. Your feelings are valid, and it's okay to have difficult moments. You're doing the best you can with what you have right now.",
	"Here's a gentle reminder: You have survived 100% of your difficult days so far. You are stronger than you know, and this feeling will pass. Be patient and gentle with yourself.",
	"Let's practice some self-compassion: Place your hand on your heart and say to yourself, 'May I be kind to myself. May I give myself the compassion I need. May I be strong and patient.' You deserve the same kindness you'd give a good friend.",
}

// CheckInSelf replies when the user asks how AMIGO itself is doing.
var CheckInSelf = []string{
	"I'm doing well, thank you for asking! I feel fulfilled when I can be here for people like you. Speaking of which, how are you doing today? Is there anything on your mind?",
	"I'm good! I genuinely enjoy our conversations and being able to support people. It means a lot to me. How about you - how are you feeling today?",
	"I'm doing great, thanks! I feel energized when I can help and listen. I appreciate you asking! Now, how are you doing? What's been on your heart lately?",
	"I'm well! I find purpose in these conversations and being present for people. Thanks for checking in on me! How are you feeling today? Is there anything you'd like to talk about?",
	"I'm doing really good! There's something special about connecting with people and being able to offer support. I appreciate you asking! How about you - what's going on in your world today?",
}

var CheckInGeneric = []string{
	"How are you feeling right now? I'm here to listen and support you through whatever you're experiencing.",
	"What's been on your mind lately? Remember, there's no pressure to share more than you're comfortable with.",
	"How has your day been treating you? I'm here if you need someone to talk to or just want to share how you're doing.",
	"I'm curious about how you're doing. What would be most helpful for you right now - talking through something, learning a coping technique, or just having someone listen?",
}

var Goodbyes = []string{
	"Take care of yourself, and remember that I'm here whenever you need support. You're stronger than you know. Until we talk again! 💙",
	"It was good talking with you today. Remember to be gentle with yourself, and don't hesitate to reach out whenever you need someone to listen. Take care! 💙",
	"Thank you for sharing with me today. You're doing great work by taking care of your mental health. I'm here whenever you need me. Be well! 💙",
	"Goodbye for now. Remember: you matter, your feelings are valid, and you deserve kindness - especially from yourself. I'll be here when you're ready to talk again. 💙",
}

var Fallbacks = []string{
	"You know what? I'm not entirely sure I caught what you meant there, but I definitely want to understand. Could you help me out and tell me a bit more about what you're feeling or what's on your mind?",
	"Hmm, I think I might have missed something there. I'm still learning how to pick up on all the nuances of what people share with me. Can you help me understand what you're going through right now?",
	"I'm going to be honest - I'm not quite sure how to respond to that, but I can tell you might need someone to talk to. What would be most helpful for you right now? I'm here to listen.",
	"You know, sometimes I don't catch everything perfectly, but I really want to be here for you. Could you tell me more about what's on your heart or what kind of support you're looking for today?",
	"I feel like I might have missed the mark there. I'm still figuring out how to be the best listener I can be. Would you mind sharing a bit more about what you're experiencing right now?",
}

// Encouragements are short phrases for difficult moments, surfaced on the
// resources endpoint alongside the crisis listings.
var Encouragements = []string{
	"You are stronger than you know.",
	"This feeling will pass, even though it's hard right now.",
	"You matter, and your life has value.",
	"It's okay to not be okay sometimes.",
	"You're doing the best you can with what you have.",
	"Taking care of your mental health is brave and important.",
	"You deserve kindness, especially from yourself.",
	"Every small step forward counts.",
	"You've survived difficult times before, and you can get through this too.",
	"You don't have to face this alone.",
}
