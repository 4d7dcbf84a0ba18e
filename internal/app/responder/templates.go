package responder

// Response pools per category. Selection is uniform and memoryless, so
// repeats across turns are possible and fine.
var replyTemplates = map[Category][]string{
	CategoryStress: {
		"That sounds heavy. What do you think weighed on you the most?",
		"I'm sorry today felt like that. Was there a moment it got easier?",
		"Take a breath. If you could hand off one of those worries, which would it be?",
		"That's a lot to carry. What would help you wind down tonight?",
	},
	CategoryDream: {
		"Dreams can stick with you. What part do you still remember most clearly?",
		"Interesting. Did the dream feel connected to anything going on lately?",
		"Sleep has its own stories. How did you feel when you woke up?",
	},
	CategoryFullDay: {
		"You packed a lot into today. Which part are you happiest about?",
		"That's quite a mix for one day. What gave you energy, and what took it?",
		"Sounds like a full day. Anything you'd do differently tomorrow?",
	},
	CategoryWork: {
		"How did work leave you feeling by the end of it?",
		"Sounds like work took up real space today. What went well there?",
		"Is that project moving the way you hoped?",
	},
	CategorySocial: {
		"Time with people can change a whole day. How was the company?",
		"That sounds nice. What did you talk about?",
		"Who were you with? Did it leave you recharged or tired?",
	},
	CategoryExercise: {
		"Nice, you got moving. How did your body feel afterwards?",
		"That kind of movement usually clears the head. Did it?",
		"Good for you. Was it hard to get started today?",
	},
	CategoryBusyDay: {
		"That's a lot for one day. What stands out when you look back at it?",
		"Busy one. If you kept just one moment from today, which is it?",
	},
	CategoryDefault: {
		"Tell me a bit more about that.",
		"How did that make you feel?",
		"What else happened around that?",
		"I'm listening. What's behind that?",
	},
}

// Opening prompts, one pool per time-of-day bucket.
var morningPrompts = []string{
	"Good morning. What's on your mind as the day starts?",
	"Morning. Anything you're hoping for from today?",
	"A new day. How did you sleep?",
}

var afternoonPrompts = []string{
	"How is your day going so far?",
	"Midday check-in: what's been the shape of your day?",
	"Hey. Anything from this morning worth writing down?",
}

var eveningPrompts = []string{
	"Evening. How did today treat you?",
	"The day is winding down. What stayed with you from it?",
	"Welcome back. What would you like to remember about today?",
}

var nightPrompts = []string{
	"It's late. What's keeping you up?",
	"Quiet hours. Anything on your mind before sleep?",
}

// Fixed instruction shown when a log-mode session opens.
const logModeOpening = "Log mode. Write freely; I'll keep everything here without replying."

// Balanced-day summaries take the two activity labels.
var balancedDayTemplates = []string{
	"Today balanced %s with %s. That mix tends to make for a good day.",
	"You made room for both %s and %s today. Worth noticing.",
}

var stressReflections = []string{
	"Today carried some weight. Be gentle with yourself tonight.",
	"A tense day. Naming what was hard is already a step out of it.",
}

var dreamReflections = []string{
	"Sleep and its stories featured today. Rest may be asking for attention.",
}

var genericReflections = []string{
	"A day recorded. Small notes like these add up to a life remembered.",
	"Thanks for writing today down. Future you will be glad to read it.",
	"Another day in the book. Nothing is too small to matter here.",
}

// activityLabels render categories in reflective-summary prose.
var activityLabels = map[Category]string{
	CategoryWork:     "work",
	CategorySocial:   "time with people",
	CategoryExercise: "moving your body",
}
