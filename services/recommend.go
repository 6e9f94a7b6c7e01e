package services

import (
	"math/rand"

	"github.com/abdulrahman-nisar/UpliftAI/models"
)

// Static recommendation tables. Both lookups are keyed by the closed
// mood set and fall back to an explicit default when the mood is
// unrecognized or absent. The goals parameter threaded through the
// callers is accepted for API compatibility and never consulted here.

// moodActivityTypes maps a mood to the activity types recommended for it.
var moodActivityTypes = map[models.Mood][]models.ActivityType{
	models.MoodAnxious:  {models.ActivityMental, models.ActivitySpiritual},
	models.MoodStressed: {models.ActivityPhysical, models.ActivitySpiritual},
	models.MoodTired:    {models.ActivityPhysical},
	models.MoodHappy:    {models.ActivityPhysical, models.ActivityMental},
	models.MoodSad:      {models.ActivityPhysical, models.ActivityMental},
}

var defaultActivityTypes = []models.ActivityType{
	models.ActivityPhysical, models.ActivityMental, models.ActivitySpiritual,
}

// ActivityTypesForMood resolves the recommended activity types for a
// mood, defaulting to the full set.
func ActivityTypesForMood(mood models.Mood) []models.ActivityType {
	if types, ok := moodActivityTypes[mood]; ok {
		return types
	}
	return defaultActivityTypes
}

// moodCategories maps a mood to relevant content categories.
var moodCategories = map[models.Mood][]string{
	models.MoodAnxious:  {"Stress", "Mindfulness"},
	models.MoodStressed: {"Stress", "Relaxation"},
	models.MoodTired:    {"Motivation", "Energy"},
	models.MoodHappy:    {"Gratitude", "Motivation"},
	models.MoodSad:      {"Motivation", "Self-Compassion"},
	models.MoodCalm:     {"Mindfulness", "Gratitude"},
}

var defaultCategories = []string{"Motivation"}

// CategoriesForMood resolves the relevant content categories for a
// mood, defaulting to Motivation.
func CategoriesForMood(mood models.Mood) []string {
	if categories, ok := moodCategories[mood]; ok {
		return categories
	}
	return defaultCategories
}

// retrievalLimit caps how many content items one retrieval call returns.
const retrievalLimit = 5

// sampleContent draws a uniform random sample of up to n items without
// replacement. Output order and membership vary across calls.
func sampleContent(items []*models.Content, n int) []*models.Content {
	if len(items) <= n {
		return items
	}
	shuffled := make([]*models.Content, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

var moodPrompts = map[models.Mood][]string{
	models.MoodAnxious: {
		"What triggered your anxiety today? How did you cope with it?",
		"Write about three things you can control right now.",
		"Describe a moment today when you felt calm or at peace.",
	},
	models.MoodStressed: {
		"What's causing you the most stress right now? Break it down into smaller parts.",
		"List three things you accomplished today, no matter how small.",
		"What can you delegate or let go of tomorrow?",
	},
	models.MoodHappy: {
		"What made you happy today? How can you create more of these moments?",
		"Write about someone who made you smile today.",
		"What are you grateful for right now?",
	},
	models.MoodSad: {
		"What emotions are you feeling? It's okay to acknowledge them.",
		"Write a letter to yourself with compassion and kindness.",
		"What small thing could bring you a bit of comfort right now?",
	},
	models.MoodTired: {
		"What drained your energy today? How can you recharge?",
		"When do you feel most energized? How can you incorporate more of that?",
		"What does rest look like for you?",
	},
	models.MoodCalm: {
		"What helped you feel calm today?",
		"Reflect on a peaceful moment you experienced.",
		"What practices help you maintain inner peace?",
	},
}

var defaultPrompts = []string{
	"How are you feeling today? What's on your mind?",
	"What did you learn about yourself today?",
	"What are you grateful for today?",
}

// PromptForMood picks one journal prompt uniformly at random from the
// mood's candidates, or from the generic set for unknown moods.
func PromptForMood(mood models.Mood) string {
	prompts, ok := moodPrompts[mood]
	if !ok {
		prompts = defaultPrompts
	}
	return prompts[rand.Intn(len(prompts))]
}

// fallbackQuotes serve quote requests when the catalog has no matching
// entries.
var fallbackQuotes = []models.Quote{
	{Text: "Every day is a new beginning. Take a deep breath and start again.", Type: "Quote", Category: "Motivation"},
	{Text: "You are stronger than you think.", Type: "Quote", Category: "Motivation"},
	{Text: "Progress, not perfection.", Type: "Quote", Category: "Motivation"},
	{Text: "Be kind to yourself. You're doing the best you can.", Type: "Quote", Category: "Motivation"},
}

func fallbackQuote() models.Quote {
	return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
}

// fallbackTips serve tip requests when the catalog has no Tip entries.
var fallbackTips = []string{
	"Take 5 deep breaths when feeling overwhelmed.",
	"Drink a glass of water and stretch for 2 minutes.",
	"Write down 3 things you're grateful for today.",
}

func fallbackTipContent() []*models.Content {
	tips := make([]*models.Content, 0, len(fallbackTips))
	for _, text := range fallbackTips {
		tips = append(tips, &models.Content{
			Text:     text,
			Type:     "Tip",
			Category: "Wellness",
			Tags:     []string{},
		})
	}
	return tips
}
