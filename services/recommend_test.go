package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrahman-nisar/UpliftAI/models"
)

func TestActivityTypesForUnknownMoodIsFullSet(t *testing.T) {
	full := []models.ActivityType{
		models.ActivityPhysical, models.ActivityMental, models.ActivitySpiritual,
	}

	assert.Equal(t, full, ActivityTypesForMood(""))
	assert.Equal(t, full, ActivityTypesForMood("Confused"))
	assert.Equal(t, full, ActivityTypesForMood(models.MoodExcited))
}

func TestActivityTypesForMappedMoods(t *testing.T) {
	tests := []struct {
		mood models.Mood
		want []models.ActivityType
	}{
		{models.MoodAnxious, []models.ActivityType{models.ActivityMental, models.ActivitySpiritual}},
		{models.MoodStressed, []models.ActivityType{models.ActivityPhysical, models.ActivitySpiritual}},
		{models.MoodTired, []models.ActivityType{models.ActivityPhysical}},
		{models.MoodHappy, []models.ActivityType{models.ActivityPhysical, models.ActivityMental}},
		{models.MoodSad, []models.ActivityType{models.ActivityPhysical, models.ActivityMental}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityTypesForMood(tt.mood))
		})
	}
}

func TestCategoriesForMood(t *testing.T) {
	assert.Equal(t, []string{"Mindfulness", "Gratitude"}, CategoriesForMood(models.MoodCalm))
	assert.Equal(t, []string{"Motivation", "Self-Compassion"}, CategoriesForMood(models.MoodSad))
	assert.Equal(t, []string{"Motivation"}, CategoriesForMood(""))
	assert.Equal(t, []string{"Motivation"}, CategoriesForMood("Bewildered"))
}

func TestPromptForMoodComesFromMoodSet(t *testing.T) {
	candidates := moodPrompts[models.MoodAnxious]

	for i := 0; i < 20; i++ {
		assert.Contains(t, candidates, PromptForMood(models.MoodAnxious))
	}
}

func TestPromptForUnknownMoodUsesDefaults(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, defaultPrompts, PromptForMood("Melancholy"))
	}
}

func TestSampleContentCapsAndDeduplicates(t *testing.T) {
	items := make([]*models.Content, 12)
	for i := range items {
		items[i] = &models.Content{ID: fmt.Sprintf("c%d", i)}
	}

	sample := sampleContent(items, 5)
	require.Len(t, sample, 5)

	seen := map[string]bool{}
	for _, item := range sample {
		assert.False(t, seen[item.ID], "duplicate item %s in sample", item.ID)
		seen[item.ID] = true
	}
}

func TestSampleContentBelowCapReturnsAll(t *testing.T) {
	items := []*models.Content{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, items, sampleContent(items, 5))
}
