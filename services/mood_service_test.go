package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

func newMoodService() *MoodService {
	return NewMoodService(store.NewMemoryStore())
}

func fixedDay(date string) func() time.Time {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return day }
}

func TestMoodCreateThenGetRoundTrip(t *testing.T) {
	svc := newMoodService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateMoodRequest{
		UserID: "u1",
		Mood:   "Happy",
		Energy: "High",
		Date:   "2025-01-03",
		Notes:  "good run this morning",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := svc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Happy", got.Mood)
	assert.Equal(t, "High", got.Energy)
	assert.Equal(t, "2025-01-03", got.Date)
	assert.Equal(t, "good run this morning", got.Notes)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestMoodCreateDefaultsDateToToday(t *testing.T) {
	svc := newMoodService()
	svc.now = fixedDay("2025-01-03")

	created, err := svc.Create(context.Background(), models.CreateMoodRequest{
		UserID: "u1",
		Mood:   "Calm",
		Energy: "Medium",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03", created.Date)
}

func TestMoodGetMissing(t *testing.T) {
	svc := newMoodService()

	_, err := svc.Get(context.Background(), "u1", "nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "mood entry", notFound.Resource)
}

func TestMoodUpdateWhitelistIgnoresOtherFields(t *testing.T) {
	svc := newMoodService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateMoodRequest{
		UserID: "u1", Mood: "Sad", Energy: "Low", Date: "2025-01-03",
	})
	require.NoError(t, err)

	err = svc.Update(ctx, "u1", created.ID, map[string]any{
		"mood":    "Calm",
		"user_id": "intruder",
		"date":    "1999-01-01",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calm", got.Mood)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "2025-01-03", got.Date)
}

func TestMoodUpdateMissing(t *testing.T) {
	svc := newMoodService()

	err := svc.Update(context.Background(), "u1", "nope", map[string]any{"mood": "Calm"})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMoodDeleteThenGet(t *testing.T) {
	svc := newMoodService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateMoodRequest{
		UserID: "u1", Mood: "Happy", Energy: "High", Date: "2025-01-03",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", created.ID))

	var notFound *NotFoundError
	_, err = svc.Get(ctx, "u1", created.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestMoodDeleteMissingReportsFailure(t *testing.T) {
	svc := newMoodService()

	err := svc.Delete(context.Background(), "u1", "never-existed")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMoodListSortedByCreatedAtDescWithLimit(t *testing.T) {
	svc := newMoodService()
	ctx := context.Background()

	// Distinct created_at values via direct writes.
	ms := store.NewMemoryStore()
	svc = NewMoodService(ms)
	for i, stamp := range []string{"2025-01-01T10:00:00Z", "2025-01-02T10:00:00Z", "2025-01-03T10:00:00Z"} {
		entry := &models.MoodEntry{
			UserID: "u1", Date: "2025-01-03", Mood: "Happy", Energy: "High", CreatedAt: stamp,
		}
		require.NoError(t, ms.Set(ctx, store.Join("moods", "u1", string(rune('a'+i))), entry.Doc()))
	}

	entries, err := svc.ListForUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-01-03T10:00:00Z", entries[0].CreatedAt)
	assert.Equal(t, "2025-01-01T10:00:00Z", entries[2].CreatedAt)

	capped, err := svc.ListForUser(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestMoodDateRangeInclusiveBounds(t *testing.T) {
	svc := newMoodService()
	ctx := context.Background()

	for _, date := range []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"} {
		_, err := svc.Create(ctx, models.CreateMoodRequest{
			UserID: "u1", Mood: "Happy", Energy: "High", Date: date,
		})
		require.NoError(t, err)
	}

	entries, err := svc.ByDateRange(ctx, "u1", "2025-01-02", "2025-01-03")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Sorted by date ascending, both bounds included.
	assert.Equal(t, "2025-01-02", entries[0].Date)
	assert.Equal(t, "2025-01-03", entries[1].Date)
}

func TestMoodStatisticsScenario(t *testing.T) {
	svc := newMoodService()
	svc.now = fixedDay("2025-01-03")
	ctx := context.Background()

	moods := []struct {
		date string
		mood string
	}{
		{"2025-01-01", "Happy"},
		{"2025-01-02", "Happy"},
		{"2025-01-03", "Sad"},
	}
	for _, m := range moods {
		_, err := svc.Create(ctx, models.CreateMoodRequest{
			UserID: "u1", Mood: m.mood, Energy: "Medium", Date: m.date,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx, "u1", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, map[string]int{"Happy": 2, "Sad": 1}, stats.MoodDistribution)
	assert.Equal(t, map[string]int{"Medium": 3}, stats.EnergyDistribution)
	assert.Equal(t, "Happy", stats.MostCommonMood)
	assert.Equal(t, 7, stats.DaysAnalyzed)
	assert.Equal(t, 3, stats.CurrentStreak)
}

func TestMoodStatisticsTieBreaksLexicographically(t *testing.T) {
	svc := newMoodService()
	svc.now = fixedDay("2025-01-03")
	ctx := context.Background()

	for _, mood := range []string{"Sad", "Happy", "Sad", "Happy"} {
		_, err := svc.Create(ctx, models.CreateMoodRequest{
			UserID: "u1", Mood: mood, Energy: "Low", Date: "2025-01-02",
		})
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx, "u1", 7)
	require.NoError(t, err)
	assert.Equal(t, "Happy", stats.MostCommonMood)
}

func TestMoodStatisticsAllEntriesOutsideWindow(t *testing.T) {
	svc := newMoodService()
	svc.now = fixedDay("2025-06-01")
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateMoodRequest{
		UserID: "u1", Mood: "Happy", Energy: "High", Date: "2025-01-01",
	})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx, "u1", 7)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Empty(t, stats.MoodDistribution)
	assert.Empty(t, stats.EnergyDistribution)
	assert.Equal(t, "", stats.MostCommonMood)
}

func TestMoodStatisticsNoEntriesAtAll(t *testing.T) {
	svc := newMoodService()

	stats, err := svc.Statistics(context.Background(), "nobody", 7)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Empty(t, stats.MoodDistribution)
	assert.Equal(t, 0, stats.CurrentStreak)
}
