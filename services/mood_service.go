package services

import (
	"context"
	"sort"
	"time"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// MoodService manages per-user mood entries and their statistics.
type MoodService struct {
	store store.Store
	now   func() time.Time
}

func NewMoodService(s store.Store) *MoodService {
	return &MoodService{store: s, now: time.Now}
}

func moodScope(userID string) string {
	return store.Join("moods", userID)
}

func (s *MoodService) Create(ctx context.Context, req models.CreateMoodRequest) (*models.MoodEntry, error) {
	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	entryID, err := s.store.Create(ctx, moodScope(req.UserID))
	if err != nil {
		return nil, &StoreError{Op: "create mood entry", Err: err}
	}

	entry := &models.MoodEntry{
		ID:        entryID,
		UserID:    req.UserID,
		Date:      date,
		Mood:      req.Mood,
		Energy:    req.Energy,
		Notes:     req.Notes,
		CreatedAt: utils.CurrentTimestamp(),
	}

	// Create reserved the id but this write is a separate step: a crash
	// in between leaves an orphaned id that List skips.
	path := store.Join(moodScope(req.UserID), entryID)
	if err := s.store.Set(ctx, path, entry.Doc()); err != nil {
		return nil, &StoreError{Op: "create mood entry", Err: err}
	}
	return entry, nil
}

func (s *MoodService) Get(ctx context.Context, userID, entryID string) (*models.MoodEntry, error) {
	doc, err := s.store.Get(ctx, store.Join(moodScope(userID), entryID))
	if err != nil {
		return nil, translate("get mood entry", "mood entry", err)
	}
	return models.MoodEntryFromDoc(entryID, doc), nil
}

// ListForUser returns a user's mood entries sorted by created_at
// descending, capped to limit when limit > 0.
func (s *MoodService) ListForUser(ctx context.Context, userID string, limit int) ([]*models.MoodEntry, error) {
	docs, err := s.store.List(ctx, moodScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list mood entries", Err: err}
	}

	entries := make([]*models.MoodEntry, 0, len(docs))
	for id, doc := range docs {
		entries = append(entries, models.MoodEntryFromDoc(id, doc))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// ByDateRange returns entries with start <= date <= end, sorted by date
// ascending. Bounds must be YYYY-MM-DD; the comparison is lexicographic.
func (s *MoodService) ByDateRange(ctx context.Context, userID, start, end string) ([]*models.MoodEntry, error) {
	docs, err := s.store.List(ctx, moodScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list mood entries", Err: err}
	}

	entries := make([]*models.MoodEntry, 0)
	for id, doc := range docs {
		entry := models.MoodEntryFromDoc(id, doc)
		if start <= entry.Date && entry.Date <= end {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// moodUpdateWhitelist lists the entry fields a partial update may touch.
var moodUpdateWhitelist = []string{"mood", "energy", "notes"}

func (s *MoodService) Update(ctx context.Context, userID, entryID string, fields map[string]any) error {
	update := store.Document{}
	for _, field := range moodUpdateWhitelist {
		if v, ok := fields[field]; ok {
			update[field] = v
		}
	}

	if err := s.store.Update(ctx, store.Join(moodScope(userID), entryID), update); err != nil {
		return translate("update mood entry", "mood entry", err)
	}
	return nil
}

func (s *MoodService) Delete(ctx context.Context, userID, entryID string) error {
	if err := s.store.Delete(ctx, store.Join(moodScope(userID), entryID)); err != nil {
		return translate("delete mood entry", "mood entry", err)
	}
	return nil
}

// Statistics summarizes the trailing window of days against the current
// date: entries with date >= today-days are counted. Ties for the most
// common mood break to the lexicographically smallest mood.
func (s *MoodService) Statistics(ctx context.Context, userID string, days int) (*models.MoodStatistics, error) {
	if days <= 0 {
		days = 7
	}

	docs, err := s.store.List(ctx, moodScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list mood entries", Err: err}
	}

	threshold := s.now().AddDate(0, 0, -days).Format("2006-01-02")

	stats := &models.MoodStatistics{
		MoodDistribution:   map[string]int{},
		EnergyDistribution: map[string]int{},
		DaysAnalyzed:       days,
	}

	var dates []string
	for _, doc := range docs {
		entry := models.MoodEntryFromDoc("", doc)
		dates = append(dates, entry.Date)
		if entry.Date < threshold {
			continue
		}
		stats.TotalEntries++

		mood := entry.Mood
		if mood == "" {
			mood = "Unknown"
		}
		stats.MoodDistribution[mood]++

		energy := entry.Energy
		if energy == "" {
			energy = "Unknown"
		}
		stats.EnergyDistribution[energy]++
	}

	best := ""
	bestCount := 0
	for mood, count := range stats.MoodDistribution {
		if count > bestCount || (count == bestCount && mood < best) {
			best = mood
			bestCount = count
		}
	}
	stats.MostCommonMood = best
	stats.CurrentStreak = utils.CalculateStreak(dates)

	return stats, nil
}
