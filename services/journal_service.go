package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// JournalService manages per-user journal entries.
type JournalService struct {
	store store.Store
	now   func() time.Time
}

func NewJournalService(s store.Store) *JournalService {
	return &JournalService{store: s, now: time.Now}
}

func journalScope(userID string) string {
	return store.Join("journals", userID)
}

func (s *JournalService) Create(ctx context.Context, req models.CreateJournalRequest) (*models.JournalEntry, error) {
	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	journalID, err := s.store.Create(ctx, journalScope(req.UserID))
	if err != nil {
		return nil, &StoreError{Op: "create journal entry", Err: err}
	}

	entry := &models.JournalEntry{
		ID:        journalID,
		UserID:    req.UserID,
		Date:      date,
		Content:   req.Content,
		Prompt:    req.Prompt,
		CreatedAt: utils.CurrentTimestamp(),
	}

	path := store.Join(journalScope(req.UserID), journalID)
	if err := s.store.Set(ctx, path, entry.Doc()); err != nil {
		return nil, &StoreError{Op: "create journal entry", Err: err}
	}
	return entry, nil
}

func (s *JournalService) Get(ctx context.Context, userID, journalID string) (*models.JournalEntry, error) {
	doc, err := s.store.Get(ctx, store.Join(journalScope(userID), journalID))
	if err != nil {
		return nil, translate("get journal entry", "journal entry", err)
	}
	return models.JournalEntryFromDoc(journalID, doc), nil
}

// ListForUser returns a user's journal entries sorted by created_at
// descending, capped to limit when limit > 0.
func (s *JournalService) ListForUser(ctx context.Context, userID string, limit int) ([]*models.JournalEntry, error) {
	docs, err := s.store.List(ctx, journalScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list journal entries", Err: err}
	}

	entries := make([]*models.JournalEntry, 0, len(docs))
	for id, doc := range docs {
		entries = append(entries, models.JournalEntryFromDoc(id, doc))
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
// ascending.
func (s *JournalService) ByDateRange(ctx context.Context, userID, start, end string) ([]*models.JournalEntry, error) {
	docs, err := s.store.List(ctx, journalScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list journal entries", Err: err}
	}

	entries := make([]*models.JournalEntry, 0)
	for id, doc := range docs {
		entry := models.JournalEntryFromDoc(id, doc)
		if start <= entry.Date && entry.Date <= end {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// Search returns every entry whose content or prompt contains the
// keyword, case-insensitive. No pagination; all matches come back.
func (s *JournalService) Search(ctx context.Context, userID, keyword string) ([]*models.JournalEntry, error) {
	docs, err := s.store.List(ctx, journalScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "search journal entries", Err: err}
	}

	needle := strings.ToLower(keyword)
	entries := make([]*models.JournalEntry, 0)
	for id, doc := range docs {
		entry := models.JournalEntryFromDoc(id, doc)
		if strings.Contains(strings.ToLower(entry.Content), needle) ||
			strings.Contains(strings.ToLower(entry.Prompt), needle) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
	return entries, nil
}

// journalUpdateWhitelist lists the entry fields a partial update may
// touch.
var journalUpdateWhitelist = []string{"content", "prompt", "date"}

func (s *JournalService) Update(ctx context.Context, userID, journalID string, fields map[string]any) error {
	update := store.Document{}
	for _, field := range journalUpdateWhitelist {
		if v, ok := fields[field]; ok {
			update[field] = v
		}
	}
	update["updated_at"] = utils.CurrentTimestamp()

	if err := s.store.Update(ctx, store.Join(journalScope(userID), journalID), update); err != nil {
		return translate("update journal entry", "journal entry", err)
	}
	return nil
}

func (s *JournalService) Delete(ctx context.Context, userID, journalID string) error {
	if err := s.store.Delete(ctx, store.Join(journalScope(userID), journalID)); err != nil {
		return translate("delete journal entry", "journal entry", err)
	}
	return nil
}
