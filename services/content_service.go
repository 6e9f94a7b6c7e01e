package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

const contentScope = "content"

// ContentService manages the wellness content catalog and the
// mood-driven retrieval on top of it.
type ContentService struct {
	store store.Store
}

func NewContentService(s store.Store) *ContentService {
	return &ContentService{store: s}
}

func (s *ContentService) Create(ctx context.Context, req models.CreateContentRequest) (*models.Content, error) {
	contentID, err := s.store.Create(ctx, contentScope)
	if err != nil {
		return nil, &StoreError{Op: "create content", Err: err}
	}

	content := &models.Content{
		ID:       contentID,
		Text:     req.Text,
		Type:     req.Type,
		Category: req.Category,
		Tags:     req.Tags,
		Author:   req.Author,
	}

	path := store.Join(contentScope, contentID)
	if err := s.store.Set(ctx, path, content.Doc()); err != nil {
		return nil, &StoreError{Op: "create content", Err: err}
	}
	return content, nil
}

func (s *ContentService) Get(ctx context.Context, contentID string) (*models.Content, error) {
	doc, err := s.store.Get(ctx, store.Join(contentScope, contentID))
	if err != nil {
		return nil, translate("get content", "content", err)
	}
	return models.ContentFromDoc(contentID, doc), nil
}

func (s *ContentService) GetAll(ctx context.Context) ([]*models.Content, error) {
	docs, err := s.store.List(ctx, contentScope)
	if err != nil {
		return nil, &StoreError{Op: "list content", Err: err}
	}

	items := make([]*models.Content, 0, len(docs))
	for id, doc := range docs {
		items = append(items, models.ContentFromDoc(id, doc))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// ByCategory returns content whose category matches, case-insensitive.
func (s *ContentService) ByCategory(ctx context.Context, category string) ([]*models.Content, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Content, 0)
	for _, item := range all {
		if strings.EqualFold(item.Category, category) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// ByType returns content whose type matches, case-insensitive.
func (s *ContentService) ByType(ctx context.Context, contentType string) ([]*models.Content, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Content, 0)
	for _, item := range all {
		if strings.EqualFold(item.Type, contentType) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// ByTags returns content sharing at least one tag with the query,
// case-insensitive.
func (s *ContentService) ByTags(ctx context.Context, tags []string) ([]*models.Content, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Content, 0)
	for _, item := range all {
		if anyTagMatches(item.Tags, tags) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func anyTagMatches(itemTags, queryTags []string) bool {
	for _, q := range queryTags {
		for _, t := range itemTags {
			if strings.EqualFold(t, q) {
				return true
			}
		}
	}
	return false
}

// Retrieve returns content from the categories mapped to the mood,
// randomly sampled down to at most 5 items. Output is non-deterministic
// above the cap. goals is accepted but never consulted.
func (s *ContentService) Retrieve(ctx context.Context, mood string, goals []string) ([]*models.Content, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := CategoriesForMood(models.Mood(mood))
	relevant := make([]*models.Content, 0)
	for _, item := range all {
		for _, category := range categories {
			if item.Category == category {
				relevant = append(relevant, item)
				break
			}
		}
	}

	return sampleContent(relevant, retrievalLimit), nil
}

// Prompt picks a journal prompt for the mood. goals is accepted but
// never consulted.
func (s *ContentService) Prompt(mood string, goals []string) string {
	return PromptForMood(models.Mood(mood))
}

// Quote returns a random catalog quote, optionally filtered by
// category, falling back to the built-in list when nothing matches.
func (s *ContentService) Quote(ctx context.Context, category string) (models.Quote, error) {
	quotes, err := s.ByType(ctx, string(models.ContentQuote))
	if err != nil {
		return models.Quote{}, err
	}

	if category != "" {
		filtered := make([]*models.Content, 0, len(quotes))
		for _, q := range quotes {
			if strings.EqualFold(q.Category, category) {
				filtered = append(filtered, q)
			}
		}
		quotes = filtered
	}

	if len(quotes) == 0 {
		return fallbackQuote(), nil
	}

	picked := quotes[rand.Intn(len(quotes))]
	return models.Quote{
		Text:     picked.Text,
		Type:     picked.Type,
		Category: picked.Category,
		Author:   picked.Author,
	}, nil
}

// Tips returns up to 3 randomly sampled catalog tips, falling back to
// the built-in list when the catalog has none. mood is accepted but the
// catalog tips are not mood-filtered.
func (s *ContentService) Tips(ctx context.Context, mood string) ([]*models.Content, error) {
	tips, err := s.ByType(ctx, string(models.ContentTip))
	if err != nil {
		return nil, err
	}

	if len(tips) == 0 {
		return fallbackTipContent(), nil
	}
	return sampleContent(tips, 3), nil
}
