package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

func newContentService() *ContentService {
	return NewContentService(store.NewMemoryStore())
}

func seedContent(t *testing.T, svc *ContentService, items ...models.CreateContentRequest) {
	t.Helper()
	for _, req := range items {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestContentCreateThenGetRoundTrip(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateContentRequest{
		Text:     "Breathe in for four counts.",
		Type:     "Tip",
		Category: "Stress",
		Tags:     []string{"breathing", "calm"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breathe in for four counts.", got.Text)
	assert.Equal(t, "Tip", got.Type)
	assert.Equal(t, "Stress", got.Category)
	assert.Equal(t, []string{"breathing", "calm"}, got.Tags)
}

func TestContentByCategoryAndTypeCaseInsensitive(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "q1", Type: "Quote", Category: "Motivation"},
		models.CreateContentRequest{Text: "t1", Type: "Tip", Category: "Stress"},
	)

	byCategory, err := svc.ByCategory(context.Background(), "motivation")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "q1", byCategory[0].Text)

	byType, err := svc.ByType(context.Background(), "TIP")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "t1", byType[0].Text)
}

func TestContentByTags(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "a", Type: "Tip", Category: "Stress", Tags: []string{"sleep", "rest"}},
		models.CreateContentRequest{Text: "b", Type: "Tip", Category: "Energy", Tags: []string{"exercise"}},
	)

	matched, err := svc.ByTags(context.Background(), []string{"REST", "focus"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].Text)
}

func TestRetrieveCalmOnlyReturnsMappedCategories(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "m1", Type: "Tip", Category: "Mindfulness"},
		models.CreateContentRequest{Text: "g1", Type: "Quote", Category: "Gratitude"},
		models.CreateContentRequest{Text: "s1", Type: "Tip", Category: "Stress"},
	)

	items, err := svc.Retrieve(context.Background(), "Calm", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Contains(t, []string{"Mindfulness", "Gratitude"}, item.Category)
	}
}

func TestRetrieveUnknownMoodDefaultsToMotivation(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "m1", Type: "Quote", Category: "Motivation"},
		models.CreateContentRequest{Text: "s1", Type: "Tip", Category: "Stress"},
	)

	items, err := svc.Retrieve(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Motivation", items[0].Category)
}

func TestRetrieveNeverExceedsFiveOrDuplicates(t *testing.T) {
	svc := newContentService()
	for i := 0; i < 12; i++ {
		seedContent(t, svc, models.CreateContentRequest{
			Text: fmt.Sprintf("quote %d", i), Type: "Quote", Category: "Motivation",
		})
	}

	items, err := svc.Retrieve(context.Background(), "Tired", nil)
	require.NoError(t, err)
	require.Len(t, items, 5)

	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate content %s", item.ID)
		seen[item.ID] = true
	}
}

func TestRetrieveEmptyCatalog(t *testing.T) {
	svc := newContentService()

	items, err := svc.Retrieve(context.Background(), "Happy", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQuoteFromCatalogFilteredByCategory(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "stress quote", Type: "Quote", Category: "Stress"},
		models.CreateContentRequest{Text: "motivation quote", Type: "Quote", Category: "Motivation"},
	)

	quote, err := svc.Quote(context.Background(), "stress")
	require.NoError(t, err)
	assert.Equal(t, "stress quote", quote.Text)
}

func TestQuoteFallsBackWhenCatalogEmpty(t *testing.T) {
	svc := newContentService()

	quote, err := svc.Quote(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, quote.Text)
	assert.Equal(t, "Quote", quote.Type)
	assert.Equal(t, "Motivation", quote.Category)
}

func TestQuoteFallsBackWhenCategoryHasNoMatch(t *testing.T) {
	svc := newContentService()
	seedContent(t, svc,
		models.CreateContentRequest{Text: "stress quote", Type: "Quote", Category: "Stress"},
	)

	quote, err := svc.Quote(context.Background(), "Gratitude")
	require.NoError(t, err)
	assert.NotEqual(t, "stress quote", quote.Text)
}

func TestTipsFromCatalogCappedAtThree(t *testing.T) {
	svc := newContentService()
	for i := 0; i < 6; i++ {
		seedContent(t, svc, models.CreateContentRequest{
			Text: fmt.Sprintf("tip %d", i), Type: "Tip", Category: "Wellness",
		})
	}

	tips, err := svc.Tips(context.Background(), "Tired")
	require.NoError(t, err)
	assert.Len(t, tips, 3)
}

func TestTipsFallBackWhenCatalogEmpty(t *testing.T) {
	svc := newContentService()

	tips, err := svc.Tips(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, tips, 3)
	for _, tip := range tips {
		assert.Equal(t, "Tip", tip.Type)
		assert.Equal(t, "Wellness", tip.Category)
		assert.NotEmpty(t, tip.Text)
	}
}
