package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

func newUserService() *UserService {
	return NewUserService(store.NewMemoryStore())
}

func TestUserCreateThenGetRoundTrip(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.CreateProfile(ctx, models.CreateUserRequest{
		UserID:   "auth-abc123",
		Email:    "sana@example.com",
		Username: "sana",
		Age:      21,
		Goals:    []string{"stress_relief", "better_sleep"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := svc.Get(ctx, "auth-abc123")
	require.NoError(t, err)
	assert.Equal(t, "auth-abc123", got.ID)
	assert.Equal(t, "sana@example.com", got.Email)
	assert.Equal(t, "sana", got.Username)
	assert.Equal(t, 21, got.Age)
	assert.Equal(t, []string{"stress_relief", "better_sleep"}, got.Goals)
}

func TestUserGetMissing(t *testing.T) {
	svc := newUserService()

	_, err := svc.Get(context.Background(), "ghost")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
}

func TestUserUpdateWhitelistIgnoresEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, models.CreateUserRequest{
		UserID: "u1", Email: "sana@example.com", Username: "sana", Age: 21,
	})
	require.NoError(t, err)

	err = svc.Update(ctx, "u1", map[string]any{
		"username": "sana_v2",
		"email":    "hijack@example.com",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "sana_v2", got.Username)
	assert.Equal(t, "sana@example.com", got.Email)
}

func TestUserGoals(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, models.CreateUserRequest{
		UserID: "u1", Email: "sana@example.com", Username: "sana", Age: 21,
	})
	require.NoError(t, err)

	goals, err := svc.GetGoals(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, goals)

	require.NoError(t, svc.UpdateGoals(ctx, "u1", []string{"mental_clarity"}))

	goals, err = svc.GetGoals(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mental_clarity"}, goals)
}

func TestUserDeleteThenGet(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, models.CreateUserRequest{
		UserID: "u1", Email: "sana@example.com", Username: "sana", Age: 21,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1"))

	var notFound *NotFoundError
	_, err = svc.Get(ctx, "u1")
	assert.ErrorAs(t, err, &notFound)
}

// Deleting a user does not cascade: their mood entries stay behind.
func TestUserDeleteDoesNotCascade(t *testing.T) {
	shared := store.NewMemoryStore()
	users := NewUserService(shared)
	moods := NewMoodService(shared)
	ctx := context.Background()

	_, err := users.CreateProfile(ctx, models.CreateUserRequest{
		UserID: "u1", Email: "sana@example.com", Username: "sana", Age: 21,
	})
	require.NoError(t, err)

	entry, err := moods.Create(ctx, models.CreateMoodRequest{
		UserID: "u1", Mood: "Happy", Energy: "High", Date: "2025-01-03",
	})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, "u1"))

	still, err := moods.Get(ctx, "u1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Happy", still.Mood)
}
