package services

import (
	"context"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// UserService manages user profiles. Profile ids come from the external
// auth provider; the service never generates them.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func userPath(userID string) string {
	return store.Join("users", userID)
}

// CreateProfile writes a new profile. Deleting a user later does not
// cascade to their moods or journals.
func (s *UserService) CreateProfile(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		ID:        req.UserID,
		Email:     req.Email,
		Username:  req.Username,
		Age:       req.Age,
		Goals:     req.Goals,
		CreatedAt: utils.CurrentTimestamp(),
	}

	if err := s.store.Set(ctx, userPath(user.ID), user.Doc()); err != nil {
		return nil, &StoreError{Op: "create user profile", Err: err}
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	doc, err := s.store.Get(ctx, userPath(userID))
	if err != nil {
		return nil, translate("get user", "user", err)
	}
	return models.UserFromDoc(userID, doc), nil
}

// userUpdateWhitelist lists the profile fields a partial update may
// touch; anything else in the input is silently ignored.
var userUpdateWhitelist = []string{"username", "age", "goals"}

func (s *UserService) Update(ctx context.Context, userID string, fields map[string]any) error {
	update := store.Document{}
	for _, field := range userUpdateWhitelist {
		if v, ok := fields[field]; ok {
			update[field] = v
		}
	}

	if err := s.store.Update(ctx, userPath(userID), update); err != nil {
		return translate("update user", "user", err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userPath(userID)); err != nil {
		return translate("delete user", "user", err)
	}
	return nil
}

func (s *UserService) GetGoals(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Goals == nil {
		return []string{}, nil
	}
	return user.Goals, nil
}

func (s *UserService) UpdateGoals(ctx context.Context, userID string, goals []string) error {
	if goals == nil {
		goals = []string{}
	}
	if err := s.store.Update(ctx, userPath(userID), store.Document{"goals": goals}); err != nil {
		return translate("update goals", "user", err)
	}
	return nil
}
