package services

import (
	"context"
	"sort"
	"strings"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/store"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

const activityScope = "activities"

// ActivityService manages the global activity catalog plus per-user
// activity logs.
type ActivityService struct {
	store store.Store
}

func NewActivityService(s store.Store) *ActivityService {
	return &ActivityService{store: s}
}

func activityLogScope(userID string) string {
	return store.Join("user_activities", userID)
}

func (s *ActivityService) Create(ctx context.Context, req models.CreateActivityRequest) (*models.Activity, error) {
	activityID, err := s.store.Create(ctx, activityScope)
	if err != nil {
		return nil, &StoreError{Op: "create activity", Err: err}
	}

	activity := &models.Activity{
		ID:          activityID,
		Name:        req.Name,
		Type:        req.Type,
		Duration:    req.Duration,
		Description: req.Description,
	}

	path := store.Join(activityScope, activityID)
	if err := s.store.Set(ctx, path, activity.Doc()); err != nil {
		return nil, &StoreError{Op: "create activity", Err: err}
	}
	return activity, nil
}

func (s *ActivityService) Get(ctx context.Context, activityID string) (*models.Activity, error) {
	doc, err := s.store.Get(ctx, store.Join(activityScope, activityID))
	if err != nil {
		return nil, translate("get activity", "activity", err)
	}
	return models.ActivityFromDoc(activityID, doc), nil
}

func (s *ActivityService) GetAll(ctx context.Context) ([]*models.Activity, error) {
	docs, err := s.store.List(ctx, activityScope)
	if err != nil {
		return nil, &StoreError{Op: "list activities", Err: err}
	}

	activities := make([]*models.Activity, 0, len(docs))
	for id, doc := range docs {
		activities = append(activities, models.ActivityFromDoc(id, doc))
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})
	return activities, nil
}

// ByType returns catalog activities whose type matches, case-insensitive.
func (s *ActivityService) ByType(ctx context.Context, activityType string) ([]*models.Activity, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Activity, 0)
	for _, activity := range all {
		if strings.EqualFold(activity.Type, activityType) {
			matched = append(matched, activity)
		}
	}
	return matched, nil
}

// Recommended returns catalog activities whose type belongs to the
// mood's mapped set. goals is accepted but never consulted.
func (s *ActivityService) Recommended(ctx context.Context, mood string, goals []string) ([]*models.Activity, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	types := ActivityTypesForMood(models.Mood(mood))
	recommended := make([]*models.Activity, 0)
	for _, activity := range all {
		for _, t := range types {
			if activity.Type == string(t) {
				recommended = append(recommended, activity)
				break
			}
		}
	}
	return recommended, nil
}

// activityUpdateWhitelist lists the catalog fields a partial update may
// touch.
var activityUpdateWhitelist = []string{"name", "type", "duration", "description"}

func (s *ActivityService) Update(ctx context.Context, activityID string, fields map[string]any) error {
	update := store.Document{}
	for _, field := range activityUpdateWhitelist {
		if v, ok := fields[field]; ok {
			update[field] = v
		}
	}

	if err := s.store.Update(ctx, store.Join(activityScope, activityID), update); err != nil {
		return translate("update activity", "activity", err)
	}
	return nil
}

func (s *ActivityService) Delete(ctx context.Context, activityID string) error {
	if err := s.store.Delete(ctx, store.Join(activityScope, activityID)); err != nil {
		return translate("delete activity", "activity", err)
	}
	return nil
}

// Log records an activity a user performed.
func (s *ActivityService) Log(ctx context.Context, req models.LogActivityRequest) (*models.UserActivityLog, error) {
	logID, err := s.store.Create(ctx, activityLogScope(req.UserID))
	if err != nil {
		return nil, &StoreError{Op: "log activity", Err: err}
	}

	entry := &models.UserActivityLog{
		ID:           logID,
		UserID:       req.UserID,
		ActivityName: req.ActivityName,
		Duration:     req.Duration,
		Date:         req.Date,
		Timestamp:    utils.CurrentTimestamp(),
	}

	path := store.Join(activityLogScope(req.UserID), logID)
	if err := s.store.Set(ctx, path, entry.Doc()); err != nil {
		return nil, &StoreError{Op: "log activity", Err: err}
	}
	return entry, nil
}

// LogsForUser returns a user's logged activities, most recent first.
func (s *ActivityService) LogsForUser(ctx context.Context, userID string) ([]*models.UserActivityLog, error) {
	docs, err := s.store.List(ctx, activityLogScope(userID))
	if err != nil {
		return nil, &StoreError{Op: "list activity logs", Err: err}
	}

	logs := make([]*models.UserActivityLog, 0, len(docs))
	for id, doc := range docs {
		logs = append(logs, models.UserActivityLogFromDoc(userID, id, doc))
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp > logs[j].Timestamp
	})
	return logs, nil
}
