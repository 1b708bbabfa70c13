package store

import (
	"context"
	"fmt"

	"github.com/hometeam/chores-back/internal/models"
)

// AvailableUser is one candidate for a task assignment.
type AvailableUser struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// AvailableUsers returns the distinct users holding at least one Active
// window on the given day that covers the given time. Boundaries are
// inclusive: a task at exactly the window's start or end still matches.
// An empty result is not an error; nobody being available is something
// the caller warns about, not a failure.
func (s *Store) AvailableUsers(ctx context.Context, day models.Weekday, at models.Clock) ([]AvailableUser, error) {
	available := []AvailableUser{}
	err := s.db.WithContext(ctx).
		Table("schedules").
		Select("DISTINCT schedules.user_id AS user_id, users.name AS user_name").
		Joins("JOIN users ON users.id = schedules.user_id").
		Where("schedules.day = ? AND schedules.start_time <= ? AND schedules.end_time >= ? AND schedules.status = ?",
			day, at, at, models.StatusActive).
		Order("user_id").
		Scan(&available).Error
	if err != nil {
		return nil, fmt.Errorf("find available users: %w", err)
	}
	return available, nil
}
