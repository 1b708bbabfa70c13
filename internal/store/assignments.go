package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hometeam/chores-back/internal/models"
)

// CreateAssignments binds one task to every (user × day) pair in a
// single transaction. The task and all users must exist before any row
// is written. With allowDuplicates off, a pair already assigned (or
// repeated within the request) rejects the whole batch.
func (s *Store) CreateAssignments(ctx context.Context, taskID uint, userIDs []uint, days []models.Weekday, allowDuplicates bool) ([]uint, error) {
	var ids []uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
			}
			return fmt.Errorf("load task: %w", err)
		}

		var found int64
		if err := tx.Model(&models.User{}).Where("id IN ?", userIDs).Count(&found).Error; err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		if found != int64(len(userIDs)) {
			return fmt.Errorf("one or more users do not exist: %w", ErrNotFound)
		}

		for _, userID := range userIDs {
			for _, day := range days {
				if !allowDuplicates {
					var existing int64
					err := tx.Model(&models.Assignment{}).
						Where("task_id = ? AND user_id = ? AND day = ?", taskID, userID, day).
						Count(&existing).Error
					if err != nil {
						return fmt.Errorf("check duplicate: %w", err)
					}
					if existing > 0 {
						return fmt.Errorf("task already assigned to user %d on %s: %w", userID, day, ErrValidation)
					}
				}

				assignment := models.Assignment{TaskID: taskID, UserID: userID, Day: day}
				if err := tx.Create(&assignment).Error; err != nil {
					return fmt.Errorf("create assignment: %w", err)
				}
				ids = append(ids, assignment.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// WeekRow is one assignment joined with its user and task, the raw
// material for the 7-day calendar.
type WeekRow struct {
	UserName        string         `json:"user_name"`
	TaskName        string         `json:"task_name"`
	TaskTime        models.Clock   `json:"task_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Day             models.Weekday `json:"day"`
}

// AssignmentsForWeek fetches every assignment for the given users across
// all seven days in one batched join, never one query per user.
func (s *Store) AssignmentsForWeek(ctx context.Context, userIDs []uint) ([]WeekRow, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []WeekRow
	err := s.db.WithContext(ctx).
		Table("assignments").
		Select("users.name AS user_name, tasks.name AS task_name, tasks.time AS task_time, tasks.duration_minutes AS duration_minutes, assignments.day AS day").
		Joins("JOIN users ON users.id = assignments.user_id").
		Joins("JOIN tasks ON tasks.id = assignments.task_id").
		Where("assignments.user_id IN ?", userIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch week assignments: %w", err)
	}
	return rows, nil
}
