package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hometeam/chores-back/internal/models"
)

func (s *Store) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := s.db.WithContext(ctx).Order("id").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// CreateSchedules inserts one window per selected day, same start/end,
// in a single transaction so a failure never leaves a partial fan-out
// committed. With allowOverlap off, a new window touching an existing
// one for the same user and day rejects the whole batch.
func (s *Store) CreateSchedules(ctx context.Context, userID uint, start, end models.Clock, days []models.Weekday, allowOverlap bool) ([]uint, error) {
	var ids []uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d: %w", userID, ErrNotFound)
			}
			return fmt.Errorf("load user: %w", err)
		}

		for _, day := range days {
			if !allowOverlap {
				var overlapping int64
				err := tx.Model(&models.Schedule{}).
					Where("user_id = ? AND day = ? AND start_time <= ? AND end_time >= ?", userID, day, end, start).
					Count(&overlapping).Error
				if err != nil {
					return fmt.Errorf("check overlap: %w", err)
				}
				if overlapping > 0 {
					return fmt.Errorf("window overlaps an existing schedule on %s: %w", day, ErrValidation)
				}
			}

			schedule := models.Schedule{
				UserID:    userID,
				StartTime: start,
				EndTime:   end,
				Day:       day,
				Status:    models.StatusActive,
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return fmt.Errorf("create schedule: %w", err)
			}
			ids = append(ids, schedule.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SetScheduleStatus toggles a window between Active and Inactive.
func (s *Store) SetScheduleStatus(ctx context.Context, id uint, status models.ScheduleStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update schedule status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("schedule %d: %w", id, ErrNotFound)
	}
	return nil
}
