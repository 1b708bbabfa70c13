package store

import (
	"context"
	"fmt"

	"github.com/hometeam/chores-back/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, name string, role models.UserRole) (uint, error) {
	user := models.User{Name: name, Role: role}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
