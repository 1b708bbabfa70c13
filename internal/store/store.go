package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel error kinds. Handlers classify failures with errors.Is: a
// validation or not-found failure blocks the operation before any write
// lands, anything else is a store failure surfaced generically.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Store is the data-access object every operation receives explicitly.
// All multi-row writes run inside a single transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
