package models

// UserRole says who in the household a user is.
type UserRole string

const (
	RoleParents UserRole = "Parents"
	RoleChild   UserRole = "Child"
	RoleHelp    UserRole = "Help"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleParents, RoleChild, RoleHelp:
		return true
	}
	return false
}

// ScheduleStatus marks whether a schedule window is honored by
// availability matching. Stored as text, not a raw boolean, so the
// state is readable at the API boundary.
type ScheduleStatus string

const (
	StatusActive   ScheduleStatus = "Active"
	StatusInactive ScheduleStatus = "Inactive"
)

func (s ScheduleStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type User struct {
	ID   uint     `gorm:"primaryKey" json:"id"`
	Name string   `gorm:"not null" json:"name"`
	Role UserRole `gorm:"not null" json:"role"`
}

// Schedule is one recurring weekly availability window. A user may hold
// any number of windows per day; windows never cross midnight.
type Schedule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	StartTime Clock          `gorm:"size:8;not null" json:"start_time"`
	EndTime   Clock          `gorm:"size:8;not null" json:"end_time"`
	Day       Weekday        `gorm:"not null;index" json:"day"`
	Status    ScheduleStatus `gorm:"not null;default:'Active'" json:"status"`
}

// Task end time is always derived from Time + DurationMinutes, never stored.
type Task struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Time            Clock  `gorm:"size:8;not null" json:"time"`
	Priority        int    `gorm:"not null" json:"priority"` // 1 = low, 5 = high
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`
}

// Assignment binds a task to a user on one weekday.
type Assignment struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	TaskID uint    `gorm:"not null;index" json:"task_id"`
	UserID uint    `gorm:"not null;index" json:"user_id"`
	Day    Weekday `gorm:"not null" json:"day"`
}
