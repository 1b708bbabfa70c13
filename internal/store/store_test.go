package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hometeam/chores-back/internal/db"
	"github.com/hometeam/chores-back/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return New(gdb)
}

func mustCreateUser(t *testing.T, s *Store, name string, role models.UserRole) uint {
	t.Helper()
	id, err := s.CreateUser(context.Background(), name, role)
	require.NoError(t, err)
	return id
}

func TestCreateAndListUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	bobID := mustCreateUser(t, s, "Bob", models.RoleChild)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, aliceID, users[0].ID)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, models.RoleParents, users[0].Role)
	assert.Equal(t, bobID, users[1].ID)
}

func TestCreateSchedulesFanOut(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)

	days := []models.Weekday{models.Monday, models.Wednesday, models.Friday}
	ids, err := s.CreateSchedules(ctx, aliceID, "08:00:00", "12:00:00", days, true)
	require.NoError(t, err)
	require.Len(t, ids, 3, "one window per selected day")

	schedules, err := s.ListSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 3)
	for i, schedule := range schedules {
		assert.Equal(t, aliceID, schedule.UserID)
		assert.Equal(t, models.Clock("08:00:00"), schedule.StartTime)
		assert.Equal(t, models.Clock("12:00:00"), schedule.EndTime)
		assert.Equal(t, days[i], schedule.Day)
		assert.Equal(t, models.StatusActive, schedule.Status, "new windows default to Active")
	}
}

func TestCreateSchedulesUnknownUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateSchedules(ctx, 42, "08:00:00", "12:00:00", []models.Weekday{models.Monday}, true)
	require.ErrorIs(t, err, ErrNotFound)

	schedules, err := s.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Empty(t, schedules, "nothing may be committed for a stale user")
}

func TestCreateSchedulesOverlapPolicy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)

	_, err := s.CreateSchedules(ctx, aliceID, "08:00:00", "12:00:00", []models.Weekday{models.Monday}, false)
	require.NoError(t, err)

	// Touching window on the same day is rejected and the whole batch
	// rolls back, including the non-overlapping Tuesday insert.
	_, err = s.CreateSchedules(ctx, aliceID, "11:00:00", "13:00:00", []models.Weekday{models.Tuesday, models.Monday}, false)
	require.ErrorIs(t, err, ErrValidation)

	schedules, err := s.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Len(t, schedules, 1)

	// Same window is fine when overlaps are allowed.
	_, err = s.CreateSchedules(ctx, aliceID, "11:00:00", "13:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)
}

func TestSetScheduleStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	ids, err := s.CreateSchedules(ctx, aliceID, "08:00:00", "12:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)

	require.NoError(t, s.SetScheduleStatus(ctx, ids[0], models.StatusInactive))

	schedules, err := s.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, schedules[0].Status)

	err = s.SetScheduleStatus(ctx, 999, models.StatusActive)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAvailableUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	bobID := mustCreateUser(t, s, "Bob", models.RoleChild)

	_, err := s.CreateSchedules(ctx, aliceID, "09:00:00", "10:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)
	bobIDs, err := s.CreateSchedules(ctx, bobID, "08:00:00", "12:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)

	// Boundary times count as available on both ends.
	for _, at := range []models.Clock{"09:00:00", "09:30:00", "10:00:00"} {
		available, err := s.AvailableUsers(ctx, models.Monday, at)
		require.NoError(t, err)
		assert.Equal(t, []AvailableUser{
			{UserID: aliceID, UserName: "Alice"},
			{UserID: bobID, UserName: "Bob"},
		}, available, "at %s", at)
	}

	// Outside Alice's window only Bob remains.
	available, err := s.AvailableUsers(ctx, models.Monday, "11:00:00")
	require.NoError(t, err)
	assert.Equal(t, []AvailableUser{{UserID: bobID, UserName: "Bob"}}, available)

	// No windows on Tuesday at all: empty result, not an error.
	available, err = s.AvailableUsers(ctx, models.Tuesday, "09:00:00")
	require.NoError(t, err)
	assert.Empty(t, available)

	// An inactive window never matches, whatever the overlap.
	require.NoError(t, s.SetScheduleStatus(ctx, bobIDs[0], models.StatusInactive))
	available, err = s.AvailableUsers(ctx, models.Monday, "09:30:00")
	require.NoError(t, err)
	assert.Equal(t, []AvailableUser{{UserID: aliceID, UserName: "Alice"}}, available)
}

func TestAvailableUsersNoDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)

	// Two overlapping Monday windows both covering 09:30.
	_, err := s.CreateSchedules(ctx, aliceID, "09:00:00", "10:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)
	_, err = s.CreateSchedules(ctx, aliceID, "09:15:00", "11:00:00", []models.Weekday{models.Monday}, true)
	require.NoError(t, err)

	available, err := s.AvailableUsers(ctx, models.Monday, "09:30:00")
	require.NoError(t, err)
	assert.Equal(t, []AvailableUser{{UserID: aliceID, UserName: "Alice"}}, available,
		"a user with several matching windows appears once")
}

func TestCreateAssignmentsFanOut(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	bobID := mustCreateUser(t, s, "Bob", models.RoleChild)

	task := models.Task{Name: "Dishes", Time: "09:00:00", Priority: 2, DurationMinutes: 20}
	require.NoError(t, s.CreateTask(ctx, &task))

	ids, err := s.CreateAssignments(ctx, task.ID,
		[]uint{aliceID, bobID},
		[]models.Weekday{models.Monday, models.Thursday},
		true)
	require.NoError(t, err)
	assert.Len(t, ids, 4, "user × day fan-out")
}

func TestCreateAssignmentsMissingReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	task := models.Task{Name: "Dishes", Time: "09:00:00", Priority: 2, DurationMinutes: 20}
	require.NoError(t, s.CreateTask(ctx, &task))

	_, err := s.CreateAssignments(ctx, 999, []uint{aliceID}, []models.Weekday{models.Monday}, true)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateAssignments(ctx, task.ID, []uint{aliceID, 999}, []models.Weekday{models.Monday}, true)
	require.ErrorIs(t, err, ErrNotFound)

	rows, err := s.AssignmentsForWeek(ctx, []uint{aliceID})
	require.NoError(t, err)
	assert.Empty(t, rows, "failed fan-outs must not leave partial rows")
}

func TestCreateAssignmentsDuplicatePolicy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	task := models.Task{Name: "Dishes", Time: "09:00:00", Priority: 2, DurationMinutes: 20}
	require.NoError(t, s.CreateTask(ctx, &task))

	_, err := s.CreateAssignments(ctx, task.ID, []uint{aliceID}, []models.Weekday{models.Monday}, false)
	require.NoError(t, err)

	_, err = s.CreateAssignments(ctx, task.ID, []uint{aliceID}, []models.Weekday{models.Monday}, false)
	require.ErrorIs(t, err, ErrValidation)

	// Allowed when the household opts in.
	_, err = s.CreateAssignments(ctx, task.ID, []uint{aliceID}, []models.Weekday{models.Monday}, true)
	require.NoError(t, err)
}

func TestAssignmentsForWeek(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	aliceID := mustCreateUser(t, s, "Alice", models.RoleParents)
	bobID := mustCreateUser(t, s, "Bob", models.RoleChild)

	dishes := models.Task{Name: "Dishes", Time: "09:00:00", Priority: 2, DurationMinutes: 20}
	require.NoError(t, s.CreateTask(ctx, &dishes))
	laundry := models.Task{Name: "Laundry", Time: "18:00:00", Priority: 3, DurationMinutes: 45}
	require.NoError(t, s.CreateTask(ctx, &laundry))

	_, err := s.CreateAssignments(ctx, dishes.ID, []uint{aliceID}, []models.Weekday{models.Monday}, true)
	require.NoError(t, err)
	_, err = s.CreateAssignments(ctx, laundry.ID, []uint{bobID}, []models.Weekday{models.Monday}, true)
	require.NoError(t, err)

	// Only the requested users' assignments come back, in one fetch.
	rows, err := s.AssignmentsForWeek(ctx, []uint{aliceID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, WeekRow{
		UserName:        "Alice",
		TaskName:        "Dishes",
		TaskTime:        "09:00:00",
		DurationMinutes: 20,
		Day:             models.Monday,
	}, rows[0])

	rows, err = s.AssignmentsForWeek(ctx, []uint{aliceID, bobID})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.AssignmentsForWeek(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
