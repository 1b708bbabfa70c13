package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hometeam/chores-back/internal/config"
	"github.com/hometeam/chores-back/internal/excel"
	"github.com/hometeam/chores-back/internal/models"
	"github.com/hometeam/chores-back/internal/schedule"
	"github.com/hometeam/chores-back/internal/store"
)

// Handler carries the data-access object and policy config into every
// request instead of reaching for package globals.
type Handler struct {
	store *store.Store
	cfg   *config.Config
}

func NewHandler(st *store.Store, cfg *config.Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// respondError maps the store's error kinds onto HTTP statuses. Store
// failures are logged server-side and surfaced generically; nothing here
// is ever fatal to the process.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Println("❌", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

// CreateUserRequest is the request body for adding a user
type CreateUserRequest struct {
	Name string          `json:"name" binding:"required"`
	Role models.UserRole `json:"role" binding:"required,oneof=Parents Child Help"`
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns every household member
// @Tags         users
// @Produce      json
// @Success      200 {array}  models.User
// @Failure      500 {object} map[string]string
// @Router       /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary      Add a user
// @Description  Creates a household member with a role of Parents, Child or Help
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  CreateUserRequest  true  "User info"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.store.CreateUser(c.Request.Context(), req.Name, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// CreateTaskRequest is the request body for adding a task
type CreateTaskRequest struct {
	Name            string `json:"name" binding:"required"`
	Time            string `json:"time" binding:"required,clock"`
	Priority        int    `json:"priority" binding:"required,min=1,max=5"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

// ListTasks godoc
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200 {array}  models.Task
// @Failure      500 {object} map[string]string
// @Router       /tasks [get]
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.store.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary      Add a task
// @Description  Creates a task with a start time, priority 1-5 and duration in minutes
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  CreateTaskRequest  true  "Task info"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /tasks [post]
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	taskTime, err := models.ParseClock(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		Name:            req.Name,
		Time:            taskTime,
		Priority:        req.Priority,
		DurationMinutes: req.DurationMinutes,
	}
	if err := h.store.CreateTask(c.Request.Context(), &task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": task.ID})
}

// CreateSchedulesRequest is the request body for adding schedule windows
type CreateSchedulesRequest struct {
	UserID    uint             `json:"user_id" binding:"required"`
	StartTime string           `json:"start_time" binding:"required,clock"`
	EndTime   string           `json:"end_time" binding:"required,clock"`
	Days      []models.Weekday `json:"days" binding:"required,min=1,dive,weekday"`
}

// ListSchedules godoc
// @Summary      List schedule windows
// @Tags         schedules
// @Produce      json
// @Success      200 {array}  models.Schedule
// @Failure      500 {object} map[string]string
// @Router       /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.store.ListSchedules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// CreateSchedules godoc
// @Summary      Add schedule windows
// @Description  Creates one availability window per selected day, same start and end, atomically
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  CreateSchedulesRequest  true  "Schedule info"
// @Success      201 {object} map[string][]uint
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules [post]
func (h *Handler) CreateSchedules(c *gin.Context) {
	var req CreateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Windows are same-day only; crossing midnight is not supported.
	if end < start {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must not be before start_time"})
		return
	}

	ids, err := h.store.CreateSchedules(c.Request.Context(), req.UserID, start, end, req.Days, h.cfg.AllowOverlappingSchedules)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

// UpdateScheduleStatusRequest is the request body for toggling a window
type UpdateScheduleStatusRequest struct {
	Status models.ScheduleStatus `json:"status" binding:"required,oneof=Active Inactive"`
}

// UpdateScheduleStatus godoc
// @Summary      Toggle a schedule window
// @Description  Sets a window Active or Inactive; inactive windows are ignored by availability matching
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "Schedule ID"
// @Param        body  body  UpdateScheduleStatusRequest  true  "New status"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id}/status [patch]
func (h *Handler) UpdateScheduleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule id"})
		return
	}

	var req UpdateScheduleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.store.SetScheduleStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule status updated"})
}

// FindAvailableUsers godoc
// @Summary      Find available users
// @Description  Returns users with an active window covering the given time on the given day; boundaries count as available. Pass either a time of day or a task_id to use that task's start time.
// @Tags         availability
// @Produce      json
// @Param        day      query  string  true   "Weekday, Monday..Sunday"
// @Param        time     query  string  false  "Time of day, HH:MM or HH:MM:SS"
// @Param        task_id  query  int     false  "Task whose start time to match"
// @Success      200 {array}  store.AvailableUser
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /availability [get]
func (h *Handler) FindAvailableUsers(c *gin.Context) {
	day := models.Weekday(c.Query("day"))
	if !day.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing day"})
		return
	}

	var at models.Clock
	if raw := c.Query("task_id"); raw != "" {
		taskID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task_id"})
			return
		}
		task, err := h.store.GetTask(c.Request.Context(), uint(taskID))
		if err != nil {
			respondError(c, err)
			return
		}
		at = task.Time
	} else {
		var err error
		at, err = models.ParseClock(c.Query("time"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing time"})
			return
		}
	}

	available, err := h.store.AvailableUsers(c.Request.Context(), day, at)
	if err != nil {
		respondError(c, err)
		return
	}
	// Empty means nobody is free then; the client shows a warning.
	c.JSON(http.StatusOK, available)
}

// CreateAssignmentsRequest is the request body for assigning a task
type CreateAssignmentsRequest struct {
	TaskID  uint             `json:"task_id" binding:"required"`
	UserIDs []uint           `json:"user_ids" binding:"required,min=1"`
	Days    []models.Weekday `json:"days" binding:"required,min=1,dive,weekday"`
}

// CreateAssignments godoc
// @Summary      Assign a task
// @Description  Assigns one task to every selected user on every selected day, atomically
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  CreateAssignmentsRequest  true  "Assignment info"
// @Success      201 {object} map[string][]uint
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /assignments [post]
func (h *Handler) CreateAssignments(c *gin.Context) {
	var req CreateAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ids, err := h.store.CreateAssignments(c.Request.Context(), req.TaskID, req.UserIDs, req.Days, h.cfg.AllowDuplicateAssignments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

func parseUserIDs(c *gin.Context) ([]uint, bool) {
	var userIDs []uint
	for _, raw := range c.QueryArray("user_id") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id " + raw})
			return nil, false
		}
		userIDs = append(userIDs, uint(id))
	}
	return userIDs, true
}

// WeeklySchedule godoc
// @Summary      7-day calendar
// @Description  Returns the selected users' assignments grouped Monday through Sunday; every day is present, empty days as empty lists
// @Tags         week
// @Produce      json
// @Param        user_id  query  []int  false  "User IDs, repeatable"
// @Success      200 {object} schedule.Week
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /week [get]
func (h *Handler) WeeklySchedule(c *gin.Context) {
	userIDs, ok := parseUserIDs(c)
	if !ok {
		return
	}

	rows, err := h.store.AssignmentsForWeek(c.Request.Context(), userIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule.BuildWeek(rows))
}

// ExportWeek godoc
// @Summary      Export the 7-day calendar
// @Description  Renders the weekly calendar for the selected users as an .xlsx download
// @Tags         week
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        user_id  query  []int  false  "User IDs, repeatable"
// @Success      200 {file}   binary
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /week/export [get]
func (h *Handler) ExportWeek(c *gin.Context) {
	userIDs, ok := parseUserIDs(c)
	if !ok {
		return
	}

	rows, err := h.store.AssignmentsForWeek(c.Request.Context(), userIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := excel.WriteWeek(schedule.BuildWeek(rows))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="week.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
