package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hometeam/chores-back/docs"
	"github.com/hometeam/chores-back/internal/config"
	"github.com/hometeam/chores-back/internal/models"
	"github.com/hometeam/chores-back/internal/store"
)

// registerValidators adds the weekday and clock rules used by the
// request binding tags.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return models.Weekday(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := models.ParseClock(fl.Field().String())
		return err == nil
	})
}

// @title           Household Chores API
// @version         1.0
// @description     Admin backend for scheduling and assigning household chores.
// @host            localhost:8080
// @BasePath        /api/v1
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	registerValidators()

	r := gin.Default()
	h := NewHandler(st, cfg)

	r.GET("/health", func(c *gin.Context) {
		if err := st.Ping(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/users", h.ListUsers)
		v1.POST("/users", h.CreateUser)

		v1.GET("/tasks", h.ListTasks)
		v1.POST("/tasks", h.CreateTask)

		v1.GET("/schedules", h.ListSchedules)
		v1.POST("/schedules", h.CreateSchedules)
		v1.PATCH("/schedules/:id/status", h.UpdateScheduleStatus)

		v1.GET("/availability", h.FindAvailableUsers)

		v1.POST("/assignments", h.CreateAssignments)

		v1.GET("/week", h.WeeklySchedule)
		v1.GET("/week/export", h.ExportWeek)
	}

	return r
}
