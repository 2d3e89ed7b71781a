package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/deptsched/timetable-api/internal/middleware"
	"github.com/deptsched/timetable-api/internal/models"
	"github.com/deptsched/timetable-api/internal/service"
)

// Router groups every handler the API serves.
type Router struct {
	Auth      *AuthHandler
	Semesters *SemesterHandler
	Courses   *CourseHandler
	Timetable *TimetableHandler
	Generator *GeneratorHandler
	Exports   *ExportHandler
	Metrics   *MetricsHandler

	AuthService *service.AuthService
}

// Register mounts all routes on the engine under the given prefix.
// Published timetable reads are open to any authenticated user; everything
// that mutates state is restricted to the timetable incharge.
func (rt *Router) Register(r *gin.Engine, prefix string) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Health)
	r.GET("/metrics", rt.Metrics.Prometheus)

	api := r.Group(prefix)

	api.POST("/auth/login", rt.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(rt.AuthService))
	authed.GET("/auth/me", rt.Auth.Me)
	authed.GET("/timetable", rt.Timetable.Published)
	authed.GET("/timetable/time-slots", rt.Timetable.TimeSlots)
	authed.GET("/timetable/export/csv", rt.Exports.CSV)
	authed.GET("/timetable/export/pdf", rt.Exports.PDF)
	authed.GET("/semesters", rt.Semesters.List)
	authed.GET("/semesters/active", rt.Semesters.Active)
	authed.GET("/semesters/:id/classes", rt.Semesters.ListClasses)
	authed.GET("/courses", rt.Courses.List)

	incharge := authed.Group("")
	incharge.Use(middleware.RequireRoles(models.RoleIncharge))
	incharge.POST("/semesters", rt.Semesters.Create)
	incharge.PUT("/semesters/:id", rt.Semesters.Update)
	incharge.DELETE("/semesters/:id", rt.Semesters.Delete)
	incharge.POST("/semesters/:id/classes", rt.Semesters.CreateClass)
	incharge.DELETE("/classes/:id", rt.Semesters.DeleteClass)
	incharge.POST("/courses", rt.Courses.Create)
	incharge.PUT("/courses/:id", rt.Courses.Update)
	incharge.DELETE("/courses/:id", rt.Courses.Delete)
	incharge.POST("/courses/import", rt.Courses.Import)
	incharge.GET("/timetable/full", rt.Timetable.Full)
	incharge.PUT("/timetable/slots", rt.Timetable.UpsertSlot)
	incharge.DELETE("/timetable/slots/:id", rt.Timetable.DeleteSlot)
	incharge.POST("/timetable/publish", rt.Timetable.Publish)
	incharge.PUT("/timetable/time-slots", rt.Timetable.UpdateTimeSlots)
	incharge.POST("/timetable/generate", rt.Generator.Generate)
}
