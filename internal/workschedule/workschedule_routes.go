package workschedule

import (
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	schedules := r.Group("/work-schedules")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", middleware.RBACAuthorize(rbacService, "work_schedule", "read"), h.GetAll)
		schedules.PUT("", middleware.RBACAuthorize(rbacService, "work_schedule", "update"), h.Upsert)
		schedules.DELETE("/:id", middleware.RBACAuthorize(rbacService, "work_schedule", "delete"), h.Delete)
	}
}
