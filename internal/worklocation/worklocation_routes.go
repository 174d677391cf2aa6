package worklocation

import (
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	locations := r.Group("/work-locations")
	locations.Use(middleware.AuthMiddleware())
	{
		locations.GET("", middleware.RBACAuthorize(rbacService, "work_location", "read"), h.GetAll)
		locations.GET("/:id", middleware.RBACAuthorize(rbacService, "work_location", "read"), h.GetById)
		locations.POST("", middleware.RBACAuthorize(rbacService, "work_location", "create"), h.Create)
		locations.PUT("/:id", middleware.RBACAuthorize(rbacService, "work_location", "update"), h.Update)
		locations.DELETE("/:id", middleware.RBACAuthorize(rbacService, "work_location", "delete"), h.Delete)
	}
}
