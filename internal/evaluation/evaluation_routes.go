package evaluation

import (
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	evaluations := r.Group("/evaluations")
	evaluations.Use(middleware.AuthMiddleware())
	{
		evaluations.POST("", middleware.RBACAuthorize(rbacService, "evaluation", "create"), h.Submit)
		evaluations.GET("/:employeeID", middleware.RBACAuthorize(rbacService, "evaluation", "read"), h.GetForEmployee)
	}
}
