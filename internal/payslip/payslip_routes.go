package payslip

import (
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), h.GetAll)
		payslips.GET("/:period", middleware.RBACAuthorize(rbacService, "payslip", "read"), h.GetByPeriod)
	}
}
