package attendance

import (
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		if redisClient != nil {
			attendances.POST(
				"/check-in",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "attendance", "create"),
				h.CheckIn,
			)
			attendances.POST(
				"/check-out",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "attendance", "create"),
				h.CheckOut,
			)
		} else {
			attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckIn)
			attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckOut)
		}
	}
}
