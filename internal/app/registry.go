package app

import (
	"net/http"

	"hr-yayasan/internal/attendance"
	"hr-yayasan/internal/auditlog"
	"hr-yayasan/internal/employee"
	"hr-yayasan/internal/evaluation"
	"hr-yayasan/internal/leave"
	"hr-yayasan/internal/messaging/kafka"
	"hr-yayasan/internal/middleware"
	"hr-yayasan/internal/payslip"
	"hr-yayasan/internal/rbac"
	"hr-yayasan/internal/rbac/infra"
	"hr-yayasan/internal/worklocation"
	"hr-yayasan/internal/workschedule"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// BuildRouter merakit seluruh repository, service, dan handler lalu
// mendaftarkan rute di bawah /api/v1.
func BuildRouter(a *App) (*gin.Engine, error) {
	enforcer, err := infra.NewEnforcer(a.Config.CasbinModelPath)
	if err != nil {
		return nil, err
	}

	rbacRepo := rbac.NewRepository(a.DB)
	rbacService := rbac.NewService(rbacRepo, enforcer, a.Logger)

	auditRepo := auditlog.NewRepository(a.DB)
	outboxRepo := kafka.NewOutboxRepository(a.SQLDB)

	employeeRepo := employee.NewRepository(a.DB)
	employeeService := employee.NewService(a.SQLDB, employeeRepo, outboxRepo, a.Logger)
	employeeHandler := employee.NewHandler(employeeService, a.Logger)

	locationRepo := worklocation.NewRepository(a.DB)
	locationService := worklocation.NewService(a.SQLDB, locationRepo, a.Logger)
	locationHandler := worklocation.NewHandler(locationService)

	scheduleRepo := workschedule.NewRepository(a.DB)
	scheduleService := workschedule.NewService(a.SQLDB, scheduleRepo, a.Logger)
	scheduleHandler := workschedule.NewHandler(scheduleService)

	attendanceRepo := attendance.NewRepository(a.DB)
	attendanceService := attendance.NewService(a.SQLDB, attendance.Dependencies{
		Repo:         attendanceRepo,
		Employees:    employeeRepo,
		Schedules:    scheduleRepo,
		Locations:    locationRepo,
		Audit:        auditRepo,
		Outbox:       outboxRepo,
		Logger:       a.Logger,
		GraceMinutes: a.Config.AttendanceGraceMinutes,
	})
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, a.Redis, a.Logger)

	leaveRepo := leave.NewRepository(a.DB)
	leaveService := leave.NewService(a.SQLDB, leave.Dependencies{
		Repo:   leaveRepo,
		Audit:  auditRepo,
		Outbox: outboxRepo,
		Logger: a.Logger,
	})
	leaveHandler := leave.NewHandlerWithRedis(leaveService, a.Redis, a.Logger)

	evaluationRepo := evaluation.NewRepository(a.DB)
	evaluationService := evaluation.NewService(a.SQLDB, evaluationRepo, a.Logger)
	evaluationHandler := evaluation.NewHandler(evaluationService, a.Logger)

	payslipRepo := payslip.NewRepository(a.DB)
	payslipService := payslip.NewService(payslipRepo, a.Redis, a.Logger)
	payslipHandler := payslip.NewHandler(payslipService, a.Logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	employee.RegisterRoutes(v1, employeeHandler, rbacService)
	worklocation.RegisterRoutes(v1, locationHandler, rbacService)
	workschedule.RegisterRoutes(v1, scheduleHandler, rbacService)
	// Idempotency menempel per-route setelah AuthMiddleware supaya kuncinya
	// memuat user_id dari klaim, bukan string kosong.
	attendance.RegisterRoutes(v1, attendanceHandler, rbacService, a.Redis)
	leave.RegisterRoutes(v1, leaveHandler, rbacService, a.Redis)
	evaluation.RegisterRoutes(v1, evaluationHandler, rbacService)
	payslip.RegisterRoutes(v1, payslipHandler, rbacService)

	return router, nil
}
