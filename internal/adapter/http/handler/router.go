package handler

import (
	"banking-core/internal/adapter/http/middleware"
	redisStore "banking-core/internal/adapter/storage/redis"
	"banking-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	BoletoSvc      ports.BoletoService
	PayrollSvc     ports.PayrollService
	Journal        ports.ReconciliationJournal
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Mode           string // gin mode; empty = release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	payments := NewPaymentHandler(deps.PaymentSvc)
	v1.POST("/transfers", rl("transfers"), payments.Transfer)
	v1.POST("/internal-payments", rl("transfers"), payments.InternalPayment)
	v1.POST("/deposits", rl("deposits"), payments.Deposit)
	v1.POST("/withdrawals", rl("withdrawals"), payments.Withdraw)
	v1.GET("/payments", payments.List)
	v1.GET("/payments/:id", payments.Get)

	wallets := v1.Group("/wallets/:id")
	{
		wallets.GET("/payments", payments.ListByWallet)
		wallets.GET("/transactions", payments.Transactions)
	}

	boletoHandler := NewBoletoHandler(deps.BoletoSvc)
	boletos := v1.Group("/boletos")
	{
		boletos.POST("", rl("boletos"), boletoHandler.Emit)
		boletos.GET("", boletoHandler.List)
		boletos.GET("/:id", boletoHandler.Get)
		boletos.GET("/:id/remote", boletoHandler.Remote)
		boletos.POST("/:id/register", rl("boletos"), boletoHandler.Register)
		boletos.POST("/:id/lines", rl("boletos"), boletoHandler.RegenerateLines)
	}

	payroll := NewPayrollHandler(deps.PayrollSvc)
	employees := v1.Group("/employees/:id/salary")
	{
		employees.PUT("", rl("salaries"), payroll.UpdateSalary)
		employees.GET("", payroll.CurrentSalary)
		employees.GET("/history", payroll.SalaryHistory)
	}
	v1.GET("/wages", payroll.Wages)
	v1.POST("/payroll/runs", rl("payroll"), payroll.Run)

	if deps.Journal != nil {
		reconciliation := NewReconciliationHandler(deps.Journal)
		v1.GET("/reconciliation/orphans", reconciliation.Orphans)
	}

	return r
}
