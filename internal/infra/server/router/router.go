// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health     *controller.HealthController
	Auth       *controller.AuthController
	User       *controller.UserController
	Expense    *controller.ExpenseController
	Income     *controller.IncomeController
	Investment *controller.InvestmentController
	Category   *controller.CategoryController
	CreditCard *controller.CreditCardController
	Threshold  *controller.ThresholdController
	Dashboard  *controller.DashboardController
}

// Options controls engine level behaviour.
type Options struct {
	Environment  string
	AllowOrigins []string
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// A nil loginRateLimiter disables login throttling.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(opts Options) *gin.Engine {
	switch opts.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.HandleMethodNotAllowed = true
	r.engine.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.engine.Use(gin.Logger())
	}
	r.engine.Use(requestid.New())
	r.engine.Use(cors.New(corsConfig(opts.AllowOrigins)))

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

const requestIDHeader = "X-Request-ID"

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		if r.loginRateLimiter != nil {
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
		} else {
			auth.POST("/login", c.Auth.Login)
		}
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", r.authMiddleware.Identify(), c.Auth.Logout)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	// Everything below requires a valid access token
	private := v1.Group("")
	private.Use(r.authMiddleware.Authenticate())

	me := private.Group("/me")
	{
		me.GET("", c.User.Me)
		me.PATCH("", c.User.UpdateSettings)
		me.DELETE("", c.User.DeleteAccount)
	}

	expenses := private.Group("/expenses")
	{
		expenses.GET("", c.Expense.List)
		expenses.POST("", c.Expense.Create)
		expenses.PUT("/:id", c.Expense.Update)
		expenses.DELETE("/:id", c.Expense.Delete)
	}

	recurring := private.Group("/recurring-expenses")
	{
		recurring.GET("", c.Expense.ListRecurring)
		recurring.POST("", c.Expense.CreateRecurring)
	}

	incomes := private.Group("/incomes")
	{
		incomes.GET("", c.Income.List)
		incomes.POST("", c.Income.Create)
		incomes.PUT("/:id", c.Income.Update)
		incomes.DELETE("/:id", c.Income.Delete)
	}

	investments := private.Group("/investments")
	{
		investments.GET("", c.Investment.List)
		investments.GET("/quotes", c.Investment.Quotes)
		investments.GET("/simulate", c.Investment.Simulate)
		investments.POST("", c.Investment.Create)
		investments.PUT("/:id", c.Investment.Update)
		investments.DELETE("/:id", c.Investment.Delete)
	}

	categories := private.Group("/categories")
	{
		categories.GET("", c.Category.List)
		categories.POST("", c.Category.Create)
		categories.PUT("/:id", c.Category.Update)
		categories.DELETE("/:id", c.Category.Delete)
	}

	cards := private.Group("/credit-cards")
	{
		cards.GET("", c.CreditCard.List)
		cards.POST("", c.CreditCard.Create)
		cards.DELETE("/:id", c.CreditCard.Delete)
	}

	thresholds := private.Group("/thresholds")
	{
		thresholds.GET("", c.Threshold.Get)
		thresholds.PUT("", c.Threshold.Replace)
		thresholds.POST("", c.Threshold.Replace)
	}
	private.GET("/alerts", c.Threshold.Alerts)

	dashboard := private.Group("/dashboard")
	{
		dashboard.GET("/summary", c.Dashboard.Summary)
		dashboard.GET("/annual", c.Dashboard.Annual)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
