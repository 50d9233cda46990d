package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lamare/creator-studio/internal/api/handler"
	"github.com/lamare/creator-studio/internal/api/middleware"
	"github.com/lamare/creator-studio/internal/core/service"
)

// Services bundles the application services the router exposes.
type Services struct {
	Sessions  *service.SessionManager
	Navigator *service.Navigator
	Tasks     *service.TaskStore
	Workspace *service.Workspace
	Catalog   *service.CatalogService
	Studio    *service.StudioService
	Accounts  *service.AccountService
	Queue     handler.GenerationQueue
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lamare"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(svc.Navigator, svc.Sessions)
	navHandler := handler.NewNavigationHandler(svc.Navigator)
	taskHandler := handler.NewTaskHandler(svc.Tasks)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog, svc.Workspace, svc.Navigator)
	contextHandler := handler.NewContextHandler(svc.Workspace)
	studioHandler := handler.NewStudioHandler(svc.Studio, svc.Queue, svc.Workspace, svc.Tasks)
	analyticsHandler := handler.NewAnalyticsHandler()
	accountHandler := handler.NewAccountHandler(svc.Accounts, svc.Sessions)

	requireSession := middleware.RequireSession(svc.Sessions)
	requireVerified := middleware.RequireVerifiedIdentity(svc.Accounts)

	// --- Session lifecycle (public) ---
	e.GET("/v1/session", sessionHandler.Current)
	e.POST("/v1/session/login", sessionHandler.Login)
	e.POST("/v1/session/demo", sessionHandler.DemoLogin)
	e.POST("/v1/session/signup", sessionHandler.SignUp)
	e.POST("/v1/session/verify", sessionHandler.Verify)
	e.POST("/v1/session/back-to-signup", sessionHandler.BackToSignUp)
	e.POST("/v1/session/logout", sessionHandler.Logout)

	// --- Navigation (public; the guard is inside the Navigator) ---
	e.GET("/v1/view", navHandler.Current)
	e.POST("/v1/navigate", navHandler.Navigate)
	e.POST("/v1/navigate/login", navHandler.StartLogin)
	e.POST("/v1/navigate/signup", navHandler.StartSignUp)
	e.POST("/v1/navigate/forgot-password", navHandler.ForgotPassword)
	e.POST("/v1/navigate/back-to-login", navHandler.BackToLogin)

	// --- Authenticated surface ---
	auth := e.Group("/v1", requireSession)
	auth.GET("/tasks", taskHandler.List)
	auth.POST("/tasks", taskHandler.Create)
	auth.GET("/planner", taskHandler.OnDate)

	auth.GET("/products", catalogHandler.List)
	auth.GET("/products/:id", catalogHandler.Get)
	auth.POST("/products/:id/push", catalogHandler.Push)

	auth.GET("/workspace/product", contextHandler.SelectedProduct)
	auth.GET("/accounts", contextHandler.Accounts)
	auth.POST("/accounts/:platform/toggle", contextHandler.Toggle)

	auth.POST("/studio/generate", studioHandler.Generate)
	auth.GET("/studio/output/:kind", studioHandler.Output)
	auth.POST("/studio/schedule", studioHandler.Schedule)

	auth.GET("/analytics", analyticsHandler.Get)

	auth.POST("/account/verify", accountHandler.VerifyBiometric)
	auth.GET("/account/verify", accountHandler.VerificationStatus)
	auth.PUT("/account/profile", accountHandler.UpdateProfile, requireVerified)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
