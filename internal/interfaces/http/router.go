package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/analytics"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/auth"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/usecase"
	"github.com/sairajmatkardevX/stockpilot-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	DashboardUC  *analytics.DashboardUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	PreferenceUC *usecase.PreferenceUseCase
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; escritura solo ADMIN)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	// stats/all antes de :id para que el router no lo capture como id
	products.Get("/stats/all", productHandler.Stats)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id", RequireAdmin(), productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Delete)

	// Users (protegido; escritura solo ADMIN)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Get("/:id", RequireAdmin(), userHandler.GetByID)
	users.Post("/", RequireAdmin(), userHandler.Create)
	users.Put("/:id", RequireAdmin(), userHandler.Update)
	users.Delete("/:id", RequireAdmin(), userHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	protected.Get("/dashboard", dashboardHandler.GetMetrics)

	// Expenses (protegido)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Log)
	protected.Get("/expenses", expenseHandler.List)

	// Preferencias del caller (protegido)
	me := protected.Group("/me")
	preferenceHandler := NewPreferenceHandler(deps.PreferenceUC, deps.Log)
	me.Get("/preferences", preferenceHandler.Get)
	me.Put("/preferences", preferenceHandler.Update)
}
