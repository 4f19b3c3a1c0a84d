package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fintrack-go/internal/config"
	"fintrack-go/internal/transport/httpserver/handler"
	authmw "fintrack-go/internal/transport/httpserver/middleware"
	"fintrack-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	auth := authmw.NewTokenAuth(cfg.Auth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.Register)
		r.Post("/login", handlers.Login)
		r.Post("/logout", handlers.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/check", handlers.AuthCheck)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/wallet", handlers.GetWallet)
			r.Post("/wallet", handlers.CreateWallet)
			r.Put("/wallet", handlers.UpdateWallet)

			r.Get("/categories", handlers.ListCategories)
			r.Post("/categories", handlers.CreateCategory)
			r.Delete("/categories/{id}", handlers.DeleteCategory)

			r.Get("/budgets", handlers.ListBudgets)
			r.Post("/budgets", handlers.CreateBudget)
			r.Get("/budgets/{id}", handlers.ListBudgetsByUser)
			r.Put("/budgets/{id}", handlers.UpdateBudget)
			r.Delete("/budgets/{id}", handlers.DeleteBudget)

			r.Get("/transactions", handlers.ListTransactions)
			r.Post("/transactions", handlers.CreateTransaction)
			r.Get("/transactions/export", handlers.ExportTransactions)
			r.Get("/transactions/{id}", handlers.ListTransactionsByUser)
			r.Put("/transactions/{id}", handlers.UpdateTransaction)
			r.Delete("/transactions/{id}", handlers.DeleteTransaction)

			r.Get("/debts", handlers.ListDebts)
			r.Post("/debts", handlers.CreateDebt)
			r.Get("/debts/upcoming", handlers.UpcomingDebts)
			r.Put("/debts/{id}", handlers.UpdateDebt)

			r.Get("/saving-goals", handlers.ListGoals)
			r.Post("/saving-goals", handlers.CreateGoal)
			r.Get("/saving-goals/summary", handlers.GoalSummary)
			r.Get("/saving-goals/savings/progress", handlers.GoalProgress)
			r.Put("/saving-goals/{id}", handlers.UpdateGoal)
			r.Delete("/saving-goals/{id}", handlers.DeleteGoal)

			r.Get("/dashboard", handlers.GetDashboard)

			r.Put("/profile", handlers.UpdateProfile)
			r.Post("/profile/picture", handlers.UploadProfilePicture)
		})
	})

	return r
}
