// Package web wires the HTTP surface: middleware chain, routes and the
// HTML handlers behind them.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/investa-app/webclient/internal/session"
	"github.com/investa-app/webclient/internal/web/handler"
	"github.com/investa-app/webclient/internal/web/middleware"
	"github.com/investa-app/webclient/pkg/logger"
)

// Config holds router configuration
type Config struct {
	Logger           *logger.Logger
	AllowedOrigins   []string
	Sessions         session.Store
	AuthHandler      *handler.AuthHandler
	WalletHandler    *handler.WalletHandler
	CompanyHandler   *handler.CompanyHandler
	InvestHandler    *handler.InvestHandler
	PortfolioHandler *handler.PortfolioHandler
	ProfileHandler   *handler.ProfileHandler
}

// NewRouter creates the HTTP router
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RateLimit()) // Rate limiting: 100 req/s with burst of 20
	r.Use(middleware.Session(cfg.Sessions))

	// Health check endpoint (no authentication required)
	r.Get("/health", handler.GetHealth)

	// Landing: straight to the wallets when signed in, login otherwise
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.TokenFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard/wallets", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	// Public pages
	r.Get("/login", cfg.AuthHandler.LoginPage)
	r.Post("/login", cfg.AuthHandler.Login)
	r.Get("/register", cfg.AuthHandler.RegisterPage)
	r.Post("/register", cfg.AuthHandler.Register)

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/logout", cfg.AuthHandler.Logout)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", cfg.PortfolioHandler.Dashboard)
			r.Get("/portfolio", cfg.PortfolioHandler.Portfolio)

			r.Get("/wallets", cfg.WalletHandler.List)
			r.Post("/wallets", cfg.WalletHandler.Create)
			r.Get("/wallets/{id}", cfg.WalletHandler.Show)
			r.Post("/wallets/{id}/delete", cfg.WalletHandler.Delete)

			r.Get("/companies", cfg.CompanyHandler.List)
			r.Get("/company/{id}", cfg.CompanyHandler.Show)
			r.Get("/company/{id}/invest", cfg.InvestHandler.Form)
			r.Post("/company/{id}/invest", cfg.InvestHandler.Submit)

			r.Get("/profile", cfg.ProfileHandler.Show)
			r.Post("/profile", cfg.ProfileHandler.Update)
			r.Post("/profile/picture", cfg.ProfileHandler.UploadPicture)
			r.Post("/profile/password", cfg.ProfileHandler.ChangePassword)
			r.Post("/profile/delete", cfg.ProfileHandler.Delete)
		})
	})

	return r
}
