package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sitepay/sitepay-backend-go/internal/config"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	advanceHandler AdvanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitepay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Patch("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})

				r.Route("/{employeeID}/advances", func(r chi.Router) {
					r.Get("/active", advanceHandler.GetActiveAdvance)
					r.Get("/history", advanceHandler.GetAdvanceHistory)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Route("/site", func(r chi.Router) {
					r.Post("/", payrollHandler.ProcessSitePayroll)
					r.Get("/", payrollHandler.ListSitePayrolls)
					r.Get("/{id}", payrollHandler.GetSitePayroll)
					r.Patch("/{id}", payrollHandler.UpdateSitePayroll)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Delete("/{id}", payrollHandler.DeleteSitePayroll)
					})
				})

				r.Route("/office", func(r chi.Router) {
					r.Post("/", payrollHandler.ProcessOfficePayroll)
					r.Get("/", payrollHandler.ListOfficePayrolls)
					r.Get("/{id}", payrollHandler.GetOfficePayroll)
					r.Patch("/{id}", payrollHandler.UpdateOfficePayroll)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Delete("/{id}", payrollHandler.DeleteOfficePayroll)
					})
				})
			})
		})
	})
	return r
}
