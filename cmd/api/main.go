package main

import (
	"fmt"
	"net/http"

	"github.com/sitepay/sitepay-backend-go/internal/config"
	appHTTP "github.com/sitepay/sitepay-backend-go/internal/handler/http"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/oauth"
	"github.com/sitepay/sitepay-backend-go/internal/repository/postgresql"
	advanceService "github.com/sitepay/sitepay-backend-go/internal/service/advance"
	serviceAuth "github.com/sitepay/sitepay-backend-go/internal/service/auth"
	employeeService "github.com/sitepay/sitepay-backend-go/internal/service/employee"
	payrollService "github.com/sitepay/sitepay-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	empService := employeeService.NewEmployeeService(employeeRepo)
	advService := advanceService.NewAdvanceService(db, advanceRepo)
	sitePayrollService := payrollService.NewSitePayrollService(db, payrollRepo, employeeRepo, advService)
	officePayrollService := payrollService.NewOfficePayrollService(db, payrollRepo, employeeRepo, advService)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	payrollHandler := appHTTP.NewPayrollHandler(sitePayrollService, officePayrollService)
	advanceHandler := appHTTP.NewAdvanceHandler(advService)

	router := appHTTP.NewRouter(cfg, JWTService, authHandler, employeeHandler, payrollHandler, advanceHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
