package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addy-rall/mannkabackend/internal/config"
	httpx "github.com/addy-rall/mannkabackend/internal/http"
	"github.com/addy-rall/mannkabackend/internal/http/handlers"
	"github.com/addy-rall/mannkabackend/internal/http/middleware"
	"github.com/addy-rall/mannkabackend/internal/infrastructure/auth"
	"github.com/addy-rall/mannkabackend/internal/infrastructure/database"
	"github.com/addy-rall/mannkabackend/internal/infrastructure/repositories"
	"github.com/addy-rall/mannkabackend/internal/services"
)

// Run wires the service together and listens until the process exits.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	bookingRepo := repositories.NewBookingRepository(gdb)

	// Services
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc)
	bookingSvc := services.NewBookingService(bookingRepo)

	// Handlers and middleware
	authH := handlers.NewAuthHandlers(authSvc)
	bookingH := handlers.NewBookingHandlers(bookingSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc)

	r := httpx.BuildRouter(cfg, authH, bookingH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
