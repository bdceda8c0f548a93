package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/addy-rall/mannkabackend/internal/config"
	"github.com/addy-rall/mannkabackend/internal/http/handlers"
	"github.com/addy-rall/mannkabackend/internal/http/middleware"
)

// BuildRouter wires the route table. Registration, login and the booking
// pair are public; the profile endpoints sit behind the bearer middleware.
func BuildRouter(cfg *config.Config, ah *handlers.AuthHandlers, bh *handlers.BookingHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	profile := r.Group("/api/auth").Use(jwtmw.WithJWT())
	profile.GET("/profile", ah.Profile)
	profile.PUT("/profile", ah.UpdateProfile)
	profile.DELETE("/profile", ah.DeleteAccount)

	bookings := r.Group("/api/bookings")
	bookings.POST("", bh.Create)
	bookings.GET("", bh.List)

	return r
}
