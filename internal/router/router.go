package router

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"menuboard/internal/auth"
	"menuboard/internal/menu"
	"menuboard/internal/middleware"
	"menuboard/internal/preferences"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	Menu        *menu.Service
	Auth        *auth.Service
	Tokens      *auth.TokenIssuer
	Preferences *preferences.Service
	Logger      *slog.Logger

	// CORSOrigins lists allowed browser origins. Empty or "*" allows all.
	CORSOrigins []string
}

func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Preferences == nil {
		opts.Preferences = preferences.NewService(false)
	}

	r := gin.New()
	// Match on the escaped path so item names may contain "/" (sent as %2F).
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		corsMiddleware(opts.CORSOrigins),
		middleware.ErrorHandler(logger),
	)
	if opts.Tokens != nil {
		r.Use(middleware.OptionalAuth(opts.Tokens, logger))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authHandler := auth.NewHandler(opts.Auth)
	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── MENU ─────────────────────────
	menuHandler := menu.NewHandler(opts.Menu, opts.Preferences)
	r.GET("/welcome", menuHandler.Welcome)

	menus := r.Group("/menu")
	{
		menus.GET("", menuHandler.List)
		menus.GET("/averages", menuHandler.Averages)
		menus.GET("/filter", menuHandler.Filter)
		menus.GET("/courses", menuHandler.Courses)

		menus.POST("/items", menuHandler.AddItem)
		menus.GET("/items/:index", menuHandler.GetItem)
		menus.PUT("/items/:index", menuHandler.ReplaceItem)
		menus.DELETE("/items/:name", menuHandler.RemoveItem)
	}

	// ───────────────────────── PREFERENCES ─────────────────────────
	prefsHandler := preferences.NewHandler(opts.Preferences)
	r.GET("/preferences", prefsHandler.Get)
	r.PUT("/preferences", prefsHandler.Update)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}

	return cors.New(config)
}
