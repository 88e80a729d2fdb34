package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/micropost/content-api/internal/api/handler"
	"github.com/micropost/content-api/internal/api/metrics"
	"github.com/micropost/content-api/internal/api/middleware"
	"github.com/micropost/content-api/internal/core/ports"
	"github.com/micropost/content-api/internal/core/service"
	"github.com/micropost/content-api/internal/core/token"
	"github.com/micropost/content-api/internal/infrastructure/cache"
	redisdb "github.com/micropost/content-api/internal/infrastructure/db/redis"
	"github.com/micropost/content-api/internal/infrastructure/db/sqlite"
)

// Options carries the external collaborators and tunables the router needs.
type Options struct {
	DB            *sql.DB
	Redis         *goredis.Client // nil selects the in-memory cache backend
	JWTSecret     string
	TokenTTL      time.Duration
	CacheCapacity int
	CacheTTL      time.Duration
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("micropost"))

	// --- Dependencies ---
	codec := token.NewCodec(opts.JWTSecret, opts.TokenTTL)
	userRepo := sqlite.NewUserRepository(opts.DB)
	postRepo := sqlite.NewPostRepository(opts.DB)

	var responseCache ports.Cache
	if opts.Redis != nil {
		responseCache = redisdb.NewCache(opts.Redis, opts.Logger)
	} else {
		responseCache = cache.NewMemory(opts.CacheCapacity)
	}
	responseCache = metrics.Instrument(responseCache)

	authService := service.NewAuthService(userRepo, codec)
	postService := service.NewPostService(postRepo, responseCache, opts.CacheTTL, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authGuard := middleware.Auth(codec, userRepo)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Post routes (bearer token required) ---
	posts := e.Group("/posts", authGuard)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(opts.DB, opts.Redis).Readiness)

	return e
}
