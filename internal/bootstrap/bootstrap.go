package bootstrap

import (
	"io"
	"log/slog"

	"github.com/fussballmanager/go-api-server/internal/config"
	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/fussballmanager/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg      *config.Config
	observer middleware.RequestObserver
}

// NewBootstrap creates a new bootstrap instance; observer may be nil to skip request metrics
func NewBootstrap(cfg *config.Config, observer middleware.RequestObserver) *Bootstrap {
	return &Bootstrap{
		cfg:      cfg,
		observer: observer,
	}
}

// SetupEngine creates a gin engine with the common middleware chain
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout))
	engine.Use(middleware.LoggerMiddleware())
	if b.observer != nil {
		engine.Use(middleware.Metrics(b.observer))
	}

	return engine
}

// recoveryHandler turns a panic into the standard 500 body
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
}
