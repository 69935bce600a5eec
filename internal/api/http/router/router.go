package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/cogedon-server/internal/api/http/handler"
	"github.com/dtroode/cogedon-server/internal/api/http/middleware"
	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

const (
	EndpointRegister    = "/register"
	EndpointLogin       = "/login"
	EndpointReport      = "/reporte"
	EndpointFilter      = "/filtrados"
	EndpointCurrentUser = "/current-user"
	EndpointHeatmap     = "/heatmap"
	EndpointHealth      = "/healthz"
	EndpointMetrics     = "/metrics"
)

// Options holds router settings that are not services.
type Options struct {
	// StaticDir, when set, is served for every path no route matches.
	StaticDir string
	// MaxUploadBytes caps the body of report submissions.
	MaxUploadBytes int64
}

// Router represents the HTTP router of the report server.
// It manages route registration and middleware configuration.
type Router struct {
	authService     handler.AuthService
	reportService   handler.ReportService
	sessionResolver middleware.SessionResolver
	db              handler.Pinger
	contextManager  model.ContextManager
	logger          *logger.Logger
	opts            Options
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - authService: The registration and login service
//   - reportService: The report ingestion and query service
//   - sessionResolver: Resolves bearer tokens to sessions
//   - db: Database health probe
//   - contextManager: Stores resolved sessions in request contexts
//   - logger: The logger for request logging
//   - opts: Static directory and upload limits
//
// Returns a pointer to the newly created Router instance.
func New(
	authService handler.AuthService,
	reportService handler.ReportService,
	sessionResolver middleware.SessionResolver,
	db handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:     authService,
		reportService:   reportService,
		sessionResolver: sessionResolver,
		db:              db,
		contextManager:  contextManager,
		logger:          logger,
		opts:            opts,
	}
}

// Register registers all routes and middleware.
//
// Returns the configured gin engine.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionResolver, r.contextManager, r.logger)

	e := gin.New()
	e.Use(
		gin.Recovery(),
		logging.Handle,
		middleware.Metrics,
		cors.New(corsConfig()),
	)

	r.registerAuthRoutes(e, authenticate)
	r.registerReportRoutes(e, authenticate)
	r.registerOpsRoutes(e)

	if r.opts.StaticDir != "" {
		static := http.FileServer(http.Dir(r.opts.StaticDir))
		e.NoRoute(gin.WrapH(static))
	}

	return e
}

func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}
}

func (r *Router) registerAuthRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)

	e.POST(EndpointRegister, authHandler.Register)
	e.POST(EndpointLogin, authHandler.Login)
	e.GET(EndpointCurrentUser, authenticate.Handle, authHandler.CurrentUser)
}

func (r *Router) registerReportRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	reportHandler := handler.NewReport(r.reportService, r.contextManager, r.logger, r.opts.MaxUploadBytes)

	e.POST(EndpointReport, authenticate.Handle, reportHandler.Submit)
	e.POST(EndpointFilter, reportHandler.Filter)
	e.GET(EndpointHeatmap, reportHandler.Heatmap)
}

func (r *Router) registerOpsRoutes(e *gin.Engine) {
	healthHandler := handler.NewHealth(r.db, r.logger)

	e.GET(EndpointHealth, healthHandler.Check)
	e.GET(EndpointMetrics, gin.WrapH(promhttp.Handler()))
}
