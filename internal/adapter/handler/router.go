package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/candidate-screening/internal/adapter/dto/common"
	"github.com/johnquangdev/candidate-screening/pkg/config"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	candidateHandler *Candidate
	draftHandler     *Draft
	adminHandler     *Admin
	adminAuth        echo.MiddlewareFunc
	checks           map[string]HealthCheck
}

// NewRouter creates a new router with all handlers. adminAuth guards the
// admin group; checks back the health endpoint.
func NewRouter(
	cfg *config.Config,
	candidateHandler *Candidate,
	draftHandler *Draft,
	adminHandler *Admin,
	adminAuth echo.MiddlewareFunc,
	checks map[string]HealthCheck,
) *Router {
	return &Router{
		cfg:              cfg,
		candidateHandler: candidateHandler,
		draftHandler:     draftHandler,
		adminHandler:     adminHandler,
		adminAuth:        adminAuth,
		checks:           checks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupCandidateRoutes(v1)
	rt.setupDraftRoutes(v1)
	rt.setupAdminRoutes(v1)
}

// setupCandidateRoutes configures the public intake routes
func (rt *Router) setupCandidateRoutes(g *echo.Group) {
	if rt.candidateHandler == nil {
		g.POST("/candidates", rt.notImplemented)
		g.POST("/candidates/:id/audio", rt.notImplemented)
		g.POST("/transcriptions", rt.notImplemented)
		return
	}

	g.POST("/candidates", rt.candidateHandler.Submit)
	g.POST("/candidates/:id/audio", rt.candidateHandler.UploadAudio)
	g.POST("/transcriptions", rt.candidateHandler.Transcribe)
}

// setupDraftRoutes configures form draft routes
func (rt *Router) setupDraftRoutes(g *echo.Group) {
	draftGroup := g.Group("/drafts")

	if rt.draftHandler == nil {
		draftGroup.Any("*", rt.notImplemented)
		return
	}

	draftGroup.PUT("", rt.draftHandler.SaveDraft)
	draftGroup.GET("/:id", rt.draftHandler.GetDraft)
	draftGroup.PUT("/:id", rt.draftHandler.SaveDraft)
	draftGroup.DELETE("/:id", rt.draftHandler.DeleteDraft)
}

// setupAdminRoutes configures the review dashboard routes
func (rt *Router) setupAdminRoutes(g *echo.Group) {
	var mws []echo.MiddlewareFunc
	if rt.adminAuth != nil {
		mws = append(mws, rt.adminAuth)
	}
	adminGroup := g.Group("/admin", mws...)

	if rt.adminHandler == nil {
		adminGroup.Any("/*", rt.notImplemented)
		return
	}

	adminGroup.GET("/candidates", rt.adminHandler.ListCandidates)
	adminGroup.GET("/candidates/:id", rt.adminHandler.GetCandidate)
	adminGroup.DELETE("/candidates/:id", rt.adminHandler.DeleteCandidate)
	adminGroup.POST("/candidates/:id/analysis", rt.adminHandler.AnalyzeCandidate)
	adminGroup.POST("/candidates/:id/audio/sync", rt.adminHandler.SyncAudio)
	adminGroup.POST("/candidates/:id/audio/analysis", rt.adminHandler.AnalyzeAudio)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status. Any failing dependency turns the
// response into 503.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Failure      503  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	resp := common.HealthResponse{Status: "ok", Environment: env}

	if len(rt.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp.Checks = make(map[string]string, len(rt.checks))
		for name, check := range rt.checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}
