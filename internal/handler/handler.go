package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/service"
)

// Options carries the cross-cutting pieces of the router.
type Options struct {
	Logger zerolog.Logger
	// Metrics is optional; without it no /metrics route or request metrics are installed.
	Metrics *Metrics
}

// NewRouter builds a gin engine with middleware and every public route mounted.
func NewRouter(repo Pinger, people service.ResourceService[model.Person], planets service.ResourceService[model.Planet], opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET(MetricsPath, opts.Metrics.Handler())
	}
	Register(r, repo, people, planets)
	return r
}

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, people service.ResourceService[model.Person], planets service.ResourceService[model.Planet]) {
	h := NewHealthHandler(map[string]Pinger{"tables": repo})

	// Health probes
	r.GET(LivePath, h.Liveness)
	r.GET(ReadyPath, h.Readiness)

	RegisterDocs(r)

	if people != nil {
		NewResourceHandler(people).Register(r)
	}
	if planets != nil {
		NewResourceHandler(planets).Register(r)
	}
}
