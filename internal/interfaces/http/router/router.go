package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by every HTTP handler; RegisterRoutes mounts
// the handler's routes on the versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router collects registrars and mounts them under a common base path.
type Router struct {
	engine     *gin.Engine
	basePath   string
	registrars []RouteRegistrar
}

// NewRouter creates a Router serving under /api/v1.
func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		engine:   engine,
		basePath: "/api/v1",
	}
}

// Register queues one or more registrars for Setup. Returns the router so
// registrations can be chained.
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts every registered handler on the base path group.
func (r *Router) Setup() {
	api := r.engine.Group(r.basePath)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}
