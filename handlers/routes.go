package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/config"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/pkg/middleware"
)

// Deps are the services the REST routes need. Denylist and Avatars are optional.
type Deps struct {
	Config   *config.Config
	Stores   *store.Set
	Verifier middleware.Verifier
	Denylist *session.RedisDenylist
	Avatars  AvatarStore
}

// RegisterRoutes mounts the REST contract on r. Everything except login,
// register, workshops and the docs requires a bearer token.
func RegisterRoutes(r *gin.Engine, d Deps) {
	var deny middleware.Denylist
	if d.Denylist != nil {
		deny = d.Denylist
	}
	auth := middleware.AuthMiddleware(d.Verifier, deny)

	NewAuthHandler(d.Config, d.Stores.Users, d.Denylist).Register(r, auth)
	RegisterWorkshopRoutes(r, d.Stores.Workshops)
	RegisterSwagger(r)

	protected := r.Group("/", auth)
	NewResourceHandler(d.Stores).Register(protected)
	NewUserHandler(d.Stores, d.Denylist, d.Avatars).Register(protected)
}
