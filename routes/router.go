package routes

import (
	"fmt"

	"localnews/internal/auth"
	"localnews/internal/controllers"
	"localnews/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	News   *controllers.NewsController
	Auth   *controllers.AuthController
	Health *controllers.HealthController
	Tokens *auth.TokenService
}

type Options struct {
	// Docs mounts the swagger UI.
	Docs bool
	// TrustedProxies may set X-Forwarded-For; with none, the client IP used
	// for login throttling is the socket peer.
	TrustedProxies []string
}

// NewRouter builds the gin engine with request logging, panic recovery and
// every route mounted.
func NewRouter(log *zap.Logger, h Handlers, opts Options) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	RegisterHealthRoutes(router, h.Health)
	RegisterNewsRoutes(router, h.News, middleware.AuthMiddleware(h.Tokens))
	RegisterAuthRoutes(router, h.Auth)
	if opts.Docs {
		RegisterSwaggerRoutes(router)
	}
	return router, nil
}
