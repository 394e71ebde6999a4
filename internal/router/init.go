package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/storefront-api/internal/container"
	handlers "github.com/oksasatya/storefront-api/internal/interface/http"
	"github.com/oksasatya/storefront-api/internal/interface/middleware"
	"github.com/oksasatya/storefront-api/internal/router/modules"
)

// InitModules builds handlers from the container and registers every module.
func InitModules(r *Registry, c *container.Container) {
	r.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(c.AuthService(), c.Logger), c.JWT, c.Redis),
		modules.NewProductModule(handlers.NewProductHandler(c.ProductService())),
		modules.NewOrderModule(handlers.NewOrderHandler(c.OrderService())),
		modules.NewHealthModule(handlers.NewHealthHandler(c.Store)),
		modules.NewWebModule(),
	)
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}

// New returns the gin engine with global middleware and all modules mounted.
func New(c *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())

	corsCfg := cors.Config{
		AllowOrigins:     c.Config.CORSOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AuthTokenHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.AuthTokenHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))
	if c.Config.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r, "")
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
