package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/omada-tools/omada-mcp/pkg/api/handlers"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	inventory omada.Inventory
}

// NewRouter creates a new API router
func NewRouter(inventory omada.Inventory) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		inventory: inventory,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.inventory)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Sites
		sitesHandler := handlers.NewSitesHandler(r.inventory)
		devicesHandler := handlers.NewDevicesHandler(r.inventory)
		clientsHandler := handlers.NewClientsHandler(r.inventory)
		sites := v1.Group("/sites")
		{
			sites.GET("", sitesHandler.ListSites)

			// Per-site device inventory
			sites.GET("/:siteId/devices", devicesHandler.ListDevices)
			sites.GET("/:siteId/devices/:id", devicesHandler.GetDevice)

			// Per-site client inventory
			sites.GET("/:siteId/clients", clientsHandler.ListClients)
			sites.GET("/:siteId/clients/:id", clientsHandler.GetClient)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
