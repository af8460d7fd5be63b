package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mvero/actiond/pkg/action/schema"
	"github.com/mvero/actiond/pkg/api/handlers"
	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/scheduler"
	"github.com/mvero/actiond/pkg/transport"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	store     db.ActionStore
	projectID int64
	link      *db.Link
	sender    transport.Sender
	sched     *scheduler.Scheduler
	validator *schema.Validator
}

// NewRouter creates a new API router serving the given project's actions.
func NewRouter(store db.ActionStore, projectID int64, link *db.Link, sender transport.Sender, sched *scheduler.Scheduler, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		store:     store,
		projectID: projectID,
		link:      link,
		sender:    sender,
		sched:     sched,
		validator: validator,
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
	healthHandler := handlers.NewHealthHandler(r.sender)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Actions
		actionsHandler := handlers.NewActionsHandler(r.store, r.projectID, r.sched)
		controlHandler := handlers.NewControlHandler(r.store, r.projectID, r.sched)
		transferHandler := handlers.NewTransferHandler(r.store, r.projectID, r.validator)
		actions := v1.Group("/actions")
		{
			actions.GET("", actionsHandler.ListActions)
			actions.POST("", actionsHandler.CreateAction)
			actions.POST("/import", transferHandler.Import)
			actions.GET("/:id", actionsHandler.GetAction)
			actions.PATCH("/:id", actionsHandler.UpdateAction)
			actions.DELETE("/:id", actionsHandler.DeleteAction)

			// Transmission control
			actions.POST("/:id/trigger", controlHandler.Trigger)
			actions.GET("/:id/payload", controlHandler.Payload)
			actions.GET("/:id/export", transferHandler.Export)
		}

		// Transmission event stream
		v1.GET("/events", controlHandler.Events)

		// Device link
		deviceHandler := handlers.NewDeviceHandler(r.sender, r.link)
		device := v1.Group("/device")
		{
			device.GET("", deviceHandler.GetDevice)
			device.GET("/ports", deviceHandler.ListPorts)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
