package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"equipment-checkout/internal/handler/api"
	"equipment-checkout/internal/handler/middleware"
	"equipment-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Checkout *api.CheckoutHandler
	Waitlist *api.WaitlistHandler
	AuditLog *api.AuditLogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, checkoutHandler *api.CheckoutHandler, waitlistHandler *api.WaitlistHandler, auditLogHandler *api.AuditLogHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, Handlers{
		Checkout: checkoutHandler,
		Waitlist: waitlistHandler,
		AuditLog: auditLogHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/checkouts"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Checkout.Checkout},
			{Method: http.MethodGet, Path: "", Handler: h.Checkout.List},
			{Method: http.MethodGet, Path: "/:resource_id", Handler: h.Checkout.Get},
			{Method: http.MethodDelete, Path: "/:resource_id", Handler: h.Checkout.Return},
		})

		addRoutes(apiGroup.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Checkout.ListResources},
		})

		addRoutes(apiGroup.Group("/waitlist"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Join},
			{Method: http.MethodGet, Path: "", Handler: h.Waitlist.List},
			{Method: http.MethodDelete, Path: "/:user_id", Handler: h.Waitlist.Leave},
		})

		addRoutes(apiGroup.Group("/audit-logs"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.AuditLog.List},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
