package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/KingCastle/Javan/internal/domain/user"
	"github.com/KingCastle/Javan/internal/handler/api"
	"github.com/KingCastle/Javan/internal/handler/middleware"
	"github.com/KingCastle/Javan/internal/infra/metrics"
	"github.com/KingCastle/Javan/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Events   *api.EventHandler
	Cart     *api.CartHandler
	Bookings *api.BookingHandler
}

func NewHandlers(events *api.EventHandler, cart *api.CartHandler, bookings *api.BookingHandler) Handlers {
	return Handlers{Events: events, Cart: cart, Bookings: bookings}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(m.HTTPMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/events"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Events.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Events.Get},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Show},
			{Method: http.MethodPut, Path: "", Handler: h.Cart.Put},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/checkout", Handler: h.Bookings.Checkout},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Book},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
		})

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Bookings.ListMine},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Bookings.ListAll},
			{Method: http.MethodPost, Path: "/bookings/:id/refund", Handler: h.Bookings.Refund},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Bookings.Delete},
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
