package handler

import (
	"net/http"

	"rental-booking/internal/handler/api"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Health   *api.HealthHandler
	Offer    *api.OfferHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, scopeMiddleware *middleware.ScopeMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, scopeMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, scopeMiddleware *middleware.ScopeMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
				{Method: http.MethodGet, Path: "/special", Handler: h.Offer.Special},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Offer.Categories},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.Get},
			})
		}

		scoped := apiGroup.Group("")
		scoped.Use(scopeMiddleware.ResolveScope())
		{
			addRoutes(scoped, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/cart/items", Handler: h.Cart.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/cart/items", Handler: h.Cart.RemoveItem},
				{Method: http.MethodGet, Path: "/cart/count", Handler: h.Cart.Count},
				{Method: http.MethodGet, Path: "/cart/count/stream", Handler: h.Cart.CountStream},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Checkout.ListOrders},
			})
		}
	}
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
