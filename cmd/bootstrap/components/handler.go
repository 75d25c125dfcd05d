package components

import (
	"rental-booking/internal/handler"
	"rental-booking/internal/handler/api"
	"rental-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewOfferHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		middleware.NewScopeMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Health   *api.HealthHandler
	Offer    *api.OfferHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:   p.Health,
		Offer:    p.Offer,
		Cart:     p.Cart,
		Checkout: p.Checkout,
	}
}
