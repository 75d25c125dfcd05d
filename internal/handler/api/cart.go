package api

import (
	"io"
	"net/http"
	"time"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/offer"
	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/notify"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	storageWarning   = "reservation could not be saved"
	defaultKeepAlive = 15 * time.Second
)

type CartHandler struct {
	carts     commands.CartManager
	catalog   queries.CatalogQueries
	keepAlive time.Duration
}

func NewCartHandler(carts commands.CartManager, catalog queries.CatalogQueries, cfg config.Config) *CartHandler {
	keepAlive := cfg.Stream.KeepAlive
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &CartHandler{
		carts:     carts,
		catalog:   catalog,
		keepAlive: keepAlive,
	}
}

// @Summary Get cart
// @Description Current reservation cart with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(h.carts.LoadCart(c.Request.Context(), scope)))
}

// @Summary Add to cart
// @Description Add an offer selection, replacing quantity and price of an identical selection
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Selection"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	o, err := h.catalog.Get(c.Request.Context(), req.OfferID)
	if err != nil {
		if errs.Is(err, errs.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	sel, err := commands.SelectionFor(o, req.Timing, req.GetQuantity())
	if err != nil {
		switch {
		case errs.Is(err, offer.ErrTimingRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "timing required", nil)
		case errs.Is(err, offer.ErrUnknownTiming):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown timing option", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Offer cannot be reserved", nil)
		}
		return
	}

	updated, err := h.carts.AddOrMergeItem(c.Request.Context(), scope, sel)
	respondCart(c, updated, err)
}

// @Summary Update quantity
// @Description Set the quantity of a cart line; values below one become one
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateQuantityRequest true "Line and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/items [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.carts.SetQuantity(c.Request.Context(), scope, req.Key(), int(req.Quantity))
	respondCart(c, updated, err)
}

// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param offerId query int true "Offer ID"
// @Param timing query string false "Timing label"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var query reqdto.RemoveItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	updated, err := h.carts.RemoveItem(c.Request.Context(), scope, query.Key())
	respondCart(c, updated, err)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 503 {object} httperr.Response
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	updated, err := h.carts.Clear(c.Request.Context(), scope)
	respondCart(c, updated, err)
}

// @Summary Cart item count
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CountResponse
// @Router /cart/count [get]
func (h *CartHandler) Count(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	n := h.carts.LoadCart(c.Request.Context(), scope).TotalItemCount()
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Cart item count stream
// @Description Server-Sent Events carrying the item count after every cart change
// @Tags cart
// @Produce text/event-stream
// @Success 200 {object} resdto.CountResponse
// @Router /cart/count/stream [get]
func (h *CartHandler) CountStream(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// The badge only needs the latest count, so a pending value is replaced.
	updates := make(chan int, 1)
	unsubscribe := h.carts.Subscribe(scope, func(ch notify.Change) {
		for {
			select {
			case updates <- ch.Count:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("count", resdto.CountResponse{Count: h.carts.LoadCart(ctx, scope).TotalItemCount()})
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-updates:
			c.SSEvent("count", resdto.CountResponse{Count: n})
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(c.Writer, ": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// respondCart answers every cart mutation. A failed write still shows the
// attempted cart, flagged with a warning.
func respondCart(c *gin.Context, updated *cart.Cart, err error) {
	if errs.Is(err, errs.ErrStorageRead) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation storage unavailable", nil)
		return
	}
	if err != nil && (updated == nil || !errs.Is(err, errs.ErrStorageWrite)) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := resdto.FromCart(updated)
	if err != nil {
		_ = c.Error(err)
		resp.Warning = storageWarning
	}
	c.JSON(http.StatusOK, resp)
}

func requireScope(c *gin.Context) (string, bool) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Storage scope unavailable", nil)
		return "", false
	}
	return scope, true
}
