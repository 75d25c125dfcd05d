package api

import (
	"errors"
	"net/http"

	"rental-booking/internal/domain/order"
	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewCheckoutHandler(cmds commands.OrderCommands, q queries.OrderQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Turn the current cart into an order and clear the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Customer info and payment method"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	placed, err := h.cmds.PlaceOrder(c.Request.Context(), scope, req.ToSubmission())
	if placed != nil {
		resp := resdto.FromOrder(placed)
		if err != nil {
			_ = c.Error(err)
			resp.Warning = storageWarning
		}
		c.JSON(http.StatusCreated, resp)
		return
	}

	var verr *order.ValidationError
	switch {
	case errors.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Missing required fields", gin.H{"fields": verr.Fields})
	case errs.Is(err, order.ErrInvalidPaymentMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
	case errs.Is(err, errs.ErrStorageRead):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation storage unavailable", nil)
	case errs.Is(err, errs.ErrStorageWrite):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Order could not be saved", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// @Summary List orders
// @Description Orders placed from this browser, oldest first
// @Tags checkout
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(h.q.ListOrders(c.Request.Context(), scope)))
}
