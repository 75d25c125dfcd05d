package api

import (
	"net/http"
	"strconv"

	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	q queries.CatalogQueries
}

func NewOfferHandler(q queries.CatalogQueries) *OfferHandler {
	return &OfferHandler{q: q}
}

// @Summary List offers
// @Description Filter, sort and paginate the rental catalog
// @Tags offers
// @Produce json
// @Param category query string false "Category (Car, Package or all)"
// @Param maxPrice query int false "Upper bound on the lowest price"
// @Param q query string false "Title search"
// @Param sort query string false "price_asc, price_desc or title"
// @Param page query int false "Page number, 1-based"
// @Param perPage query int false "Page size (max 50)"
// @Success 200 {object} resdto.OfferPageResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		if errs.Is(err, queries.ErrInvalidSort) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort option", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferPage(page))
}

// @Summary Special offers
// @Description Offers featured on the home page
// @Tags offers
// @Produce json
// @Param limit query int false "Maximum number of offers"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /offers/special [get]
func (h *OfferHandler) Special(c *gin.Context) {
	var query reqdto.SpecialOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffers(h.q.Special(c.Request.Context(), query.Limit)))
}

// @Summary Offer categories
// @Tags offers
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /offers/categories [get]
func (h *OfferHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.q.Categories(c.Request.Context())})
}

// @Summary Get offer
// @Description Offer detail with timing options
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	o, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(o))
}
