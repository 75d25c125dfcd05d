//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-booking/internal/domain/offer"
	"rental-booking/internal/handler/api"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"
	"rental-booking/tests/common/builder"
	"rental-booking/tests/common/httptest"
	queriesmock "rental-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockQueries)

	s.router.GET("/offers", s.handler.List)
	s.router.GET("/offers/special", s.handler.Special)
	s.router.GET("/offers/categories", s.handler.Categories)
	s.router.GET("/offers/:id", s.handler.Get)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *OfferHandlerTestSuite) TestList() {
	catalog := builder.Catalog()

	s.Run("success: query parameters become the filter", func() {
		want := queries.Filter{Category: "Car", MaxPrice: 80000, Search: "suzuki", Sort: queries.SortPriceAsc, Page: 2, PerPage: 1}
		s.mockQueries.EXPECT().List(gomock.Any(), want).
			Return(queries.Page{Offers: catalog[2:3], Total: 2, Page: 2, PerPage: 1, TotalPages: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/offers?category=Car&maxPrice=80000&q=suzuki&sort=price_asc&page=2&perPage=1", nil)

		var got resdto.OfferPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(2, got.Total)
		s.Equal(2, got.TotalPages)
		s.Require().Len(got.Offers, 1)
		s.Equal("SUZUKI DZIRE", got.Offers[0].Title)
		s.Equal("75,000 CFA", got.Offers[0].PriceLabel)
		s.False(got.Offers[0].RequiresTiming)
	})

	s.Run("success: no parameters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.Filter{}).
			Return(queries.Page{Offers: catalog, Total: 4, Page: 1, PerPage: 9, TotalPages: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil)

		var got resdto.OfferPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.Offers, 4)
		s.True(got.Offers[0].RequiresTiming)
		s.Equal("10,000 CFA - 95,000 CFA", got.Offers[0].PriceLabel)
	})

	invalid := []struct {
		name  string
		query string
	}{
		{name: "unknown sort", query: "?sort=cheapest"},
		{name: "perPage above maximum", query: "?perPage=51"},
		{name: "negative page", query: "?page=-1"},
		{name: "page above maximum", query: "?page=10001"},
		{name: "non-numeric maxPrice", query: "?maxPrice=cheap"},
	}
	for _, tc := range invalid {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers"+tc.query, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		})
	}

	s.Run("error: sort rejected by the catalog", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(queries.Page{}, queries.ErrInvalidSort).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?sort=title", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort option")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfferHandlerTestSuite) TestGet() {
	greenride := builder.NewOfferBuilder().Build()

	s.Run("success: timing options are exposed", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), 5).Return(&greenride, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/5", nil)

		var got resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Greenride", got.Title)
		s.True(got.RequiresTiming)
		s.Equal([]offer.TimingOption{
			{Label: "On time", Price: 10000},
			{Label: "Half Day", Price: 95000},
		}, got.TimingOptions)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), 99).Return(nil, errs.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})

	for _, id := range []string{"abc", "0", "-3"} {
		s.Run("invalid id "+id, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		})
	}
}

// ================================================================================
// TestSpecialAndCategories
// ================================================================================

func (s *OfferHandlerTestSuite) TestSpecial() {
	catalog := builder.Catalog()

	s.Run("success: limit is forwarded", func() {
		s.mockQueries.EXPECT().Special(gomock.Any(), 2).Return([]offer.Offer{catalog[0], catalog[2]}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/special?limit=2", nil)

		var got []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal(5, got[0].ID)
		s.Equal(3, got[1].ID)
	})

	s.Run("success: nothing special yields an empty array", func() {
		s.mockQueries.EXPECT().Special(gomock.Any(), 0).Return([]offer.Offer{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/special", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("validation: limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/special?limit=500", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *OfferHandlerTestSuite) TestCategories() {
	s.mockQueries.EXPECT().Categories(gomock.Any()).Return([]string{"Car", "Package"}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/categories", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"categories":["Car","Package"]}`, rec.Body.String())
}
