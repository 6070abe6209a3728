//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	domproduct "auction-market/internal/domain/product"
	"auction-market/internal/handler/api"
	resdto "auction-market/internal/handler/dto/response"
	"auction-market/internal/usecase/commands"
	"auction-market/internal/usecase/queries"
	"auction-market/tests/common/builder"
	"auction-market/tests/common/httptest"
	"auction-market/tests/common/testutil"
	commandsmock "auction-market/tests/mock/commands"
	queriesmock "auction-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSellerID = "seller-1"

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockAuction  *commandsmock.MockAuctionCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
	auction      *api.AuctionHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockAuction = commandsmock.NewMockAuctionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)
	s.auction = api.NewAuctionHandler(s.mockAuction)

	// Stand-in for the JWT middleware
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", testSellerID)
		c.Next()
	}

	s.router.POST("/products", authMiddleware, s.handler.Create)
	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/:id", s.handler.Get)
	s.router.PUT("/products/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/products/:id", authMiddleware, s.handler.Delete)
	s.router.POST("/products/:id/publish", authMiddleware, s.handler.Publish)
	s.router.POST("/products/:id/withdraw", authMiddleware, s.handler.Withdraw)
	s.router.POST("/products/:id/auction", authMiddleware, s.auction.Start)
	s.router.POST("/products/:id/bids", authMiddleware, s.auction.PlaceBid)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

type testCaseProduct struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/products"

	reqBody := builder.NewProductBuilder().BuildCreateRequestDTO()
	returnView := builder.NewProductBuilder().BuildView()
	expectedResult := &commands.CreateProductResult{ProductID: returnView.ID}

	validation := []testCaseProduct{
		{name: "zero stock is allowed", mutate: testutil.Field("stock", 0), expectCode: http.StatusCreated},
		{name: "negative stock rejected", mutate: testutil.Field("stock", -1), expectCode: http.StatusBadRequest},
		{name: "zero price rejected", mutate: testutil.Field("price", 0), expectCode: http.StatusBadRequest},
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
		{name: "long name passes binding", mutate: testutil.Field("name", strings.Repeat("a", 120)), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), testSellerID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.Name, resp.Name)
	})

	s.Run("validation boundaries", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), testSellerID).
						Return(expectedResult, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
						Return(returnView, nil).Times(1)
				}
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("unauthorized: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("conflict: duplicate listing name maps to 409", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), testSellerID).
			Return(nil, commands.ErrProductNameTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already lists")
	})
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	url := "/products/" + builder.NewProductBuilder().ID

	reqBody := builder.NewProductBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewProductBuilder().BuildView()

	s.Run("success: returns the refreshed listing", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), returnView.ID, gomock.Any(), testSellerID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var resp resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(returnView.ID, resp.ID)
	})

	s.Run("forbidden: another seller's listing maps to 403", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), returnView.ID, gomock.Any(), testSellerID).
			Return(commands.ErrNotProductSeller).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another seller")
	})
}

func (s *ProductHandlerTestSuite) TestGetAndList() {
	returnView := builder.NewProductBuilder().BuildView()

	s.Run("get by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+returnView.ID, nil, "")

		var resp resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(returnView.ID, resp.ID)
	})

	s.Run("list forwards query filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.ProductView{returnView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?type=DIRECT&status=ACTIVE", nil, "")

		var resp []resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("invalid type filter maps to 400", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, domproduct.ErrInvalidType).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?type=RAFFLE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ProductHandlerTestSuite) TestLifecycleActions() {
	id := builder.NewProductBuilder().ID

	s.Run("publish returns 204", func() {
		s.mockCommands.EXPECT().PublishProduct(gomock.Any(), id, testSellerID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/publish", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("withdraw returns 204", func() {
		s.mockCommands.EXPECT().WithdrawProduct(gomock.Any(), id, testSellerID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/withdraw", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete returns 204", func() {
		s.mockCommands.EXPECT().DeleteProduct(gomock.Any(), id, testSellerID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *ProductHandlerTestSuite) TestAuction() {
	b := builder.NewProductBuilder()
	id := b.ID

	s.Run("start auction returns 204", func() {
		s.mockAuction.EXPECT().StartAuction(gomock.Any(), id, gomock.Any(), testSellerID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/auction", b.BuildStartAuctionRequestDTO(), "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("bid below current price maps to 409", func() {
		s.mockAuction.EXPECT().PlaceBid(gomock.Any(), id, gomock.Any(), testSellerID).
			Return(domproduct.ErrBidTooLow).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/bids", map[string]any{"bid_price": 10}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("bid after end maps to 409", func() {
		s.mockAuction.EXPECT().PlaceBid(gomock.Any(), id, gomock.Any(), testSellerID).
			Return(commands.ErrAuctionEnded).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/bids", map[string]any{"bid_price": 500}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("missing bid price maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+id+"/bids", map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
