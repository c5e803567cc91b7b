//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"benefit-desk/internal/domain/user"
	"benefit-desk/internal/handler/api"
	resdto "benefit-desk/internal/handler/dto/response"
	"benefit-desk/internal/usecase/commands"
	"benefit-desk/internal/usecase/queries"
	"benefit-desk/tests/common/builder"
	"benefit-desk/tests/common/httptest"
	"benefit-desk/tests/common/testutil"
	commandsmock "benefit-desk/tests/mock/commands"
	queriesmock "benefit-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockCommands       *commandsmock.MockOfferingCommands
	mockQueries        *queriesmock.MockOfferingQueries
	mockBenefitQueries *queriesmock.MockBenefitQueries
	handler            *api.OfferingHandler
	authedUserID       uuid.UUID
}

func (s *OfferingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferingQueries(s.mockCtrl)
	s.mockBenefitQueries = queriesmock.NewMockBenefitQueries(s.mockCtrl)
	s.handler = api.NewOfferingHandler(s.mockCommands, s.mockQueries, s.mockBenefitQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.POST("/offerings", authMiddleware, s.handler.Create)
	s.router.GET("/offerings", authMiddleware, s.handler.List)
	s.router.GET("/offerings/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/offerings/:id", authMiddleware, s.handler.Update)
	s.router.PATCH("/offerings/:id/open", authMiddleware, s.handler.SetOpen)
	s.router.GET("/offerings/:id/stats", authMiddleware, s.handler.Stats)
	s.router.GET("/offerings/:id/requests", authMiddleware, s.handler.ListRequests)
}

func (s *OfferingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferingHandlerTestSuite))
}

func (s *OfferingHandlerTestSuite) TestCreate() {
	url := "/offerings"

	reqBody := builder.NewOfferingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewOfferingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateOffering(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(&commands.CreateOfferingResult{OfferingID: returnView.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Label, response.Label)
		s.Equal(returnView.Quota, response.Quota)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: label (required)", mutate: testutil.Field("label", nil)},
			{name: "empty label", mutate: testutil.Field("label", "")},
			{name: "label too long (201 chars)", mutate: testutil.Field("label", strings.Repeat("a", 201))},
			{name: "negative quota", mutate: testutil.Field("quota", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when the domain rejects the offering", func() {
		s.mockCommands.EXPECT().CreateOffering(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(nil, errors.New("window closes before it opens")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create offering failed")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *OfferingHandlerTestSuite) TestGet() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String()

	returnView := builder.NewOfferingBuilder().BuildView()
	returnView.ID = offeringID

	s.Run("success: returns 200 OK with OfferingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offeringID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offeringID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offerings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing offering", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offeringID).
			Return(nil, queries.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})
}

func (s *OfferingHandlerTestSuite) TestList() {
	url := "/offerings"

	views := []*queries.OfferingView{
		builder.NewOfferingBuilder().BuildView(),
		builder.NewOfferingBuilder().WithOpen(false).BuildView(),
	}

	s.Run("success: returns every offering by default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.OfferingFilters{OnlyAvailable: false}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Offerings []resdto.OfferingResponse `json:"offerings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offerings, 2)
	})

	s.Run("success: available filter narrows to open offerings", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.OfferingFilters{OnlyAvailable: true}).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?available=true", nil, "bearer-token")

		var response struct {
			Offerings []resdto.OfferingResponse `json:"offerings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offerings, 1)
	})
}

func (s *OfferingHandlerTestSuite) TestSetOpen() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/open"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetOfferingOpen(gomock.Any(), offeringID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"open": false}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when the open flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for missing offering", func() {
		s.mockCommands.EXPECT().SetOfferingOpen(gomock.Any(), offeringID, true).
			Return(commands.ErrOfferingNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"open": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})
}

func (s *OfferingHandlerTestSuite) TestStats() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/stats"

	s.Run("success: returns 200 OK with per-status counts", func() {
		s.mockQueries.EXPECT().GetStats(gomock.Any(), offeringID).
			Return(&queries.OfferingStatsView{
				OfferingID: offeringID,
				Submitted:  4,
				InReview:   2,
				Accepted:   1,
				Active:     7,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OfferingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offeringID, response.OfferingID)
		s.Equal(int64(4), response.Submitted)
		s.Equal(int64(7), response.Active)
	})

	s.Run("error: 404 Not Found for missing offering", func() {
		s.mockQueries.EXPECT().GetStats(gomock.Any(), offeringID).
			Return(nil, queries.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})
}

func (s *OfferingHandlerTestSuite) TestListRequests() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/requests"

	s.Run("success: returns 200 OK with the offering's requests", func() {
		items := []*queries.RequestListItem{builder.NewRequestBuilder().BuildListItem()}

		s.mockBenefitQueries.EXPECT().
			ListByOffering(gomock.Any(), offeringID, queries.RequestFilters{}, gomock.Nil(), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Requests []*resdto.RequestListItemResponse `json:"requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Requests, 1)
	})

	s.Run("success: status filter is passed through", func() {
		status := "in_review"

		s.mockBenefitQueries.EXPECT().
			ListByOffering(gomock.Any(), offeringID, queries.RequestFilters{Status: &status}, gomock.Nil(), 20).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=in_review", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on a broken cursor", func() {
		s.mockBenefitQueries.EXPECT().
			ListByOffering(gomock.Any(), offeringID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
