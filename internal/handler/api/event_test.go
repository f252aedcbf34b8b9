//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/KingCastle/Javan/internal/handler/api"
	resdto "github.com/KingCastle/Javan/internal/handler/dto/response"
	"github.com/KingCastle/Javan/internal/usecase/queries"
	"github.com/KingCastle/Javan/tests/common/builder"
	"github.com/KingCastle/Javan/tests/common/httptest"
	queriesmock "github.com/KingCastle/Javan/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEventQueries
	handler     *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockQueries)

	s.router.GET("/api/events", s.handler.List)
	s.router.GET("/api/events/:id", s.handler.Get)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestList() {
	s.Run("success: sold out flag follows remaining seats", func() {
		open := builder.NewEventBuilder().WithTitle("Open").WithCapacity(10).WithBookedSeats(4).BuildReadModel()
		full := builder.NewEventBuilder().WithTitle("Full").WithCapacity(10).WithBookedSeats(10).BuildReadModel()
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any()).Return([]*queries.EventView{open, full}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events", nil, "")

		var body resdto.EventListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Events, 2)
		s.Equal("Open", body.Events[0].Title)
		s.Equal(6, body.Events[0].SeatsRemaining)
		s.False(body.Events[0].SoldOut)
		s.True(body.Events[1].SoldOut)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"events":[]}`, rec.Body.String())
	})

	s.Run("error: read failure", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *EventHandlerTestSuite) TestGet() {
	view := builder.NewEventBuilder().BuildReadModel()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/"+view.ID.String(), nil, "")

		var body resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.PriceCents, body.PriceCents)
		s.Equal(view.StartAt.Unix(), body.StartAt)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrEventNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})
}
