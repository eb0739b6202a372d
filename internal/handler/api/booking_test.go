//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"courtmate-gateway/internal/domain/facility"
	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/handler/api"
	resdto "courtmate-gateway/internal/handler/dto/response"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/internal/usecase/commands"
	"courtmate-gateway/internal/usecase/queries"
	"courtmate-gateway/tests/common/builder"
	"courtmate-gateway/tests/common/httptest"
	"courtmate-gateway/tests/common/testutil"
	commandsmock "courtmate-gateway/tests/mock/commands"
	queriesmock "courtmate-gateway/tests/mock/queries"
	usecasemock "courtmate-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockBookingQueries
	mockCommands *commandsmock.MockBookingCommands
	mockSessions *usecasemock.MockSessionManager
	session      usecase.ReadResult
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSessions = usecasemock.NewMockSessionManager(s.mockCtrl)
	s.session = usecase.ReadResult{Session: builder.NewSessionBuilder().Build()}
	allowSession(s.mockSessions, s.session)

	clk := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	handler := api.NewBookingHandler(s.mockQueries, s.mockCommands, clk)

	mw := requireSession(s.mockSessions)
	s.router.GET("/api/bookings", mw, handler.ListBookings)
	s.router.POST("/api/booking", mw, handler.CreateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/api/bookings"

	s.Run("success: reservations come back with their court in booking service order", func() {
		first := builder.NewReservationBuilder().Build()
		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = "r-2"
			b.CourtID = "court-gone"
			cancelled := "2026-05-02T10:00:00Z"
			b.CancelledAt = &cancelled
		}).Build()

		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.session.Session.AccessToken).Return([]reservation.Booking{
			reservation.NewBooking(first, facility.Summary{Name: "Tivoli", Address: "Celovška 25", City: "Ljubljana"}),
			reservation.NewBooking(second, facility.UnknownSummary()),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "tok")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(first.ID, response[0].ID)
		s.Equal("Tivoli", response[0].Court.Name)
		s.Equal(json.Number("25.00"), response[0].TotalPrice)
		s.Equal("confirmed", response[0].Status)
		s.Equal("r-2", response[1].ID)
		s.Equal("Unknown Court", response[1].Court.Name)
		s.Equal("canceled", response[1].Status)
	})

	s.Run("success: booking service members the gateway does not model are kept", func() {
		r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Fields = map[string]json.RawMessage{
				"id":      json.RawMessage(`"6a1c7d3e-2f4b-4c5d-8e9f-0a1b2c3d4e5f"`),
				"payment": json.RawMessage(`{"method":"card","paid":true}`),
				"status":  json.RawMessage(`"pending"`),
			}
		}).Build()
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]reservation.Booking{
			reservation.NewBooking(r, facility.Summary{Name: "Tivoli", Address: "Celovška 25", City: "Ljubljana"}),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "tok")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(map[string]any{"method": "card", "paid": true}, response[0]["payment"])
		s.Equal("confirmed", response[0]["status"])
		s.Equal(r.ID, response[0]["id"])
		s.Equal("Tivoli", response[0]["court"].(map[string]any)["name"])
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]reservation.Booking{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "tok")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: booking service status is forwarded with its body", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			Return(nil, &queries.BookingFetchError{Status: http.StatusForbidden, Body: []byte(`{"detail":"forbidden"}`)})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "tok")

		s.Equal(http.StatusForbidden, rec.Code)
		s.JSONEq(`{"error":"Failed to fetch bookings","details":{"detail":"forbidden"}}`, rec.Body.String())
	})

	s.Run("error: booking service timeout is 504", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			Return(nil, infra.UpstreamError{Kind: infra.KindTimeout, Service: upstream.ServiceBooking})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "tok")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGatewayTimeout, "Booking service request timed out")
	})

	s.Run("error: no session is 401 before any upstream call", func() {
		s.mockSessions.EXPECT().Read(gomock.Any(), "").Return(usecase.ReadResult{}, errs.Mark(usecase.ErrNoSession, errs.ErrAuth))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/booking"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with the booking service body", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.session.Session.AccessToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req reservation.Request) (json.RawMessage, error) {
				s.Equal("court-1", req.CourtID)
				s.Equal("2026-05-10T10:00:00Z", req.Slot.RawStart())
				return json.RawMessage(`{"id":"r-new","status":"confirmed"}`), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "tok")

		s.Equal(http.StatusCreated, rec.Code)
		s.JSONEq(`{"id":"r-new","status":"confirmed"}`, rec.Body.String())
	})

	s.Run("error: 400 before any upstream call", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
			msg    string
		}{
			{name: "ends before starts", mutate: testutil.Field("ends_at", "2026-05-10T09:00:00Z"), msg: "End time must be after start time"},
			{name: "ends equal to starts", mutate: testutil.Field("ends_at", "2026-05-10T10:00:00Z"), msg: "End time must be after start time"},
			{name: "starts in the past", mutate: func(m map[string]any) {
				m["starts_at"] = "2026-04-01T10:00:00Z"
				m["ends_at"] = "2026-04-01T11:00:00Z"
			}, msg: "Cannot book in the past"},
			{name: "unparseable time", mutate: testutil.Field("starts_at", "next tuesday"), msg: "Invalid datetime format"},
			{name: "missing court", mutate: testutil.Field("court_id", nil), msg: "Missing required fields"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "tok")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 401 from the booking service asks the user to log in again", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrBookingUnauthorized, errs.ErrAuth))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "tok")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication failed. Please log in again.")
	})

	s.Run("error: conflict carries the upstream detail and body", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.NewStatusError(upstream.ServiceBooking, http.StatusConflict, []byte(`{"detail":"Court already booked"}`)))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "tok")

		s.Equal(http.StatusConflict, rec.Code)
		s.JSONEq(`{"error":"Court already booked","details":{"detail":"Court already booked"}}`, rec.Body.String())
	})
}
