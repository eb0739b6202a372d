package api

import (
	"net/http"

	reqdto "courtmate-gateway/internal/handler/dto/request"
	resdto "courtmate-gateway/internal/handler/dto/response"
	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/internal/usecase/commands"
	"courtmate-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
	clock           clock.Clock
}

func NewBookingHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands, clk clock.Clock) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
		clock:           clk,
	}
}

// @Summary List my bookings
// @Description Reservations of the session user, each joined with its court
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	token, ok := middleware.GetAccessToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, httperr.MsgUnauthorized, nil)
		return
	}

	bookings, err := h.bookingQueries.ListBookings(c.Request.Context(), token)
	if err != nil {
		var fetchErr *queries.BookingFetchError
		if errs.As(err, &fetchErr) {
			httperr.AbortWithError(c, fetchErr.Status, err, "Failed to fetch bookings", fetchErr.Details())
			return
		}
		httperr.AbortClassified(c, err, "Failed to fetch bookings")
		return
	}

	response, err := resdto.FromBookings(bookings)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	token, ok := middleware.GetAccessToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, httperr.MsgUnauthorized, nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	domainReq, err := req.ToDomain(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	created, err := h.bookingCommands.Create(c.Request.Context(), token, domainReq)
	if err != nil {
		switch ue, isUpstream := infra.AsUpstream(err); {
		case errs.Is(err, errs.ErrAuth):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication failed. Please log in again.", nil)
		case isUpstream && ue.Kind == infra.KindStatus:
			msg := ue.Detail()
			if msg == "" {
				msg = "Failed to create reservation"
			}
			httperr.AbortWithError(c, ue.Status, err, msg, ue.Details())
		default:
			httperr.AbortClassified(c, err, "Failed to create reservation")
		}
		return
	}

	c.Data(http.StatusCreated, "application/json; charset=utf-8", created)
}
