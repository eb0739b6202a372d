package queries

//go:generate mockgen -source=bookings.go -destination=../../../tests/mock/queries/mock_bookings.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"courtmate-gateway/internal/domain/facility"
	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/fanout"
)

// BookingFetchError is returned when the booking service answers the list call with a non-2xx status.
type BookingFetchError struct {
	Status int
	Body   []byte
	err    error
}

func (e *BookingFetchError) Error() string {
	if e.err == nil {
		return "failed to fetch bookings: booking service responded " + strconv.Itoa(e.Status)
	}
	return "failed to fetch bookings: " + e.err.Error()
}

// Details is the booking service body in the form the error envelope carries.
func (e *BookingFetchError) Details() any {
	return infra.NewStatusError(upstream.ServiceBooking, e.Status, e.Body).Details()
}

func (e *BookingFetchError) Unwrap() error {
	return e.err
}

type BookingQueries interface {
	// ListBookings returns the user's reservations in booking service order, each joined
	// with its court. A failed court lookup yields the placeholder, never an error.
	ListBookings(ctx context.Context, accessToken string) ([]reservation.Booking, error)
}

type bookingQueriesImpl struct {
	reservations      ReservationReader
	facilities        FacilityReader
	enrichmentTimeout time.Duration
	logger            *slog.Logger
}

func NewBookingQueries(reservations ReservationReader, facilities FacilityReader, enrichmentTimeout time.Duration, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		reservations:      reservations,
		facilities:        facilities,
		enrichmentTimeout: enrichmentTimeout,
		logger:            logger,
	}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, accessToken string) ([]reservation.Booking, error) {
	list, err := q.reservations.List(ctx, accessToken)
	if err != nil {
		if ue, ok := infra.AsUpstream(err); ok && ue.Kind == infra.KindStatus {
			return nil, &BookingFetchError{Status: ue.Status, Body: ue.Body, err: err}
		}
		return nil, err
	}

	results := fanout.SettleAll(ctx, list, 0, func(ctx context.Context, r reservation.Reservation) (facility.Summary, error) {
		f, err := q.facilities.GetFacility(ctx, r.CourtID, accessToken, q.enrichmentTimeout)
		if err != nil {
			return facility.Summary{}, err
		}
		return f.Summary(), nil
	})

	bookings := make([]reservation.Booking, len(list))
	for i, r := range list {
		court := results[i].Value
		if results[i].Err != nil {
			q.logger.Warn("court lookup failed, using placeholder",
				"reservation_id", r.ID, "court_id", r.CourtID, "error", results[i].Err.Error())
			court = facility.UnknownSummary()
		}
		bookings[i] = reservation.NewBooking(r, court)
	}

	return bookings, nil
}
