//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase/commands"
	commandsmock "courtmate-gateway/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingCommands_Create(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req, err := reservation.NewRequest("court-1", "2026-05-10T10:00:00Z", "2026-05-10T11:00:00Z", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	t.Run("success: returns the booking service body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockReservationGateway(ctrl)
		gw.EXPECT().Create(gomock.Any(), "tok", req).Return(json.RawMessage(`{"id":"r-1"}`), nil)

		out, err := commands.NewBookingCommands(gw, logger).Create(context.Background(), "tok", req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"r-1"}`, string(out))
	})

	t.Run("error: 401 from booking service becomes an auth error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockReservationGateway(ctrl)
		gw.EXPECT().Create(gomock.Any(), "tok", req).Return(nil, infra.NewStatusError("booking", http.StatusUnauthorized, nil))

		_, err := commands.NewBookingCommands(gw, logger).Create(context.Background(), "tok", req)
		assert.True(t, errs.Is(err, commands.ErrBookingUnauthorized))
		assert.True(t, errs.Is(err, errs.ErrAuth))
	})

	t.Run("error: conflict keeps the upstream status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockReservationGateway(ctrl)
		gw.EXPECT().Create(gomock.Any(), "tok", req).Return(nil, infra.NewStatusError("booking", http.StatusConflict, []byte(`{"detail":"Slot taken"}`)))

		_, err := commands.NewBookingCommands(gw, logger).Create(context.Background(), "tok", req)
		assert.False(t, errs.Is(err, errs.ErrAuth))
		assert.Equal(t, http.StatusConflict, infra.StatusOf(err))
	})
}
