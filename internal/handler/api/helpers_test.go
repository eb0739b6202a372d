//go:build unit

package api_test

import (
	"time"

	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/usecase"
	usecasemock "courtmate-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const sessionMaxAge = 24 * time.Hour

// allowSession makes every request carrying token "tok" authenticated as the given read result.
func allowSession(m *usecasemock.MockSessionManager, res usecase.ReadResult) {
	m.EXPECT().Read(gomock.Any(), "tok").Return(res, nil).AnyTimes()
}

func requireSession(m *usecasemock.MockSessionManager) gin.HandlerFunc {
	return middleware.NewSessionMiddleware(m, config.NewTestConfig()).RequireSession()
}
