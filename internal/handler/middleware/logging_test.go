//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"parkgate/internal/handler/middleware"
	"parkgate/internal/pkg/config"
	"parkgate/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	t.Run("ロギングミドルウェアが採番したIDを取り出せる", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))

		var got string
		router.GET("/ping", func(c *gin.Context) {
			got = middleware.GetRequestID(c)
			c.Status(http.StatusOK)
		})

		httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, nil)
		assert.NotEmpty(t, got)
	})

	t.Run("未設定のコンテキストでは空文字を返す", func(t *testing.T) {
		c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})
}
