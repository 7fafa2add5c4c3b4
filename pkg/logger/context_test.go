package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContextReturnsRequestLogger(t *testing.T) {
	c := newContext()
	scoped := zap.NewNop().With(zap.String("request_id", "abc-123"))
	c.Set("logger", scoped)

	assert.Same(t, scoped, FromContext(c))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	c := newContext()

	assert.Same(t, zap.L(), FromContext(c))
}
