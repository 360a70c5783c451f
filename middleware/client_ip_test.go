package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/calculate", nil)
	return c
}

func TestClientIPForwardedForWins(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIPRealIPFallback(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Real-IP", " 198.51.100.2 ")

	assert.Equal(t, "198.51.100.2", clientIP(c))
}

func TestClientIPRemoteAddrStripsPort(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "192.0.2.9:54321"

	assert.Equal(t, "192.0.2.9", clientIP(c))
}
