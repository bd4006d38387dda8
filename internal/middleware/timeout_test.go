package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutAllowsFastHandlers(t *testing.T) {
	router := gin.New()
	router.Use(TimeoutWithDuration(200 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestTimeoutAbortsSlowHandlers(t *testing.T) {
	router := gin.New()
	router.Use(TimeoutWithDuration(20 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		// Wait out the deadline without touching the writer; the
		// middleware owns the response once the deadline passes.
		<-c.Request.Context().Done()
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "timeout")
}

func TestTimeoutCancelsRequestContext(t *testing.T) {
	router := gin.New()
	router.Use(TimeoutWithDuration(20 * time.Millisecond))

	canceled := make(chan struct{})
	router.GET("/test", func(c *gin.Context) {
		<-c.Request.Context().Done()
		close(canceled)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("request context was never canceled")
	}
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestTimeoutTranslatesMessage(t *testing.T) {
	router := gin.New()
	router.Use(TimeoutWithDuration(20 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "en")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "timed out")
}
