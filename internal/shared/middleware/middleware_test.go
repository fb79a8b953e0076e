package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "propagates client id", incoming: "client-req-1", keep: true},
		{name: "generates when missing", incoming: "", keep: false},
		{name: "replaces overlong id", incoming: strings.Repeat("a", 65), keep: false},
		{name: "replaces id with spaces", incoming: "bad id", keep: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			got := recorder.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, recorder.Body.String())
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
			} else {
				assert.NotEqual(t, tc.incoming, got)
			}
		})
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(time.Second))
	router.GET("/deadline", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		if ok {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusInternalServerError)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/deadline", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

type recordingRequestObserver struct {
	route  string
	status int
}

func (r *recordingRequestObserver) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.route = route
	r.status = status
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	observer := &recordingRequestObserver{}
	router := gin.New()
	router.Use(Metrics(observer))
	router.GET("/members/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/members/abc", nil))

	assert.Equal(t, "/members/:id", observer.route)
	assert.Equal(t, http.StatusNoContent, observer.status)
}
