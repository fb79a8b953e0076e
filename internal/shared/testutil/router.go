package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// SetupTestRouter creates a gin engine in test mode with the custom validators registered
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	_ = validator.RegisterAll()

	return gin.New()
}

// WithCaller injects caller as the authenticated identity, standing in for the JWT middleware.
// A nil caller leaves the request unauthenticated.
func WithCaller(caller *sharedContext.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller != nil {
			sharedContext.SetCaller(c, *caller)
		}
		c.Next()
	}
}

type TestRequest struct {
	Method  string
	URL     string
	Body    interface{}
	RawBody string // sent verbatim when set, for malformed payloads
	Headers map[string]string
}

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewBufferString(req.RawBody)
	case req.Body != nil:
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}
