package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"github.com/fussballmanager/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindJSON parses and validates the JSON request body.
// Returns false when binding failed; the response has already been written.
//
//	var req CreateMemberRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if resp, ok := validator.ToErrorResponse(err); ok {
			RespondError(c, err, *resp)
		} else {
			RespondError(c, err, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// BindMergePatch binds a JSON merge patch body and also reports which top-level keys
// were sent as explicit null, so optional columns can be cleared.
func BindMergePatch(c *gin.Context, obj any) (map[string]bool, bool) {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		if resp, ok := validator.ToErrorResponse(err); ok {
			RespondError(c, err, *resp)
		} else {
			RespondError(c, err, sharedError.InvalidRequest)
		}
		return nil, false
	}

	nulls := map[string]bool{}
	body, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return nulls, true
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body.([]byte), &raw); err != nil {
		RespondError(c, err, sharedError.InvalidRequest)
		return nil, false
	}
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			nulls[key] = true
		}
	}
	return nulls, true
}

// BindQuery binds query parameters. Any failure, including unparsable numbers, is a validation error.
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if resp, ok := validator.ToErrorResponse(err); ok {
			RespondError(c, err, *resp)
		} else {
			RespondError(c, err, sharedError.ValidationFailed)
		}
		return false
	}
	return true
}

// BindURI binds path parameters declared with `uri` tags
func BindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		if resp, ok := validator.ToErrorResponse(err); ok {
			RespondError(c, err, *resp)
		} else {
			RespondError(c, err, sharedError.ValidationFailed)
		}
		return false
	}
	return true
}

// RespondError records err on the context for the access log and writes errResp
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	c.Error(err)

	if errResp.Status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("요청 처리 실패", "error", err.Error())
	}

	c.JSON(errResp.Status, errResp)
}

// RespondDomainError resolves err against the domain error registry, falling back to 500
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.ResolveOrInternal(err))
}
