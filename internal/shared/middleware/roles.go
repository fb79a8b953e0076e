package middleware

import (
	"net/http"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// RoleRequired is the response for callers missing every role a route demands
var RoleRequired = sharedError.ErrorResponse{
	Status:  http.StatusForbidden,
	Code:    "AUTH-004",
	Message: "Your role does not allow this operation.",
}

// RequireRoles lets the request through when the caller holds at least one of roles.
// Must run after JWT.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := sharedContext.RequireCaller(c)
		if !ok {
			return
		}

		if !caller.HasAnyRole(roles...) {
			logger.FromContext(c.Request.Context()).Warn("권한 부족",
				"user_id", caller.UserID,
				"roles", caller.Roles.Strings(),
				"route", c.FullPath(),
			)
			c.AbortWithStatusJSON(RoleRequired.Status, RoleRequired)
			return
		}

		c.Next()
	}
}
