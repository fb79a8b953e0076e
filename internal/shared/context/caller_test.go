package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCaller_DropsUnknownRoles(t *testing.T) {
	caller := NewCaller(token.Identity{
		UserID: "7",
		Roles:  []string{"coach", "superuser", "admin", "coach"},
	})

	assert.Equal(t, model.RoleSet{model.RoleAdmin, model.RoleCoach}, caller.Roles)
	assert.True(t, caller.HasAnyRole(model.RolePlayer, model.RoleCoach))
	assert.False(t, caller.HasAnyRole(model.RoleParent))
	assert.Equal(t, "7", *caller.ActorID())
}

func TestRequireCaller_MissingSends401(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := RequireCaller(c)

	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireCaller_Present(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetCaller(c, Caller{UserID: "1"})

	caller, ok := RequireCaller(c)

	assert.True(t, ok)
	assert.Equal(t, "1", caller.UserID)
}
