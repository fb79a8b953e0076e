package user

import (
	"net/http"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	response, err := h.userService.GetMe(c.Request.Context(), caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

type userPath struct {
	ID uint32 `uri:"id"`
}

func (h *UserHandler) UpdateAccess(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var path userPath
	if !handler.BindURI(c, &path) {
		return
	}

	var request UpdateAccessRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.userService.UpdateAccess(c.Request.Context(), path.ID, &request, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
