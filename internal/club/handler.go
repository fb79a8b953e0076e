package club

import (
	"net/http"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService *ClubService
}

func NewClubHandler(clubService *ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

type clubPath struct {
	ID uint32 `uri:"id"`
}

func (h *ClubHandler) Create(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var request CreateClubRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.clubService.CreateClub(c.Request.Context(), &request, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ClubHandler) List(c *gin.Context) {
	var query ListClubsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.clubService.ListClubs(c.Request.Context(), query)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ClubHandler) Get(c *gin.Context) {
	var path clubPath
	if !handler.BindURI(c, &path) {
		return
	}

	response, err := h.clubService.GetClub(c.Request.Context(), path.ID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
