package event

import (
	"net/http"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *EventService
}

func NewEventHandler(eventService *EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

type eventPath struct {
	ID uint32 `uri:"id"`
}

func (h *EventHandler) Create(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var request CreateEventRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.eventService.CreateEvent(c.Request.Context(), &request, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.eventService.ListEvents(c.Request.Context(), query.ToFilter())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) Get(c *gin.Context) {
	var path eventPath
	if !handler.BindURI(c, &path) {
		return
	}

	response, err := h.eventService.GetEvent(c.Request.Context(), path.ID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
