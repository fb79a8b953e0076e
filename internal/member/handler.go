package member

import (
	"net/http"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) Create(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var request CreateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.CreateMember(c.Request.Context(), &request, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MemberHandler) List(c *gin.Context) {
	if _, ok := sharedContext.RequireCaller(c); !ok {
		return
	}

	var query ListMembersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.memberService.ListMembers(c.Request.Context(), query.ToFilter())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Get(c *gin.Context) {
	if _, ok := sharedContext.RequireCaller(c); !ok {
		return
	}

	response, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Update(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var request UpdateMemberRequest
	nulls, ok := handler.BindMergePatch(c, &request)
	if !ok {
		return
	}

	response, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), &request, nulls, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id"), caller); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) Restore(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	response, err := h.memberService.RestoreMember(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) ListTeam(c *gin.Context) {
	if _, ok := sharedContext.RequireCaller(c); !ok {
		return
	}

	var path TeamPath
	if !handler.BindURI(c, &path) {
		return
	}

	var query TeamMembersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	var status *model.MemberStatus
	if query.Status != "" {
		s := model.MemberStatus(query.Status)
		status = &s
	}

	response, err := h.memberService.ListTeamMembers(c.Request.Context(), path.Team, status)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
