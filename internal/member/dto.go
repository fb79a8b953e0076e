package member

import (
	"strings"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/date"
)

// DefaultLimit is the page size when limit is omitted
const DefaultLimit = 50

type CreateMemberRequest struct {
	FirstName string     `json:"first_name" binding:"required,notblank,max=100"`
	LastName  string     `json:"last_name" binding:"required,notblank,max=100"`
	Email     *string    `json:"email" binding:"omitempty,email,max=255"`
	Birthdate *date.Date `json:"birthdate"`
	Roles     []string   `json:"roles" binding:"omitempty,dive,role"`
	Team      *int       `json:"team"`
	Status    *string    `json:"status" binding:"omitempty,member_status"`
	Notes     *string    `json:"notes" binding:"omitempty,max=2000"`
}

// ToModel maps the request onto a new member; status defaults to active when omitted
func (r *CreateMemberRequest) ToModel() *model.Member {
	m := &model.Member{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Birthdate: r.Birthdate.TimePtr(),
		Roles:     model.NewRoleSet(r.Roles...),
		Team:      r.Team,
		Status:    model.MemberStatusActive,
		Notes:     r.Notes,
	}
	if r.Status != nil {
		m.Status = model.MemberStatus(*r.Status)
	}
	m.SetEmail(r.Email)
	return m
}

// UpdateMemberRequest is a merge patch: absent fields stay untouched.
// Explicit null clears email, birthdate, team and notes.
type UpdateMemberRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,notblank,max=100"`
	LastName  *string    `json:"last_name" binding:"omitempty,notblank,max=100"`
	Email     *string    `json:"email" binding:"omitempty,email,max=255"`
	Birthdate *date.Date `json:"birthdate"`
	Roles     []string   `json:"roles" binding:"omitempty,dive,role"` // nil when absent, empty to clear
	Team      *int       `json:"team"`
	Status    *string    `json:"status"`
	Notes     *string    `json:"notes" binding:"omitempty,max=2000"`
}

// ToPatch converts the request using the set of keys sent as JSON null
func (r *UpdateMemberRequest) ToPatch(nulls map[string]bool) MemberPatch {
	patch := MemberPatch{
		FirstName: trimmed(r.FirstName),
		LastName:  trimmed(r.LastName),
		Email:     nullableOf(r.Email, nulls["email"]),
		Birthdate: nullableOf(r.Birthdate.TimePtr(), nulls["birthdate"]),
		Team:      nullableOf(r.Team, nulls["team"]),
		Notes:     nullableOf(r.Notes, nulls["notes"]),
	}
	if r.Roles != nil {
		roles := model.NewRoleSet(r.Roles...)
		patch.Roles = &roles
	}
	return patch
}

// ListMembersQuery binds GET /members query parameters
type ListMembersQuery struct {
	Role   string `form:"role" binding:"omitempty,role"`
	Team   *int   `form:"team"`
	Status string `form:"status" binding:"omitempty,member_status"`
	Q      string `form:"q" binding:"max=200"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

func (q *ListMembersQuery) ToFilter() ListFilter {
	filter := ListFilter{
		Team:   q.Team,
		Query:  strings.TrimSpace(q.Q),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.Role != "" {
		role := model.Role(q.Role)
		filter.Role = &role
	}
	if q.Status != "" {
		status := model.MemberStatus(q.Status)
		filter.Status = &status
	}
	return filter
}

type TeamPath struct {
	Team int `uri:"team"`
}

type TeamMembersQuery struct {
	Status string `form:"status" binding:"omitempty,member_status"`
}

type MemberResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     *string    `json:"email,omitempty"`
	Birthdate *date.Date `json:"birthdate,omitempty"`
	Roles     []string   `json:"roles"`
	Team      *int       `json:"team,omitempty"`
	Status    string     `json:"status"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	CreatedBy *string    `json:"created_by,omitempty"`
	UpdatedBy *string    `json:"updated_by,omitempty"`
}

func NewMemberResponse(m *model.Member) *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Birthdate: date.FromPtr(m.Birthdate),
		Roles:     m.Roles.Strings(),
		Team:      m.Team,
		Status:    string(m.Status),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
	}
}

func newMemberResponses(members []model.Member) []*MemberResponse {
	out := make([]*MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, NewMemberResponse(&members[i]))
	}
	return out
}

type MemberListResponse struct {
	Members []*MemberResponse `json:"members"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

type TeamMembersResponse struct {
	Team    int               `json:"team"`
	Members []*MemberResponse `json:"members"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
