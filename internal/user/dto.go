package user

import (
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
)

type UpdateAccessRequest struct {
	Roles    []string `json:"roles" binding:"omitempty,dive,role"`
	Team     *int     `json:"team"`
	MemberID *string  `json:"member_id" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID        uint32     `json:"id"`
	Email     string     `json:"email"`
	Roles     []string   `json:"roles"`
	Team      *int       `json:"team,omitempty"`
	MemberID  *string    `json:"member_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Roles:     u.Roles.Strings(),
		Team:      u.Team,
		MemberID:  u.MemberID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
