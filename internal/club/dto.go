package club

import (
	"strings"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
)

type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Address     string `json:"address" binding:"required,notblank,max=255"`
	FoundedYear *int   `json:"founded_year" binding:"omitempty,min=1800,max=2100"`
}

func (r *CreateClubRequest) ToModel() *model.Club {
	return &model.Club{
		Name:        strings.TrimSpace(r.Name),
		Address:     strings.TrimSpace(r.Address),
		FoundedYear: r.FoundedYear,
	}
}

type ListClubsQuery struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

type ClubResponse struct {
	ID          uint32    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	FoundedYear *int      `json:"founded_year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   *string   `json:"created_by,omitempty"`
}

func NewClubResponse(c *model.Club) *ClubResponse {
	return &ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		FoundedYear: c.FoundedYear,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
	}
}

type ClubListResponse struct {
	Clubs  []*ClubResponse `json:"clubs"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
