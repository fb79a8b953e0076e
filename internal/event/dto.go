package event

import (
	"strings"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
)

type CreateEventRequest struct {
	ClubID    uint32     `json:"club_id" binding:"required"`
	Type      string     `json:"type" binding:"required,event_type"`
	Title     string     `json:"title" binding:"required,notblank,max=200"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time" binding:"omitempty,gtfield=StartTime"`
	Location  *string    `json:"location" binding:"omitempty,max=255"`
}

func (r *CreateEventRequest) ToModel() *model.Event {
	e := &model.Event{
		ClubID:    r.ClubID,
		Type:      model.EventType(r.Type),
		Title:     strings.TrimSpace(r.Title),
		StartTime: r.StartTime.UTC(),
		Location:  r.Location,
	}
	if r.EndTime != nil {
		end := r.EndTime.UTC()
		e.EndTime = &end
	}
	return e
}

// ListEventsQuery binds GET /events; from and to bound start_time inclusively (RFC 3339)
type ListEventsQuery struct {
	ClubID *uint32    `form:"club_id"`
	Type   string     `form:"type" binding:"omitempty,event_type"`
	From   *time.Time `form:"from"`
	To     *time.Time `form:"to"`
	Limit  int        `form:"limit,default=50" binding:"min=1,max=100"`
	Offset int        `form:"offset,default=0" binding:"min=0"`
}

func (q ListEventsQuery) ToFilter() ListFilter {
	filter := ListFilter{
		ClubID: q.ClubID,
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.Type != "" {
		t := model.EventType(q.Type)
		filter.Type = &t
	}
	return filter
}

type EventResponse struct {
	ID        uint32     `json:"id"`
	ClubID    uint32     `json:"club_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Location  *string    `json:"location,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy *string    `json:"created_by,omitempty"`
}

func NewEventResponse(e *model.Event) *EventResponse {
	return &EventResponse{
		ID:        e.ID,
		ClubID:    e.ClubID,
		Type:      string(e.Type),
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}

type EventListResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
