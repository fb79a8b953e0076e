package event

import (
	"context"
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/club"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type EventService struct {
	db              *gorm.DB
	eventRepository *EventRepository
	clubRepository  *club.ClubRepository
}

func NewEventService(db *gorm.DB, eventRepository *EventRepository, clubRepository *club.ClubRepository) *EventService {
	return &EventService{
		db:              db,
		eventRepository: eventRepository,
		clubRepository:  clubRepository,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, request *CreateEventRequest, caller sharedContext.Caller) (*EventResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*EventResponse, error) {
		owner, err := s.clubRepository.FindByID(ctx, tx, request.ClubID)
		if err != nil {
			return nil, fmt.Errorf("클럽 조회 실패: %w", err)
		}
		if owner == nil {
			return nil, fmt.Errorf("clubID=%d: %w", request.ClubID, club.ErrClubNotFound)
		}

		event := request.ToModel()
		if err := s.eventRepository.Create(ctx, tx, event, caller.ActorID()); err != nil {
			return nil, fmt.Errorf("이벤트 생성 실패: %w", err)
		}

		logger.FromContext(ctx).Info("이벤트 생성",
			"event_id", event.ID,
			"club_id", event.ClubID,
			"type", event.Type,
			"user_id", caller.UserID,
		)
		return NewEventResponse(event), nil
	})
}

func (s *EventService) GetEvent(ctx context.Context, id uint32) (*EventResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*EventResponse, error) {
		event, err := s.eventRepository.FindByID(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("이벤트 조회 실패: %w", err)
		}
		if event == nil {
			return nil, fmt.Errorf("eventID=%d: %w", id, ErrEventNotFound)
		}
		return NewEventResponse(event), nil
	})
}

func (s *EventService) ListEvents(ctx context.Context, filter ListFilter) (*EventListResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*EventListResponse, error) {
		events, total, err := s.eventRepository.List(ctx, tx, filter)
		if err != nil {
			return nil, fmt.Errorf("이벤트 목록 조회 실패: %w", err)
		}

		responses := make([]*EventResponse, 0, len(events))
		for i := range events {
			responses = append(responses, NewEventResponse(&events[i]))
		}

		return &EventListResponse{Events: responses, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
	})
}
