package club

import (
	"context"
	"fmt"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type ClubService struct {
	db             *gorm.DB
	clubRepository *ClubRepository
}

func NewClubService(db *gorm.DB, clubRepository *ClubRepository) *ClubService {
	return &ClubService{
		db:             db,
		clubRepository: clubRepository,
	}
}

func (s *ClubService) CreateClub(ctx context.Context, request *CreateClubRequest, caller sharedContext.Caller) (*ClubResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*ClubResponse, error) {
		club := request.ToModel()
		if err := s.clubRepository.Create(ctx, tx, club, caller.ActorID()); err != nil {
			return nil, fmt.Errorf("클럽 생성 실패: %w", err)
		}

		logger.FromContext(ctx).Info("클럽 생성", "club_id", club.ID, "user_id", caller.UserID)
		return NewClubResponse(club), nil
	})
}

func (s *ClubService) GetClub(ctx context.Context, id uint32) (*ClubResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*ClubResponse, error) {
		club, err := s.clubRepository.FindByID(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("클럽 조회 실패: %w", err)
		}
		if club == nil {
			return nil, fmt.Errorf("clubID=%d: %w", id, ErrClubNotFound)
		}
		return NewClubResponse(club), nil
	})
}

func (s *ClubService) ListClubs(ctx context.Context, query ListClubsQuery) (*ClubListResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*ClubListResponse, error) {
		clubs, total, err := s.clubRepository.List(ctx, tx, query.Limit, query.Offset)
		if err != nil {
			return nil, fmt.Errorf("클럽 목록 조회 실패: %w", err)
		}

		responses := make([]*ClubResponse, 0, len(clubs))
		for i := range clubs {
			responses = append(responses, NewClubResponse(&clubs[i]))
		}

		return &ClubListResponse{Clubs: responses, Total: total, Limit: query.Limit, Offset: query.Offset}, nil
	})
}
