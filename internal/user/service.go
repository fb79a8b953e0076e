package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fussballmanager/go-api-server/internal/config"
	"github.com/fussballmanager/go-api-server/internal/member"
	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db               *gorm.DB
	userRepository   *UserRepository
	memberRepository *member.MemberRepository
}

func NewUserService(db *gorm.DB, userRepository *UserRepository, memberRepository *member.MemberRepository) *UserService {
	return &UserService{
		db:               db,
		userRepository:   userRepository,
		memberRepository: memberRepository,
	}
}

func (s *UserService) GetMe(ctx context.Context, caller sharedContext.Caller) (*UserResponse, error) {
	id, err := parseUserID(caller.UserID)
	if err != nil {
		return nil, err
	}

	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*UserResponse, error) {
		user, err := s.userRepository.FindByID(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("사용자 조회 실패: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("userID=%d: %w", id, ErrUserNotFound)
		}
		return NewUserResponse(user), nil
	})
}

// UpdateAccess sets the roles, team and linked member of a user. The new values take effect at the user's next login.
func (s *UserService) UpdateAccess(ctx context.Context, userID uint32, request *UpdateAccessRequest, caller sharedContext.Caller) (*UserResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*UserResponse, error) {
		user, err := s.userRepository.FindByID(ctx, tx, userID)
		if err != nil {
			return nil, fmt.Errorf("사용자 조회 실패: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("userID=%d: %w", userID, ErrUserNotFound)
		}

		if request.MemberID != nil {
			linked, err := s.memberRepository.FindByID(ctx, tx, *request.MemberID)
			if err != nil {
				return nil, fmt.Errorf("회원 조회 실패: %w", err)
			}
			if linked == nil {
				return nil, fmt.Errorf("memberID=%s: %w", *request.MemberID, member.ErrMemberNotFound)
			}
		}

		user.Roles = model.NewRoleSet(request.Roles...)
		user.Team = request.Team
		user.MemberID = request.MemberID

		if err := s.userRepository.UpdateAccess(ctx, tx, user, caller.ActorID()); err != nil {
			return nil, fmt.Errorf("사용자 권한 변경 실패: %w", err)
		}

		logger.FromContext(ctx).Info("사용자 권한 변경",
			"user_id", userID,
			"roles", user.Roles.Strings(),
			"by", caller.UserID,
		)
		return NewUserResponse(user), nil
	})
}

// EnsureAdmin creates the configured admin account on first start, or grants the admin role to an existing one.
func (s *UserService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.userRepository.FindByEmail(ctx, tx, cfg.Email)
		if err != nil {
			return fmt.Errorf("관리자 조회 실패: %w", err)
		}

		if existing != nil {
			if existing.Roles.Has(model.RoleAdmin) {
				return nil
			}
			existing.Roles = model.NewRoleSet(append(existing.Roles.Strings(), string(model.RoleAdmin))...)
			if err := s.userRepository.UpdateAccess(ctx, tx, existing, nil); err != nil {
				return fmt.Errorf("관리자 권한 부여 실패: %w", err)
			}
			log.Info("기존 사용자에게 관리자 권한 부여", "email", logger.MaskEmail(cfg.Email))
			return nil
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		admin := model.NewUser(cfg.Email, string(hashedPassword))
		admin.Roles = model.RoleSet{model.RoleAdmin}
		if err := s.userRepository.Create(ctx, tx, admin); err != nil {
			return fmt.Errorf("관리자 생성 실패: %w", err)
		}

		log.Info("관리자 계정 생성", "email", logger.MaskEmail(cfg.Email))
		return nil
	})
}

func parseUserID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("userID=%q: %w", raw, ErrUserNotFound)
	}
	return uint32(id), nil
}
