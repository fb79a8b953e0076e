package member

import (
	"context"
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// ValidateMemberPermissions resolves memberID and authorizes caller against it. It does not write.
func (s *MemberService) ValidateMemberPermissions(ctx context.Context, db *gorm.DB, memberID string, required []model.Role, caller sharedContext.Caller) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("memberID=%s: %w", memberID, ErrMemberNotFound)
	}

	if err := Authorize(caller, member, required); err != nil {
		logger.FromContext(ctx).Warn("회원 권한 거부",
			"member_id", memberID,
			"user_id", caller.UserID,
			"error", err.Error(),
		)
		return nil, err
	}

	return member, nil
}

func (s *MemberService) CreateMember(ctx context.Context, request *CreateMemberRequest, caller sharedContext.Caller) (*MemberResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*MemberResponse, error) {
		if request.Email != nil {
			exists, err := s.memberRepository.EmailExists(ctx, tx, *request.Email, "")
			if err != nil {
				return nil, fmt.Errorf("이메일 중복 확인 실패: %w", err)
			}
			if exists {
				return nil, fmt.Errorf("email=%s: %w", logger.MaskEmail(*request.Email), ErrEmailAlreadyExists)
			}
		}

		member := request.ToModel()
		if err := s.memberRepository.Create(ctx, tx, member, caller.ActorID()); err != nil {
			return nil, err
		}

		logger.FromContext(ctx).Info("회원 생성", "member_id", member.ID, "user_id", caller.UserID)
		return NewMemberResponse(member), nil
	})
}

func (s *MemberService) ListMembers(ctx context.Context, filter ListFilter) (*MemberListResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*MemberListResponse, error) {
		members, total, err := s.memberRepository.List(ctx, tx, filter)
		if err != nil {
			return nil, err
		}

		return &MemberListResponse{
			Members: newMemberResponses(members),
			Total:   total,
			Limit:   filter.Limit,
			Offset:  filter.Offset,
		}, nil
	})
}

func (s *MemberService) GetMember(ctx context.Context, memberID string) (*MemberResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*MemberResponse, error) {
		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			return nil, fmt.Errorf("회원 조회 실패: %w", err)
		}
		if member == nil {
			return nil, fmt.Errorf("memberID=%s: %w", memberID, ErrMemberNotFound)
		}
		return NewMemberResponse(member), nil
	})
}

// UpdateMember applies a merge patch. Status is rejected here; it only moves through delete and restore.
func (s *MemberService) UpdateMember(ctx context.Context, memberID string, request *UpdateMemberRequest, nulls map[string]bool, caller sharedContext.Caller) (*MemberResponse, error) {
	if request.Status != nil || nulls["status"] {
		return nil, fmt.Errorf("memberID=%s: %w", memberID, ErrStatusNotEditable)
	}

	patch := request.ToPatch(nulls)

	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*MemberResponse, error) {
		current, err := s.ValidateMemberPermissions(ctx, tx, memberID, RolesForUpdate, caller)
		if err != nil {
			return nil, err
		}

		if patch.Email.Set && patch.Email.Value != nil && emailChanged(current, *patch.Email.Value) {
			exists, err := s.memberRepository.EmailExists(ctx, tx, *patch.Email.Value, memberID)
			if err != nil {
				return nil, fmt.Errorf("이메일 중복 확인 실패: %w", err)
			}
			if exists {
				return nil, fmt.Errorf("email=%s: %w", logger.MaskEmail(*patch.Email.Value), ErrEmailAlreadyExists)
			}
		}

		updated, err := s.memberRepository.Update(ctx, tx, memberID, patch, caller.ActorID())
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, fmt.Errorf("memberID=%s: %w", memberID, ErrMemberNotFound)
		}

		logger.FromContext(ctx).Info("회원 수정", "member_id", memberID, "user_id", caller.UserID)
		return NewMemberResponse(updated), nil
	})
}

func emailChanged(current *model.Member, email string) bool {
	key := model.EmailKey(&email)
	if current.EmailKey == nil || key == nil {
		return key != current.EmailKey
	}
	return *key != *current.EmailKey
}

// DeleteMember soft deletes; the record stays readable with status inactive
func (s *MemberService) DeleteMember(ctx context.Context, memberID string, caller sharedContext.Caller) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.ValidateMemberPermissions(ctx, tx, memberID, RolesForDelete, caller); err != nil {
			return err
		}

		ok, err := s.memberRepository.SoftDelete(ctx, tx, memberID, caller.ActorID())
		if err != nil {
			return fmt.Errorf("회원 삭제 실패: %w", err)
		}
		if !ok {
			return fmt.Errorf("memberID=%s: %w", memberID, ErrMemberNotFound)
		}

		logger.FromContext(ctx).Info("회원 비활성화", "member_id", memberID, "user_id", caller.UserID)
		return nil
	})
}

func (s *MemberService) RestoreMember(ctx context.Context, memberID string, caller sharedContext.Caller) (*MemberResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*MemberResponse, error) {
		if _, err := s.ValidateMemberPermissions(ctx, tx, memberID, RolesForDelete, caller); err != nil {
			return nil, err
		}

		ok, err := s.memberRepository.Restore(ctx, tx, memberID, caller.ActorID())
		if err != nil {
			return nil, fmt.Errorf("회원 복구 실패: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("memberID=%s: %w", memberID, ErrMemberNotFound)
		}

		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			return nil, fmt.Errorf("회원 조회 실패: %w", err)
		}

		logger.FromContext(ctx).Info("회원 복구", "member_id", memberID, "user_id", caller.UserID)
		return NewMemberResponse(member), nil
	})
}

func (s *MemberService) ListTeamMembers(ctx context.Context, team int, status *model.MemberStatus) (*TeamMembersResponse, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*TeamMembersResponse, error) {
		members, err := s.memberRepository.FindByTeam(ctx, tx, team, status)
		if err != nil {
			return nil, fmt.Errorf("팀 회원 조회 실패: %w", err)
		}
		return &TeamMembersResponse{Team: team, Members: newMemberResponses(members)}, nil
	})
}
