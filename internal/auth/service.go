package auth

import (
	"context"
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"github.com/fussballmanager/go-api-server/internal/shared/token"
	"github.com/fussballmanager/go-api-server/internal/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTypeBearer = "Bearer"

type AuthService struct {
	db             *gorm.DB
	userRepository *user.UserRepository
	tokenManager   token.Manager
}

func NewAuthService(db *gorm.DB, userRepository *user.UserRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		tokenManager:   tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find user by email
	found, err := a.userRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}
	if found == nil {
		log.Warn("로그인 실패 - email not found", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Generate JWT tokens carrying the access scope
	identity := identityOf(found)
	accessToken, err := a.tokenManager.GenerateAccessToken(identity)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(identity)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email), "user_id", identity.UserID)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	log := logger.FromContext(ctx)

	return database.InTransaction(ctx, a.db, func(tx *gorm.DB) (*SignupResponse, error) {
		exists, err := a.userRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("Failed to check user existence", "error", err)
			return nil, fmt.Errorf("check user existence: %w", err)
		}
		if exists {
			log.Warn("User already exists", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", user.ErrEmailAlreadyTaken)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return nil, fmt.Errorf("hash password: %w", err)
		}

		created := model.NewUser(request.Email, string(hashedPassword))
		if err := a.userRepository.Create(ctx, tx, created); err != nil {
			log.Error("Failed to create user", "error", err)
			return nil, fmt.Errorf("create user: %w", err)
		}

		log.Info("User created successfully", "email", logger.MaskEmail(request.Email), "user_id", created.ID)
		return &SignupResponse{ID: created.ID, Email: created.Email}, nil
	})
}

func identityOf(u *model.User) token.Identity {
	return token.Identity{
		UserID:   u.IDString(),
		Email:    u.Email,
		Roles:    u.Roles.Strings(),
		Team:     u.Team,
		MemberID: u.MemberID,
	}
}
