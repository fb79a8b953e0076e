package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fussballmanager/go-api-server/internal/auth"
	"github.com/fussballmanager/go-api-server/internal/model"
	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/fussballmanager/go-api-server/internal/shared/testutil"
	"github.com/fussballmanager/go-api-server/internal/shared/token"
	"github.com/fussballmanager/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *testutil.MockTokenManager) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mockTokenManager := testutil.NewMockTokenManager()
	authHandler := auth.NewAuthHandler(auth.NewAuthService(db, user.NewUserRepository(), mockTokenManager))

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	return router, db, mockTokenManager
}

func signup(email, password string) testutil.TestRequest {
	return testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body:   auth.SignupRequest{Email: email, Password: password},
	}
}

func TestSignup_Success(t *testing.T) {
	// Given
	router, db, _ := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, signup("Trainer@Club.de", "password123"))

	// Then
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response auth.SignupResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotZero(t, response.ID)
	assert.Equal(t, "trainer@club.de", response.Email)

	// Then: stored without roles and with a bcrypt hash
	stored, err := user.NewUserRepository().FindByEmail(context.Background(), db, "trainer@club.de")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.Roles)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Given
	router, _, _ := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, testutil.ExecuteRequest(t, router, signup("duplicate@club.de", "password123")).Code)

	// When: same address in another case
	recorder := testutil.ExecuteRequest(t, router, signup("Duplicate@club.de", "password456"))

	// Then
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "USER-002", errorResponse.Code)
}

func TestSignup_ValidationErrors(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name string
		body map[string]string
	}{
		{name: "Missing email", body: map[string]string{"password": "password123"}},
		{name: "Missing password", body: map[string]string{"email": "test@club.de"}},
		{name: "Invalid email", body: map[string]string{"email": "invalid-email-format", "password": "password123"}},
		{name: "Password too short", body: map[string]string{"email": "test@club.de", "password": "short"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/signup",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestLogin_IssuesTokensWithAccessScope(t *testing.T) {
	// Given: a coach linked to a member record
	router, db, mockTokenManager := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, testutil.ExecuteRequest(t, router, signup("coach@club.de", "password123")).Code)

	memberID := "0b8e9f1c-5d7a-4c3e-8a1b-2f6d9e0c4b7a"
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "coach@club.de").
		Updates(map[string]any{"roles": model.NewRoleSet("coach"), "team": 2, "member_id": memberID}).Error)

	var captured token.Identity
	mockTokenManager.GenerateAccessTokenFunc = func(identity token.Identity) (string, error) {
		captured = identity
		return "access", nil
	}

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: "COACH@club.de", Password: "password123"},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "access", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)

	assert.NotEmpty(t, captured.UserID)
	assert.Equal(t, "coach@club.de", captured.Email)
	assert.Equal(t, []string{"coach"}, captured.Roles)
	require.NotNil(t, captured.Team)
	assert.Equal(t, 2, *captured.Team)
	require.NotNil(t, captured.MemberID)
	assert.Equal(t, memberID, *captured.MemberID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, testutil.ExecuteRequest(t, router, signup("player@club.de", "password123")).Code)

	testCases := []auth.LoginRequest{
		{Email: "player@club.de", Password: "wrong-password"},
		{Email: "nobody@club.de", Password: "password123"},
	}

	for _, request := range testCases {
		t.Run(request.Email, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   request,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "AUTH-003", errorResponse.Code)
		})
	}
}
