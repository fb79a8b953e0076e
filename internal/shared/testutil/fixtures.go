package testutil

import (
	"testing"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"gorm.io/gorm"
)

func IntPtr(v int) *int { return &v }

func StringPtr(v string) *string { return &v }

// NewCaller builds an authenticated caller holding roles
func NewCaller(userID string, team *int, memberID *string, roles ...model.Role) *sharedContext.Caller {
	tags := make([]string, 0, len(roles))
	for _, r := range roles {
		tags = append(tags, string(r))
	}
	return &sharedContext.Caller{
		UserID:   userID,
		Email:    "user" + userID + "@club.de",
		Roles:    model.NewRoleSet(tags...),
		Team:     team,
		MemberID: memberID,
	}
}

// SeedMember inserts m and fails the test on error
func SeedMember(t *testing.T, db *gorm.DB, m *model.Member) *model.Member {
	t.Helper()

	m.SetEmail(m.Email)
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("Failed to seed member: %v", err)
	}
	return m
}
