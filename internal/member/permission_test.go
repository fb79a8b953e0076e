package member

import (
	"context"
	"testing"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	target := &model.Member{ID: "member-a", Team: testutil.IntPtr(1)}
	teamless := &model.Member{ID: "member-b"}

	testCases := []struct {
		name     string
		caller   *sharedContext.Caller
		target   *model.Member
		required []model.Role
		expected error
	}{
		{name: "admin acts on anyone", caller: caller(nil, nil, model.RoleAdmin), target: teamless, required: RolesForDelete},
		{name: "coach of same team", caller: caller(testutil.IntPtr(1), nil, model.RoleCoach), target: target, required: RolesForUpdate},
		{name: "coach of other team", caller: caller(testutil.IntPtr(2), nil, model.RoleCoach), target: target, required: RolesForUpdate, expected: ErrMemberAccessDenied},
		{name: "coach without team", caller: caller(nil, nil, model.RoleCoach), target: teamless, required: RolesForUpdate, expected: ErrMemberAccessDenied},
		{name: "coach cannot delete", caller: caller(testutil.IntPtr(1), nil, model.RoleCoach), target: target, required: RolesForDelete, expected: ErrInsufficientRole},
		{name: "no roles", caller: caller(nil, nil), target: target, required: RolesForUpdate, expected: ErrInsufficientRole},
		{name: "player on own record", caller: caller(nil, testutil.StringPtr("member-a"), model.RolePlayer), target: target, required: []model.Role{model.RolePlayer}},
		{name: "player on other record", caller: caller(nil, testutil.StringPtr("member-z"), model.RolePlayer), target: target, required: []model.Role{model.RolePlayer, model.RoleParent}, expected: ErrMemberAccessDenied},
		{name: "parent without linked member", caller: caller(nil, nil, model.RoleParent), target: target, required: []model.Role{model.RoleParent}, expected: ErrMemberAccessDenied},
		{name: "player role does not satisfy coach requirement", caller: caller(nil, testutil.StringPtr("member-a"), model.RolePlayer), target: target, required: RolesForUpdate, expected: ErrInsufficientRole},
		{name: "held but not required role grants nothing", caller: caller(testutil.IntPtr(1), testutil.StringPtr("member-z"), model.RoleCoach, model.RolePlayer), target: target, required: []model.Role{model.RolePlayer}, expected: ErrMemberAccessDenied},
		{name: "any granted role suffices", caller: caller(testutil.IntPtr(9), testutil.StringPtr("member-a"), model.RoleCoach, model.RolePlayer), target: target, required: []model.Role{model.RoleCoach, model.RolePlayer}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(*tc.caller, tc.target, tc.required)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateMemberPermissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewMemberService(db, NewMemberRepository())
	ctx := context.Background()
	a := seed(t, db, 0, "Anna", "Adler", nil, testutil.IntPtr(1), "player")
	b := seed(t, db, 1, "Bert", "Bauer", nil, testutil.IntPtr(1), "player")

	t.Run("missing member is not found", func(t *testing.T) {
		_, err := service.ValidateMemberPermissions(ctx, db, "missing", RolesForDelete, *caller(nil, nil, model.RoleAdmin))
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("player targeting another member is forbidden", func(t *testing.T) {
		_, err := service.ValidateMemberPermissions(ctx, db, b.ID, []model.Role{model.RolePlayer}, *caller(nil, &a.ID, model.RolePlayer))
		assert.ErrorIs(t, err, ErrMemberAccessDenied)
	})

	t.Run("returns the resolved member", func(t *testing.T) {
		member, err := service.ValidateMemberPermissions(ctx, db, a.ID, RolesForUpdate, *caller(testutil.IntPtr(1), nil, model.RoleCoach))
		require.NoError(t, err)
		assert.Equal(t, a.ID, member.ID)
	})
}

func caller(team *int, memberID *string, roles ...model.Role) *sharedContext.Caller {
	return testutil.NewCaller("42", team, memberID, roles...)
}
