package member

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, time.August, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, db *gorm.DB, i int, first, last string, email *string, team *int, roles ...string) *model.Member {
	t.Helper()
	return testutil.SeedMember(t, db, &model.Member{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Team:      team,
		Roles:     model.NewRoleSet(roles...),
		BaseEntity: model.BaseEntity{
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		},
	})
}

func TestRepository_CreateThenFindByID(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()

	birthdate := time.Date(2010, time.May, 4, 0, 0, 0, 0, time.UTC)
	member := &model.Member{
		FirstName: "Lena",
		LastName:  "Schmidt",
		Email:     testutil.StringPtr("Lena.Schmidt@Club.de"),
		Birthdate: &birthdate,
		Roles:     model.NewRoleSet("player", "parent", "player"),
		Team:      testutil.IntPtr(3),
		Notes:     testutil.StringPtr("left footed"),
	}

	// When
	require.NoError(t, repo.Create(ctx, db, member, testutil.StringPtr("7")))
	found, err := repo.FindByID(ctx, db, member.ID)

	// Then
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotEmpty(t, found.ID)
	assert.Equal(t, "Lena", found.FirstName)
	assert.Equal(t, "Schmidt", found.LastName)
	assert.Equal(t, "Lena.Schmidt@Club.de", *found.Email)
	assert.True(t, birthdate.Equal(*found.Birthdate))
	assert.Equal(t, model.RoleSet{model.RoleParent, model.RolePlayer}, found.Roles)
	assert.Equal(t, 3, *found.Team)
	assert.Equal(t, model.MemberStatusActive, found.Status)
	assert.Equal(t, "left footed", *found.Notes)
	assert.False(t, found.CreatedAt.IsZero())
	assert.Nil(t, found.UpdatedAt)
	assert.Nil(t, found.UpdatedBy)
	assert.Equal(t, "7", *found.CreatedBy)
}

func TestRepository_CreateKeepsExplicitStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()

	member := &model.Member{FirstName: "Tom", LastName: "Berg", Status: model.MemberStatusInactive}
	require.NoError(t, repo.Create(context.Background(), db, member, nil))

	found, err := repo.FindByID(context.Background(), db, member.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusInactive, found.Status)
	assert.Nil(t, found.CreatedBy)
}

func TestRepository_FindByID_MissReturnsNil(t *testing.T) {
	db := testutil.SetupTestDB(t)

	found, err := NewMemberRepository().FindByID(context.Background(), db, "3f0c8a52-0d51-4b8e-9f55-1f2b2d5b8f00")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_FindByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	seeded := seed(t, db, 0, "Jonas", "Weber", testutil.StringPtr("jonas@club.de"), nil)

	found, err := repo.FindByEmail(context.Background(), db, "JONAS@Club.DE")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, seeded.ID, found.ID)

	partial, err := repo.FindByEmail(context.Background(), db, "jonas@club")
	require.NoError(t, err)
	assert.Nil(t, partial)
}

func TestRepository_CreateDuplicateEmailIsConflict(t *testing.T) {
	// Given: member A with a@x.com
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, db, &model.Member{FirstName: "A", LastName: "One", Email: testutil.StringPtr("a@x.com")}, nil))

	// When: member B reuses the address in another case
	err := repo.Create(ctx, db, &model.Member{FirstName: "B", LastName: "Two", Email: testutil.StringPtr("A@X.com")}, nil)

	// Then: the unique index surfaces as a conflict
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRepository_EmailExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	member := seed(t, db, 0, "Foo", "Bar", testutil.StringPtr("foo@x.com"), nil)

	exists, err := repo.EmailExists(ctx, db, "FOO@X.com", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, db, "foo@x.com", member.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(ctx, db, "other@x.com", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_EmailExistsIgnoresStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	member := seed(t, db, 0, "Foo", "Bar", testutil.StringPtr("foo@x.com"), nil)

	_, err := repo.SoftDelete(ctx, db, member.ID, nil)
	require.NoError(t, err)

	exists, err := repo.EmailExists(ctx, db, "foo@x.com", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_ListWithoutFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	for i := 0; i < 7; i++ {
		seed(t, db, i, fmt.Sprintf("First%d", i), "Member", nil, nil)
	}

	testCases := []struct {
		limit, offset, expected int
	}{
		{limit: 50, offset: 0, expected: 7},
		{limit: 3, offset: 0, expected: 3},
		{limit: 3, offset: 6, expected: 1},
		{limit: 3, offset: 7, expected: 0},
		{limit: 3, offset: 100, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("limit=%d offset=%d", tc.limit, tc.offset), func(t *testing.T) {
			items, total, err := repo.List(context.Background(), db, ListFilter{Limit: tc.limit, Offset: tc.offset})
			require.NoError(t, err)
			assert.Equal(t, int64(7), total)
			assert.Len(t, items, tc.expected)
			assert.NotNil(t, items)
		})
	}
}

func TestRepository_ListNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	oldest := seed(t, db, 0, "Old", "Member", nil, nil)
	middle := seed(t, db, 1, "Mid", "Member", nil, nil)
	newest := seed(t, db, 2, "New", "Member", nil, nil)

	items, _, err := repo.List(context.Background(), db, ListFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestRepository_ListByTeam(t *testing.T) {
	// Given: 3 members in team 1, 2 in team 2
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	for i := 0; i < 3; i++ {
		seed(t, db, i, fmt.Sprintf("T1-%d", i), "Member", nil, testutil.IntPtr(1))
	}
	for i := 0; i < 2; i++ {
		seed(t, db, 10+i, fmt.Sprintf("T2-%d", i), "Member", nil, testutil.IntPtr(2))
	}

	// When
	items, total, err := repo.List(context.Background(), db, ListFilter{Team: testutil.IntPtr(1), Limit: 2})

	// Then
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)
	for _, m := range items {
		assert.Equal(t, 1, *m.Team)
	}
}

func TestRepository_ListFiltersCompose(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()

	seed(t, db, 0, "Anna", "Keller", testutil.StringPtr("anna@club.de"), testutil.IntPtr(1), "player")
	seed(t, db, 1, "Ben", "Keller", nil, testutil.IntPtr(1), "coach", "parent")
	seed(t, db, 2, "Carla", "Vogel", testutil.StringPtr("carla.keller@club.de"), testutil.IntPtr(2), "player")
	seed(t, db, 3, "Clara", "Neumann", nil, testutil.IntPtr(1), "admin")
	inactive := seed(t, db, 4, "Dirk", "Keller", nil, testutil.IntPtr(1), "player")
	_, err := repo.SoftDelete(ctx, db, inactive.ID, nil)
	require.NoError(t, err)

	player := model.RolePlayer
	coach := model.RoleCoach
	active := model.MemberStatusActive

	testCases := []struct {
		name     string
		filter   ListFilter
		expected []string
	}{
		{name: "role player", filter: ListFilter{Role: &player}, expected: []string{"Dirk", "Carla", "Anna"}},
		{name: "role coach", filter: ListFilter{Role: &coach}, expected: []string{"Ben"}},
		{name: "role and team", filter: ListFilter{Role: &player, Team: testutil.IntPtr(1)}, expected: []string{"Dirk", "Anna"}},
		{name: "role team and status", filter: ListFilter{Role: &player, Team: testutil.IntPtr(1), Status: &active}, expected: []string{"Anna"}},
		{name: "q matches last name or email", filter: ListFilter{Query: "KELLER"}, expected: []string{"Dirk", "Carla", "Ben", "Anna"}},
		{name: "q matches full name", filter: ListFilter{Query: "ben kel"}, expected: []string{"Ben"}},
		{name: "q with status", filter: ListFilter{Query: "keller", Status: &active, Team: testutil.IntPtr(1)}, expected: []string{"Ben", "Anna"}},
		{name: "q matches first name", filter: ListFilter{Query: "clar"}, expected: []string{"Clara"}},
		{name: "q no match", filter: ListFilter{Query: "zzz"}, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.filter.Limit = 50
			items, total, err := repo.List(ctx, db, tc.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(items))
			for _, m := range items {
				names = append(names, m.FirstName)
			}
			assert.Equal(t, tc.expected, names)
			assert.Equal(t, int64(len(tc.expected)), total)
		})
	}
}

func TestRepository_ListQueryWildcardsAreLiteral(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	seed(t, db, 0, "Marks", "Fan", nil, nil)
	seed(t, db, 1, "100%", "Fan", nil, nil)
	seed(t, db, 2, "Under_score", "Fan", nil, nil)

	items, total, err := repo.List(context.Background(), db, ListFilter{Query: "%", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "100%", items[0].FirstName)

	items, total, err = repo.List(context.Background(), db, ListFilter{Query: "r_s", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Under_score", items[0].FirstName)
}

func TestRepository_UpdateEmptyPatchOnlyStampsAudit(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	original := seed(t, db, 0, "Eva", "Lang", testutil.StringPtr("eva@club.de"), testutil.IntPtr(4), "player")

	// When
	updated, err := repo.Update(ctx, db, original.ID, MemberPatch{}, testutil.StringPtr("9"))

	// Then
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, original.FirstName, updated.FirstName)
	assert.Equal(t, original.LastName, updated.LastName)
	assert.Equal(t, *original.Email, *updated.Email)
	assert.Equal(t, *original.Team, *updated.Team)
	assert.Equal(t, original.Roles, updated.Roles)
	assert.Equal(t, original.Status, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "9", *updated.UpdatedBy)
}

func TestRepository_UpdateMergePatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	original := seed(t, db, 0, "Eva", "Lang", testutil.StringPtr("eva@club.de"), testutil.IntPtr(4), "player")

	roles := model.NewRoleSet("coach")
	updated, err := repo.Update(ctx, db, original.ID, MemberPatch{
		LastName: testutil.StringPtr("Lange"),
		Email:    Nullable[string]{Set: true, Value: testutil.StringPtr("Eva.Lange@Club.de")},
		Team:     Nullable[int]{Set: true},
		Roles:    &roles,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Eva", updated.FirstName)
	assert.Equal(t, "Lange", updated.LastName)
	assert.Equal(t, "Eva.Lange@Club.de", *updated.Email)
	assert.Equal(t, "eva.lange@club.de", *updated.EmailKey)
	assert.Nil(t, updated.Team)
	assert.Equal(t, model.RoleSet{model.RoleCoach}, updated.Roles)
}

func TestRepository_UpdateMissingReturnsNil(t *testing.T) {
	db := testutil.SetupTestDB(t)

	updated, err := NewMemberRepository().Update(context.Background(), db, "missing", MemberPatch{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRepository_SoftDeleteIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	member := seed(t, db, 0, "Paul", "Roth", nil, nil)

	for i := 0; i < 2; i++ {
		ok, err := repo.SoftDelete(ctx, db, member.ID, testutil.StringPtr("1"))
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.FindByID(ctx, db, member.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MemberStatusInactive, found.Status)
		assert.NotNil(t, found.UpdatedAt)
		assert.Equal(t, "1", *found.UpdatedBy)
	}

	ok, err := repo.SoftDelete(ctx, db, "missing", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Restore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	member := seed(t, db, 0, "Paul", "Roth", nil, nil)

	_, err := repo.SoftDelete(ctx, db, member.ID, nil)
	require.NoError(t, err)
	ok, err := repo.Restore(ctx, db, member.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.FindByID(ctx, db, member.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, found.Status)
}

func TestRepository_HardDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	member := seed(t, db, 0, "Paul", "Roth", nil, nil)

	ok, err := repo.HardDelete(ctx, db, member.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.FindByID(ctx, db, member.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	ok, err = repo.HardDelete(ctx, db, member.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_FindByTeamAndRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMemberRepository()
	ctx := context.Background()
	seed(t, db, 0, "Anna", "Adler", nil, testutil.IntPtr(5), "player")
	gone := seed(t, db, 1, "Bert", "Bauer", nil, testutil.IntPtr(5), "coach")
	seed(t, db, 2, "Cleo", "Conrad", nil, testutil.IntPtr(6), "player", "parent")
	_, err := repo.SoftDelete(ctx, db, gone.ID, nil)
	require.NoError(t, err)

	team, err := repo.FindByTeam(ctx, db, 5, nil)
	require.NoError(t, err)
	assert.Len(t, team, 2)

	active := model.MemberStatusActive
	team, err = repo.FindByTeam(ctx, db, 5, &active)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Anna", team[0].FirstName)

	players, err := repo.FindByRole(ctx, db, model.RolePlayer)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	parents, err := repo.FindByRole(ctx, db, model.RoleParent)
	require.NoError(t, err)
	require.Len(t, parents, 1)
	assert.Equal(t, "Cleo", parents[0].FirstName)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
