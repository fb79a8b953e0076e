package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fussballmanager/go-api-server/internal/model"
	"gorm.io/gorm"
)

// ListFilter narrows List. Nil and empty fields do not filter.
type ListFilter struct {
	Role   *model.Role
	Team   *int
	Status *model.MemberStatus
	Query  string
	Limit  int
	Offset int
}

// Nullable is a patch value for an optional column. Set with a nil Value clears the column.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func nullableOf[T any](value *T, null bool) Nullable[T] {
	if value == nil && !null {
		return Nullable[T]{}
	}
	return Nullable[T]{Set: true, Value: value}
}

// MemberPatch carries the fields a merge patch supplies; nil pointers and unset Nullables are left untouched
type MemberPatch struct {
	FirstName *string
	LastName  *string
	Email     Nullable[string]
	Birthdate Nullable[time.Time]
	Roles     *model.RoleSet
	Team      Nullable[int]
	Notes     Nullable[string]
}

// MemberRepository is stateless; the caller passes the *gorm.DB (usually a transaction) to use
type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByID returns nil without error when no member has id
func (r *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", id).Take(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail matches the whole address case-insensitively
func (r *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	key := model.NormalizeEmail(email)
	if key == "" {
		return nil, nil
	}

	var member model.Member
	err := db.WithContext(ctx).Where("email_key = ?", key).Take(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns one page of members matching filter, newest first, and the total match count before paging
func (r *MemberRepository) List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]model.Member, int64, error) {
	query := applyFilter(db.WithContext(ctx).Model(&model.Member{}), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	members := []model.Member{}
	if total == 0 || int64(filter.Offset) >= total {
		return members, total, nil
	}

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}

	return members, total, nil
}

func applyFilter(tx *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Role != nil {
		tx = tx.Where("roles LIKE ?", model.RoleLikePattern(*filter.Role))
	}
	if filter.Team != nil {
		tx = tx.Where("team = ?", *filter.Team)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		tx = tx.Where(
			`(LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR email_key LIKE ? ESCAPE '\' OR LOWER(first_name || ' ' || last_name) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern, pattern,
		)
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Create inserts member as created by actorID. An email_key collision surfaces as ErrEmailAlreadyExists.
func (r *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member, actorID *string) error {
	if member.Status == "" {
		member.Status = model.MemberStatusActive
	}
	member.SetEmail(member.Email)
	member.CreatedBy = actorID
	member.UpdatedAt = nil
	member.UpdatedBy = nil

	if err := db.WithContext(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create member: %w", ErrEmailAlreadyExists)
		}
		return err
	}
	return nil
}

// Update applies patch and stamps updated_at/updated_by even when patch is empty.
// Returns nil without error when no member has id. Email uniqueness is left to the caller apart from the store index.
func (r *MemberRepository) Update(ctx context.Context, db *gorm.DB, id string, patch MemberPatch, actorID *string) (*model.Member, error) {
	updates := map[string]any{
		"updated_at": db.NowFunc(),
		"updated_by": actorID,
	}

	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Email.Set {
		updates["email"] = patch.Email.Value
		updates["email_key"] = model.EmailKey(patch.Email.Value)
	}
	if patch.Birthdate.Set {
		updates["birthdate"] = patch.Birthdate.Value
	}
	if patch.Roles != nil {
		updates["roles"] = *patch.Roles
	}
	if patch.Team.Set {
		updates["team"] = patch.Team.Value
	}
	if patch.Notes.Set {
		updates["notes"] = patch.Notes.Value
	}

	updated, err := r.updateColumns(ctx, db, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("update member id=%s: %w", id, ErrEmailAlreadyExists)
		}
		return nil, err
	}
	if !updated {
		return nil, nil
	}

	return r.FindByID(ctx, db, id)
}

// SoftDelete marks the member inactive. Repeating it on an inactive member still reports true.
func (r *MemberRepository) SoftDelete(ctx context.Context, db *gorm.DB, id string, actorID *string) (bool, error) {
	return r.setStatus(ctx, db, id, model.MemberStatusInactive, actorID)
}

// Restore reactivates a soft-deleted member
func (r *MemberRepository) Restore(ctx context.Context, db *gorm.DB, id string, actorID *string) (bool, error) {
	return r.setStatus(ctx, db, id, model.MemberStatusActive, actorID)
}

func (r *MemberRepository) setStatus(ctx context.Context, db *gorm.DB, id string, status model.MemberStatus, actorID *string) (bool, error) {
	return r.updateColumns(ctx, db, id, map[string]any{
		"status":     status,
		"updated_at": db.NowFunc(),
		"updated_by": actorID,
	})
}

func (r *MemberRepository) updateColumns(ctx context.Context, db *gorm.DB, id string, updates map[string]any) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// HardDelete removes the row permanently
func (r *MemberRepository) HardDelete(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByTeam returns every member of team, optionally narrowed to one status
func (r *MemberRepository) FindByTeam(ctx context.Context, db *gorm.DB, team int, status *model.MemberStatus) ([]model.Member, error) {
	tx := db.WithContext(ctx).Where("team = ?", team)
	if status != nil {
		tx = tx.Where("status = ?", *status)
	}

	members := []model.Member{}
	if err := tx.Order("last_name ASC").Order("first_name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByRole returns every member holding role, ordered like FindByTeam
func (r *MemberRepository) FindByRole(ctx context.Context, db *gorm.DB, role model.Role) ([]model.Member, error) {
	members := []model.Member{}
	err := db.WithContext(ctx).
		Where("roles LIKE ?", model.RoleLikePattern(role)).
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// EmailExists checks every member regardless of status, skipping excludeID when set
func (r *MemberRepository) EmailExists(ctx context.Context, db *gorm.DB, email string, excludeID string) (bool, error) {
	key := model.NormalizeEmail(email)
	if key == "" {
		return false, nil
	}

	tx := db.WithContext(ctx).Model(&model.Member{}).Where("email_key = ?", key)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
