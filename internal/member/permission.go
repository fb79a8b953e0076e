package member

import (
	"fmt"

	"github.com/fussballmanager/go-api-server/internal/model"
	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
)

var (
	// RolesForUpdate may edit a member within their scope
	RolesForUpdate = []model.Role{model.RoleAdmin, model.RoleCoach}
	// RolesForDelete may soft delete or restore a member
	RolesForDelete = []model.Role{model.RoleAdmin}
)

// Authorize decides whether caller may act on target given the roles the operation requires.
// Only roles that are both held and required grant scope:
// admin reaches every member, coach reaches members of the same team,
// player and parent reach only their own member record.
func Authorize(caller sharedContext.Caller, target *model.Member, required []model.Role) error {
	granted := make([]model.Role, 0, len(required))
	for _, r := range required {
		if caller.Roles.Has(r) {
			granted = append(granted, r)
		}
	}

	if len(granted) == 0 {
		return fmt.Errorf("caller=%s roles=%v required=%v: %w", caller.UserID, caller.Roles, required, ErrInsufficientRole)
	}

	for _, r := range granted {
		if inScope(caller, target, r) {
			return nil
		}
	}

	return fmt.Errorf("caller=%s member=%s: %w", caller.UserID, target.ID, ErrMemberAccessDenied)
}

func inScope(caller sharedContext.Caller, target *model.Member, role model.Role) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleCoach:
		return caller.Team != nil && target.Team != nil && *caller.Team == *target.Team
	case model.RolePlayer, model.RoleParent:
		return caller.MemberID != nil && *caller.MemberID == target.ID
	default:
		return false
	}
}
