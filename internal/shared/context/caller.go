package context

import (
	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/shared/logger"
	"github.com/fussballmanager/go-api-server/internal/shared/token"

	sharedError "github.com/fussballmanager/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// CallerKey stores the authenticated Caller in the gin context
const CallerKey = "caller"

// Caller is the authenticated identity behind a request
type Caller struct {
	UserID   string
	Email    string
	Roles    model.RoleSet
	Team     *int
	MemberID *string
}

// NewCaller builds a Caller from a token identity, dropping unknown role tags
func NewCaller(identity token.Identity) Caller {
	roles := make([]string, 0, len(identity.Roles))
	for _, r := range identity.Roles {
		if model.Role(r).IsValid() {
			roles = append(roles, r)
		}
	}

	return Caller{
		UserID:   identity.UserID,
		Email:    identity.Email,
		Roles:    model.NewRoleSet(roles...),
		Team:     identity.Team,
		MemberID: identity.MemberID,
	}
}

// HasAnyRole reports whether the caller holds at least one of roles
func (c Caller) HasAnyRole(roles ...model.Role) bool {
	for _, r := range roles {
		if c.Roles.Has(r) {
			return true
		}
	}
	return false
}

// ActorID returns the caller's user id for audit columns
func (c Caller) ActorID() *string {
	if c.UserID == "" {
		return nil
	}
	id := c.UserID
	return &id
}

// SetCaller stores the caller on the gin context
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(CallerKey, caller)
}

func GetCaller(c *gin.Context) (Caller, bool) {
	value, exists := c.Get(CallerKey)
	if !exists {
		return Caller{}, false
	}

	caller, ok := value.(Caller)
	if !ok || caller.UserID == "" {
		return Caller{}, false
	}

	return caller, true
}

// RequireCaller retrieves the authenticated caller from the Gin context.
// If none is present, it sends the 401 response and aborts; callers just return on false.
func RequireCaller(c *gin.Context) (Caller, bool) {
	caller, ok := GetCaller(c)
	if !ok {
		c.JSON(sharedError.Unauthenticated.Status, sharedError.Unauthenticated)
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 caller가 존재하지 않습니다.")
		return Caller{}, false
	}
	return caller, true
}
