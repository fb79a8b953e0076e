package model

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"
)

// Role is a club role tag shared by members and users.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
	RoleParent Role = "parent"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RolePlayer, RoleParent:
		return true
	}
	return false
}

const roleDelimiter = ","

// RoleSet is an unordered set of roles.
// Stored as a delimiter-wrapped string (",coach,player,") so membership is a portable LIKE predicate.
type RoleSet []Role

// NewRoleSet deduplicates and sorts the given tags.
func NewRoleSet(tags ...string) RoleSet {
	seen := make(map[Role]struct{}, len(tags))
	set := make(RoleSet, 0, len(tags))
	for _, tag := range tags {
		r := Role(strings.TrimSpace(tag))
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		set = append(set, r)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}

// Has reports whether the set contains r.
func (s RoleSet) Has(r Role) bool {
	for _, role := range s {
		if role == r {
			return true
		}
	}
	return false
}

// Strings returns the roles as plain strings; never nil.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// RoleLikePattern returns the LIKE pattern matching rows whose RoleSet contains r.
func RoleLikePattern(r Role) string {
	return "%" + roleDelimiter + string(r) + roleDelimiter + "%"
}

// Scan implements the sql.Scanner interface for RoleSet
func (s *RoleSet) Scan(value interface{}) error {
	if value == nil {
		*s = RoleSet{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into RoleSet", value)
	}

	*s = NewRoleSet(strings.Split(raw, roleDelimiter)...)
	return nil
}

// Value implements the driver.Valuer interface for RoleSet
func (s RoleSet) Value() (driver.Value, error) {
	normalized := NewRoleSet(s.Strings()...)
	if len(normalized) == 0 {
		return "", nil
	}
	return roleDelimiter + strings.Join(normalized.Strings(), roleDelimiter) + roleDelimiter, nil
}
