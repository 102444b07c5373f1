package model

import (
	"fmt"
	"time"
)

// RoleKind enumerates capability grants a user can hold.
type RoleKind string

const (
	RoleDiner      RoleKind = "diner"
	RoleFranchisee RoleKind = "franchisee"
	RoleAdmin      RoleKind = "admin"
)

// ParseRoleKind validates a stored role name.
func ParseRoleKind(s string) (RoleKind, error) {
	switch RoleKind(s) {
	case RoleDiner, RoleFranchisee, RoleAdmin:
		return RoleKind(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Role is a role grant, optionally scoped to a resource such as a franchise.
// ObjectID is zero for unscoped roles.
type Role struct {
	Kind     RoleKind
	ObjectID int64
}

// Scoped reports whether the role is bound to a specific object.
func (r Role) Scoped() bool {
	return r.ObjectID != 0
}

// User represents a registered account of the pizza service.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
}

// HasRole reports whether the user holds a role of the given kind regardless of scope.
func (u *User) HasRole(kind RoleKind) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Kind == kind {
			return true
		}
	}
	return false
}

// HasScopedRole reports whether the user holds kind scoped to objectID.
func (u *User) HasScopedRole(kind RoleKind, objectID int64) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Kind == kind && r.ObjectID == objectID {
			return true
		}
	}
	return false
}
