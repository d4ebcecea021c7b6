package auth

import (
	"slices"

	"rental-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

type Permission string

const (
	PermBookingsOwn    Permission = "bookings:own"
	PermBookingsManage Permission = "bookings:manage"
	PermVehiclesManage Permission = "vehicles:manage"
	PermPaymentsManage Permission = "payments:manage"
	PermAuditRead      Permission = "audit:read"
)

var rolePermissions = map[user.Role][]Permission{
	user.RoleCustomer: {PermBookingsOwn},
	user.RoleStaff:    {PermBookingsOwn, PermBookingsManage, PermVehiclesManage, PermPaymentsManage},
	user.RoleAdmin:    {PermBookingsOwn, PermBookingsManage, PermVehiclesManage, PermPaymentsManage, PermAuditRead},
}

// Context identifies the caller of a usecase. It is built once at the request boundary
// and passed explicitly into every command and query.
type Context struct {
	UserID      uuid.UUID
	Role        user.Role
	Permissions []Permission
}

func NewContext(userID uuid.UUID, role user.Role) Context {
	return Context{
		UserID:      userID,
		Role:        role,
		Permissions: slices.Clone(rolePermissions[role]),
	}
}

// SystemContext is used by background jobs; it has no user and every permission.
func SystemContext() Context {
	return Context{Role: user.RoleAdmin, Permissions: slices.Clone(rolePermissions[user.RoleAdmin])}
}

func (c Context) Has(p Permission) bool {
	return slices.Contains(c.Permissions, p)
}

func (c Context) IsAuthenticated() bool {
	return c.Role.IsValid()
}

// CanActFor reports whether the caller may read or modify data owned by ownerID.
func (c Context) CanActFor(ownerID uuid.UUID) bool {
	if c.Has(PermBookingsManage) {
		return true
	}
	return c.Has(PermBookingsOwn) && c.UserID != uuid.Nil && c.UserID == ownerID
}

// ActorID is the audit actor; nil for system calls.
func (c Context) ActorID() *uuid.UUID {
	if c.UserID == uuid.Nil {
		return nil
	}
	id := c.UserID
	return &id
}
