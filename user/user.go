// Package user defines the staff model and category mutation rights.
package user

import (
	"context"
	"errors"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleDebitAdmin  Role = "debit_admin"
	RoleChequeAdmin Role = "cheque_admin"
	RolePINAdmin    Role = "pin_admin"
	RoleDPSAdmin    Role = "dps_admin"
	RoleUser        Role = "user"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	Username        string              `json:"username"`
	FullName        string              `json:"fullName"`
	Role            Role                `json:"role"`
	AllowedCategory *inventory.Category `json:"allowedCategory,omitempty"`
	ProfilePicture  string              `json:"profilePicture,omitempty"`
}

// CanMutate reports whether the user may change items of the given category.
// Super admins can touch everything, plain users nothing, and category
// admins only the category they were provisioned for.
func (u User) CanMutate(category inventory.Category) bool {
	switch u.Role {
	case RoleSuperAdmin:
		return true
	case RoleUser:
		return false
	default:
		return u.AllowedCategory != nil && *u.AllowedCategory == category
	}
}

// Credential keeps the current password alongside previously used ones so
// password rotation can reject reuse.
type Credential struct {
	Password          string   `json:"password"`
	PreviousPasswords []string `json:"previousPasswords,omitempty"`
}

// CredentialStore resolves a username to its stored credential.
type CredentialStore interface {
	Lookup(ctx context.Context, username string) (Credential, error)
}
