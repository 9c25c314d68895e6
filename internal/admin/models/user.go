package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

// Principal is the authenticated identity returned by /auth/login and /auth/me.
type Principal struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == common.RoleAdmin
}

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) EntityID() string    { return u.ID }
func (u User) DisplayName() string { return u.Name }

// UserPatch is the editable subset of a user. Nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (p UserPatch) Validate() error {
	if err := requireNonEmpty("name", p.Name); err != nil {
		return err
	}
	if p.Email != nil && !strings.Contains(*p.Email, "@") {
		return validationErr("email %q is not valid", *p.Email)
	}
	if p.Role != nil && *p.Role != common.RoleUser && *p.Role != common.RoleAdmin {
		return validationErr("role must be %q or %q", common.RoleUser, common.RoleAdmin)
	}
	return nil
}
