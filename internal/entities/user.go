package entities

import (
	"github.com/aarondl/null/v8"

	"parc-info/internal/authz"
	"parc-info/pkg/types"
)

type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FirstName    null.String `json:"firstName"`
	LastName     null.String `json:"lastName"`
	Role         authz.Role  `json:"role"`
	IsActive     bool        `json:"isActive"`

	types.BaseEntity
}
