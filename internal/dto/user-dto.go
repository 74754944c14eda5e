package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=6"`
	FirstName null.String `json:"firstName"`
	LastName  null.String `json:"lastName"`
	Role      string      `json:"role" validate:"required,oneof=admin technicien utilisateur"`
	IsActive  bool        `json:"isActive"`
}

type UpdateUserDTO struct {
	Email     string      `json:"email" validate:"required,email"`
	FirstName null.String `json:"firstName"`
	LastName  null.String `json:"lastName"`
	Role      string      `json:"role" validate:"required,oneof=admin technicien utilisateur"`
	IsActive  bool        `json:"isActive"`
	// Vide => mot de passe inchangé.
	Password string `json:"password" validate:"omitempty,min=6"`
}
