package dto

import "github.com/aarondl/null/v8"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=6"`
	FirstName null.String `json:"firstName"`
	LastName  null.String `json:"lastName"`
}

type UpdateProfileDTO struct {
	FirstName null.String `json:"firstName"`
	LastName  null.String `json:"lastName"`
	Email     string      `json:"email" validate:"required,email"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
