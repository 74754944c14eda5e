package forms

import (
	"parc-info/internal/dto"
)

var roleValues = []string{"admin", "technicien", "utilisateur"}

type UserForm struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
}

func (f UserForm) Validate() Errors {
	errs := Errors{}
	requireEmail(errs, "email", f.Email)
	if len(f.Password) > 0 && len(f.Password) < 6 {
		errs.add("password", "au moins 6 caractères")
	}
	requireEnum(errs, "role", f.Role, roleValues)
	return errs.OrNil()
}

func (f UserForm) Payload() dto.CreateUserDTO {
	return dto.CreateUserDTO{
		Email:     f.Email,
		Password:  f.Password,
		FirstName: NormalizeOptional(f.FirstName),
		LastName:  NormalizeOptional(f.LastName),
		Role:      f.Role,
		IsActive:  f.IsActive,
	}
}
