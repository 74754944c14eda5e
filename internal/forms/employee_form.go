package forms

import "parc-info/internal/dto"

type EmployeeForm struct {
	Name       string
	Email      string
	Department string
	Position   string
}

func (f EmployeeForm) Validate() Errors {
	errs := Errors{}
	requireField(errs, "name", f.Name)
	requireEmail(errs, "email", f.Email)
	requireField(errs, "department", f.Department)
	requireField(errs, "position", f.Position)
	return errs.OrNil()
}

func (f EmployeeForm) Payload() dto.CreateEmployeeDTO {
	return dto.CreateEmployeeDTO{
		Name:       f.Name,
		Email:      f.Email,
		Department: f.Department,
		Position:   f.Position,
	}
}
