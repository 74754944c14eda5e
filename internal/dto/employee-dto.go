package dto

type CreateEmployeeDTO struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Position   string `json:"position" validate:"required"`
}

type UpdateEmployeeDTO = CreateEmployeeDTO
