package entities

import "parc-info/pkg/types"

type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`

	types.BaseEntity
}
