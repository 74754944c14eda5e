package types

import "time"

// BaseEntity — horodatage commun à toutes les tables.
type BaseEntity struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
