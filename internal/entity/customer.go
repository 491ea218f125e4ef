package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer account for data transfer between layers.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
