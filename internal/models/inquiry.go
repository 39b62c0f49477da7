package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is an append-only contact-form submission tied to one car.
type Inquiry struct {
	ID             uuid.UUID
	CarID          uuid.UUID
	CollectorName  string
	CollectorEmail string
	CollectorPhone string
	Message        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
