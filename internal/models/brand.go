package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID          uuid.UUID
	Name        string
	LogoURL     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
