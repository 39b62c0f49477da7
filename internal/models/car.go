package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Car statuses. Only active listings are visible on public read paths.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusArchived = "archived"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusSold, StatusArchived:
		return true
	}
	return false
}

type Car struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Model       string
	Year        int
	Price       decimal.Decimal
	Description string
	IsFeatured  bool
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CarWithBrand is a car row joined with its brand, as read lists need both.
type CarWithBrand struct {
	Car
	Brand Brand
}

type CarImage struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	ImageURL  string
	AltText   string
	IsPrimary bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
