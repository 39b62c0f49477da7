package models

import "github.com/shopspring/decimal"

// InquiryCreateRequest carries the raw contact-form body. Fields stay
// untyped strings so the validation pass can report every problem at once.
type InquiryCreateRequest struct {
	Car            string `json:"car"`
	CollectorName  string `json:"collector_name"`
	CollectorEmail string `json:"collector_email"`
	CollectorPhone string `json:"collector_phone"`
	Message        string `json:"message"`
}

type BrandRequest struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

type CarRequest struct {
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsFeatured  bool            `json:"is_featured"`
	Status      string          `json:"status"`
}

type CarImageRequest struct {
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}
