package models

import "time"

type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logo_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CarImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// CarListItem is the summary shape used on the listing page. PrimaryImage
// is nil when the car has no images at all.
type CarListItem struct {
	ID           string        `json:"id"`
	Brand        BrandResponse `json:"brand"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Price        string        `json:"price"`
	IsFeatured   bool          `json:"is_featured"`
	Status       string        `json:"status"`
	PrimaryImage *string       `json:"primary_image"`
	CreatedAt    time.Time     `json:"created_at"`
}

type CarListResponse struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []CarListItem `json:"results"`
}

type CarDetailResponse struct {
	ID          string             `json:"id"`
	Brand       BrandResponse      `json:"brand"`
	Model       string             `json:"model"`
	Year        int                `json:"year"`
	Price       string             `json:"price"`
	Description string             `json:"description"`
	IsFeatured  bool               `json:"is_featured"`
	Status      string             `json:"status"`
	Images      []CarImageResponse `json:"images"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type InquiryData struct {
	ID             string    `json:"id"`
	Car            string    `json:"car"`
	CollectorName  string    `json:"collector_name"`
	CollectorEmail string    `json:"collector_email"`
	CollectorPhone string    `json:"collector_phone"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

type InquiryCreatedResponse struct {
	Message string      `json:"message"`
	Data    InquiryData `json:"data"`
}

type InquiryListResponse struct {
	Count   int           `json:"count"`
	Results []InquiryData `json:"results"`
}

// AdminCarResponse exposes the full car row without the visibility predicate
// or the joined brand object.
type AdminCarResponse struct {
	ID          string    `json:"id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	IsFeatured  bool      `json:"is_featured"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
