// Package catalog holds the presentation rules for the public car listing:
// featured-flag parsing, primary-image derivation and page-link math.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"vintage-cars-backend/internal/models"
)

// PageSize is the fixed page size for the public car listing.
const PageSize = 20

// ParseFeatured interprets the featured query parameter: "true", "1" and
// "yes" (case-insensitive) select featured cars, any other token, the empty
// one included, selects non-featured ones. Callers decide whether the
// parameter is present at all.
func ParseFeatured(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// PrimaryImageURL picks the representative image from a car's images in
// display order: the first one flagged primary, else the first image, else
// nil. Several images may be flagged primary; the first wins.
func PrimaryImageURL(images []models.CarImage) *string {
	for _, img := range images {
		if img.IsPrimary {
			return &img.ImageURL
		}
	}
	if len(images) > 0 {
		return &images[0].ImageURL
	}
	return nil
}

// ParsePage reads the page query parameter, defaulting to 1 when absent.
// Non-numeric values and values below 1 are rejected.
func ParsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// PageCount is the number of pages a listing of count records spans. An
// empty listing still has a first page.
func PageCount(count int) int {
	if count <= PageSize {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// PageLink rewrites the request URL for the given page number, dropping the
// page parameter entirely for page 1. Used for the next/previous links.
func PageLink(base string, requestURL *url.URL, page int) string {
	u := *requestURL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return strings.TrimRight(base, "/") + u.Path + formatQuery(u.RawQuery)
}

// PageLinks computes next/previous links for a listing of count records at
// the fixed page size; absent links are nil.
func PageLinks(base string, requestURL *url.URL, page, count int) (next, previous *string) {
	if page*PageSize < count {
		n := PageLink(base, requestURL, page+1)
		next = &n
	}
	if page > 1 {
		p := PageLink(base, requestURL, page-1)
		previous = &p
	}
	return next, previous
}

func formatQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	return "?" + rawQuery
}
