// Package validation shapes and checks inbound inquiry submissions. Every
// field is validated in one pass and all failures are reported together,
// keyed by field name.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"vintage-cars-backend/internal/models"
)

const (
	MessageMinLength = 10
	MessageMaxLength = 5000
)

const msgRequired = "This field is required."

// Errors maps a field name to its human-readable failure messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// CarResolver reports whether a car with the given id exists, in any status.
type CarResolver func(carID uuid.UUID) (bool, error)

// Inquiry is a fully validated, normalized submission ready to persist.
type Inquiry struct {
	CarID          uuid.UUID
	CollectorName  string
	CollectorEmail string
	CollectorPhone string
	Message        string
}

// ValidateInquiry checks every field of a submission and returns either the
// normalized result or the collected field errors. The returned error is
// reserved for store failures during car resolution.
func ValidateInquiry(req models.InquiryCreateRequest, carExists CarResolver) (*Inquiry, Errors, error) {
	fieldErrors := Errors{}
	out := &Inquiry{}

	rawCar := strings.TrimSpace(req.Car)
	if rawCar == "" {
		fieldErrors.Add("car", msgRequired)
	} else if carID, err := uuid.Parse(rawCar); err != nil {
		fieldErrors.Add("car", "Must be a valid UUID.")
	} else {
		exists, err := carExists(carID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			fieldErrors.Add("car", fmt.Sprintf("Invalid pk %q - object does not exist.", rawCar))
		} else {
			out.CarID = carID
		}
	}

	out.CollectorName = strings.TrimSpace(req.CollectorName)
	if out.CollectorName == "" {
		fieldErrors.Add("collector_name", msgRequired)
	}

	// Stored and compared in trimmed, lower-cased form.
	out.CollectorEmail = strings.ToLower(strings.TrimSpace(req.CollectorEmail))
	if out.CollectorEmail == "" {
		fieldErrors.Add("collector_email", msgRequired)
	} else if !validEmail(out.CollectorEmail) {
		fieldErrors.Add("collector_email", "Enter a valid email address.")
	}

	out.CollectorPhone = strings.TrimSpace(req.CollectorPhone)

	out.Message = strings.TrimSpace(req.Message)
	// Length bounds count characters, not bytes.
	switch length := utf8.RuneCountInString(out.Message); {
	case length == 0:
		fieldErrors.Add("message", msgRequired)
	case length < MessageMinLength:
		fieldErrors.Add("message", fmt.Sprintf("Message must be at least %d characters long.", MessageMinLength))
	case length > MessageMaxLength:
		fieldErrors.Add("message", fmt.Sprintf("Message must be less than %d characters.", MessageMaxLength))
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	return out, nil, nil
}

// validEmail accepts a bare address with a dotted domain. Display-name
// forms ("Name <a@b.c>") are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
