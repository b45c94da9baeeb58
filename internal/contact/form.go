// Package contact validates and submits the contact form. Submission is simulated:
// nothing leaves the process.
package contact

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"

	minMessageLen = 10
)

var (
	ErrInvalid  = errors.New("contact form invalid")
	ErrCanceled = errors.New("contact form canceled")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type Form struct {
	Name    string
	Email   string
	Message string
}

// FieldError is a user-facing validation failure for one field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidateField checks a single trimmed value against the rules for field.
func ValidateField(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &FieldError{Field: field, Message: strings.ToUpper(field[:1]) + field[1:] + " is required"}
	}
	switch field {
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return &FieldError{Field: field, Message: "Please enter a valid email address"}
		}
	case FieldMessage:
		if utf8.RuneCountInString(value) < minMessageLen {
			return &FieldError{Field: field, Message: "Message must be at least 10 characters long"}
		}
	}
	return nil
}

// Validate checks every field and returns all failures in form order.
func (f Form) Validate() []*FieldError {
	var errs []*FieldError
	for _, fv := range [...]struct{ field, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldMessage, f.Message},
	} {
		var fe *FieldError
		if errors.As(ValidateField(fv.field, fv.value), &fe) {
			errs = append(errs, fe)
		}
	}
	return errs
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}
