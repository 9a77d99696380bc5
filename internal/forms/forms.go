// Package forms declares the validation schemas enforced before any
// network call fires. A failed validation never reaches the store
// layer; the caller renders the per-field messages and resubmits.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactRequest is the contact page form.
type ContactRequest struct {
	Name        string `validate:"required,min=2,max=50,alphaspace"`
	Email       string `validate:"required,email"`
	ServiceType string `validate:"required"`
	Message     string `validate:"required,min=10,max=1000"`
}

// ServiceForm is the admin service editor form. Tags is the raw
// comma-separated input string; split it with ParseTags after
// validation.
type ServiceForm struct {
	Title           string  `validate:"required,min=3"`
	Description     string  `validate:"required,min=10"`
	FullDescription string  `validate:"required,min=50"`
	Price           float64 `validate:"gte=0"`
	Category        string  `validate:"required"`
	Duration        string  `validate:"required"`
	Image           string  `validate:"required,url"`
	Tags            string  `validate:"required"`
}

var alphaspaceRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Validator wraps go-playground/validator with the custom rules the
// forms need and readable per-field messages.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the alphaspace rule registered.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaspaceRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// ValidationError carries one message per failed field, keyed by the
// lowercased field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks a form struct and returns a *ValidationError when any
// field fails.
func (fv *Validator) Validate(form any) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[strings.ToLower(fe.Field())] = fieldError(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "alphaspace":
		return field + " can only contain letters and spaces"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// ParseTags splits a comma-separated tag string into trimmed tags,
// dropping empties.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
