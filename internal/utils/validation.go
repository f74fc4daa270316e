package utils

import (
	"regexp"
	"strings"

	"github.com/agencialume/app-landing/internal/models"
	"github.com/nyaruka/phonenumbers"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks basic email shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone parses a phone number, defaulting to the BR region for
// numbers without a country code
func ValidatePhone(phone string) bool {
	parsed, err := phonenumbers.Parse(phone, "BR")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}

// ValidateLead validates lead input data
func ValidateLead(input models.LeadInput) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.Name) == "" {
		result.AddError("name", "Name is required")
	}
	if strings.TrimSpace(input.Company) == "" {
		result.AddError("company", "Company is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		result.AddError("phone", "Phone is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		result.AddError("email", "Email is required")
	}
	if strings.TrimSpace(input.ServicoInteresse) == "" {
		result.AddError("servicoInteresse", "Service of interest is required")
	}

	if input.Phone != "" && !ValidatePhone(input.Phone) {
		result.AddError("phone", "Phone number is not valid")
	}
	if input.Email != "" && !ValidateEmail(input.Email) {
		result.AddError("email", "Email is not valid")
	}

	return result
}
