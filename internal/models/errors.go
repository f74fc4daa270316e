package models

import "errors"

// Error constants for landing page and lead operations
var (
	ErrConfigNotFound = errors.New("landing page config not found")
	ErrSlugRequired   = errors.New("slug is required")
	ErrLeadValidation = errors.New("lead failed validation")
)
