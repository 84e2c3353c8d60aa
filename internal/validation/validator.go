package validation

import (
	"strings"
	"wiki-quiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest checks the generate-quiz request before any
// external call is made. A missing URL and a non-Wikipedia URL are distinct
// failures so clients can tell a malformed request from an unsupported one.
func (v *Validator) ValidateGenerateQuizRequest(url string) *domain.DomainError {
	if strings.TrimSpace(url) == "" {
		return domain.NewInvalidInputError("URL is required")
	}
	if !strings.HasPrefix(url, domain.WikipediaURLPrefix) {
		return domain.NewUnsupportedSourceError(url)
	}
	return nil
}

// ValidateQuizID checks the quiz id path parameter
func (v *Validator) ValidateQuizID(id string) *domain.DomainError {
	if strings.TrimSpace(id) == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}
	return nil
}
