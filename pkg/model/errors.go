package model

import (
	"errors"
	"fmt"
)

// ValidationError carries the context shared by every validator failure:
// which model, which section and field, and the offending value. It is
// embedded by the concrete error kinds below so callers can match either
// the family or a specific kind with errors.As.
type ValidationError struct {
	Model   string
	Section string
	Field   string
	Value   any
	Reason  string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("model %q", e.Model)
	if e.Section != "" {
		msg += fmt.Sprintf(" section %q", e.Section)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}
	msg += ": " + e.Reason
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	return msg
}

func (e *ValidationError) validation() {}

// MissingSectionError reports a missing required top-level section.
type MissingSectionError struct{ ValidationError }

// BenchmarkScoreError reports an invalid benchmark section: a missing
// benchmark key, a non-numeric score, or a score outside the configured
// bounds.
type BenchmarkScoreError struct{ ValidationError }

// SpecificationError reports an invalid model_specs section.
type SpecificationError struct{ ValidationError }

// CommunityScoreError reports an invalid community_score section.
type CommunityScoreError struct{ ValidationError }

// validationErr is the marker interface implemented by all validation
// error kinds through the embedded ValidationError.
type validationErr interface {
	error
	validation()
}

// IsValidationError reports whether err belongs to the validation error
// family raised by Validate.
func IsValidationError(err error) bool {
	var v validationErr
	return errors.As(err, &v)
}

func missingSection(model, section string) error {
	return &MissingSectionError{ValidationError{
		Model:   model,
		Section: section,
		Reason:  "missing required section",
	}}
}

func benchmarkErr(model, section, field, reason string, value any) error {
	return &BenchmarkScoreError{ValidationError{
		Model:   model,
		Section: section,
		Field:   field,
		Value:   value,
		Reason:  reason,
	}}
}

func specErr(model, field, reason string, value any) error {
	return &SpecificationError{ValidationError{
		Model:   model,
		Section: SectionModelSpecs,
		Field:   field,
		Value:   value,
		Reason:  reason,
	}}
}

func communityErr(model, field, reason string, value any) error {
	return &CommunityScoreError{ValidationError{
		Model:   model,
		Section: SectionCommunityScore,
		Field:   field,
		Value:   value,
		Reason:  reason,
	}}
}
