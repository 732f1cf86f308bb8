package types

import "time"

// FilterCriteria is the immutable filter part of a browse request.
// Empty categorical sets and nil bounds mean "no restriction on this
// dimension". OR within a dimension, AND across dimensions.
type FilterCriteria struct {
	CategoryNames []string `json:"categoryNames,omitempty" schema:"category"`
	LanguageNames []string `json:"languageNames,omitempty" schema:"language"`
	LevelNames    []string `json:"levelNames,omitempty" schema:"level"`

	MinDuration *float64 `json:"minDuration,omitempty" schema:"minDuration"`
	MaxDuration *float64 `json:"maxDuration,omitempty" schema:"maxDuration"`

	MinEnrollments *int `json:"minEnrollments,omitempty" schema:"minEnrollments"`
	MaxEnrollments *int `json:"maxEnrollments,omitempty" schema:"maxEnrollments"`

	MinRating *float64 `json:"minRating,omitempty" schema:"minRating"`
	MaxRating *float64 `json:"maxRating,omitempty" schema:"maxRating"`

	MinCreationDate *time.Time `json:"minCreationDate,omitempty" schema:"createdAfter"`
	MaxCreationDate *time.Time `json:"maxCreationDate,omitempty" schema:"createdBefore"`

	HasCertificate *bool `json:"hasCertificate,omitempty" schema:"certificate"`
}

// Validate checks the range invariants. Reversed bounds are an error,
// never silently swapped.
func (c *FilterCriteria) Validate() error {
	if c.MinDuration != nil && c.MaxDuration != nil && *c.MinDuration > *c.MaxDuration {
		return &ValidationError{Field: "maxDuration", Message: "maxDuration is smaller than minDuration"}
	}
	if c.MinEnrollments != nil && c.MaxEnrollments != nil && *c.MinEnrollments > *c.MaxEnrollments {
		return &ValidationError{Field: "maxEnrollments", Message: "maxEnrollments is smaller than minEnrollments"}
	}
	if c.MinRating != nil && c.MaxRating != nil && *c.MinRating > *c.MaxRating {
		return &ValidationError{Field: "maxRating", Message: "maxRating is smaller than minRating"}
	}
	if c.MinCreationDate != nil && c.MaxCreationDate != nil && c.MinCreationDate.After(*c.MaxCreationDate) {
		return &ValidationError{Field: "maxCreationDate", Message: "maxCreationDate is before minCreationDate"}
	}
	return nil
}

// HasScalarFilters reports whether any non-categorical restriction is set.
func (c *FilterCriteria) HasScalarFilters() bool {
	return c.MinDuration != nil || c.MaxDuration != nil ||
		c.MinEnrollments != nil || c.MaxEnrollments != nil ||
		c.MinRating != nil || c.MaxRating != nil ||
		c.MinCreationDate != nil || c.MaxCreationDate != nil ||
		c.HasCertificate != nil
}
