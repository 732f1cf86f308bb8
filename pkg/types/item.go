package types

import "time"

type Scope string

const (
	ScopeCourses Scope = "courses"
	ScopeTracks  Scope = "tracks"
)

func (s Scope) Valid() bool {
	return s == ScopeCourses || s == ScopeTracks
}

// ProjectedItem is the flat, filter/sort-ready view of a catalog entity.
// It is derived per request and never persisted.
type ProjectedItem struct {
	Id              uint      `json:"id"`
	Title           string    `json:"title"`
	CreatedDate     time.Time `json:"createdDate"`
	CategoryNames   []string  `json:"categoryNames"`
	LanguageNames   []string  `json:"languageNames"`
	LevelName       string    `json:"levelName"`
	DurationMinutes float64   `json:"durationMinutes"`
	EnrollmentCount int       `json:"enrollmentCount"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	HasCertificate  bool      `json:"hasCertificate"`
}

// Browsable items need at least one category and one language, anything
// else is treated as not yet publishable.
func (p *ProjectedItem) Browsable() bool {
	return len(p.CategoryNames) > 0 && len(p.LanguageNames) > 0
}
