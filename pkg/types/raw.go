package types

import "time"

// RawCourse is a course record as published by the authoring side.
type RawCourse struct {
	Id             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Categories     []string  `json:"categories"`
	Languages      []string  `json:"languages"`
	Level          string    `json:"level"`
	DurationMins   float64   `json:"durationMinutes"`
	Enrollments    int       `json:"enrollments"`
	RatingSum      float64   `json:"ratingSum"`
	RatingCount    int       `json:"ratingCount"`
	HasCertificate bool      `json:"hasCertificate"`
	Published      bool      `json:"published"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated,omitempty"`
	Deleted        bool      `json:"deleted,omitempty"`
}

// RawTrack is a learning track, an ordered bundle of courses that is
// browsed through the same pipeline as courses.
type RawTrack struct {
	Id             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Categories     []string  `json:"categories"`
	Languages      []string  `json:"languages"`
	Level          string    `json:"level"`
	CourseIds      []uint    `json:"courseIds"`
	DurationMins   float64   `json:"durationMinutes"`
	Enrollments    int       `json:"enrollments"`
	RatingSum      float64   `json:"ratingSum"`
	RatingCount    int       `json:"ratingCount"`
	HasCertificate bool      `json:"hasCertificate"`
	Published      bool      `json:"published"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated,omitempty"`
	Deleted        bool      `json:"deleted,omitempty"`
}

// ItemRef identifies a catalog entity across scopes, used by deletion
// messages.
type ItemRef struct {
	Scope Scope `json:"scope"`
	Id    uint  `json:"id"`
}
