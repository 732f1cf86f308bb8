package catalog

import (
	"strings"

	"github.com/klastad/course-finder/pkg/types"
)

// Projection maps a raw record to the flat attribute set the engine
// filters and sorts on. Both projections are total: missing source
// fields become empty or zero values, nothing fails here.

func ProjectCourse(c *types.RawCourse) types.ProjectedItem {
	return types.ProjectedItem{
		Id:              c.Id,
		Title:           c.Title,
		CreatedDate:     c.Created,
		CategoryNames:   cleanNames(c.Categories),
		LanguageNames:   cleanNames(c.Languages),
		LevelName:       strings.TrimSpace(c.Level),
		DurationMinutes: c.DurationMins,
		EnrollmentCount: c.Enrollments,
		Rating:          averageRating(c.RatingSum, c.RatingCount),
		ReviewCount:     c.RatingCount,
		HasCertificate:  c.HasCertificate,
	}
}

func ProjectTrack(t *types.RawTrack) types.ProjectedItem {
	return types.ProjectedItem{
		Id:              t.Id,
		Title:           t.Title,
		CreatedDate:     t.Created,
		CategoryNames:   cleanNames(t.Categories),
		LanguageNames:   cleanNames(t.Languages),
		LevelName:       strings.TrimSpace(t.Level),
		DurationMinutes: t.DurationMins,
		EnrollmentCount: t.Enrollments,
		Rating:          averageRating(t.RatingSum, t.RatingCount),
		ReviewCount:     t.RatingCount,
		HasCertificate:  t.HasCertificate,
	}
}

func averageRating(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return sum / float64(count)
}

func cleanNames(names []string) []string {
	ret := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		ret = append(ret, n)
	}
	return ret
}
