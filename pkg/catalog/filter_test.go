package catalog

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/klastad/course-finder/pkg/types"
)

func testItem(id uint, mod func(*types.ProjectedItem)) types.ProjectedItem {
	it := types.ProjectedItem{
		Id:              id,
		Title:           fmt.Sprintf("Course %d", id),
		CreatedDate:     time.Date(2024, 1, int(id%27)+1, 0, 0, 0, 0, time.UTC),
		CategoryNames:   []string{"Web"},
		LanguageNames:   []string{"English"},
		LevelName:       "Beginner",
		DurationMinutes: 60,
		EnrollmentCount: int(id) * 10,
		Rating:          4,
		ReviewCount:     int(id),
		HasCertificate:  false,
	}
	if mod != nil {
		mod(&it)
	}
	return it
}

func fptr(v float64) *float64     { return &v }
func iptr(v int) *int             { return &v }
func bptr(v bool) *bool           { return &v }
func tptr(v time.Time) *time.Time { return &v }

func TestMatches_EmptyCriteriaMatchesEverything(t *testing.T) {
	it := testItem(1, nil)
	if !Matches(&it, &types.FilterCriteria{}) {
		t.Errorf("expected empty criteria to match")
	}
}

func TestMatches_CategoricalOrWithinAndAcross(t *testing.T) {
	it := testItem(1, func(p *types.ProjectedItem) {
		p.CategoryNames = []string{"Web", "Backend"}
		p.LanguageNames = []string{"English"}
	})

	// OR within the category dimension
	c := &types.FilterCriteria{CategoryNames: []string{"Data", "Backend"}}
	if !Matches(&it, c) {
		t.Errorf("expected intersection on category to match")
	}

	// AND across dimensions: category matches, language does not
	c = &types.FilterCriteria{
		CategoryNames: []string{"Backend"},
		LanguageNames: []string{"Swedish"},
	}
	if Matches(&it, c) {
		t.Errorf("expected language mismatch to reject the item")
	}
}

func TestMatches_LevelDimension(t *testing.T) {
	it := testItem(1, func(p *types.ProjectedItem) { p.LevelName = "Advanced" })
	if Matches(&it, &types.FilterCriteria{LevelNames: []string{"Beginner"}}) {
		t.Errorf("expected level mismatch to reject the item")
	}
	if !Matches(&it, &types.FilterCriteria{LevelNames: []string{"Beginner", "Advanced"}}) {
		t.Errorf("expected level in requested set to match")
	}
}

func TestMatches_RatingBoundsInclusive(t *testing.T) {
	c := &types.FilterCriteria{MinRating: fptr(4.5), MaxRating: fptr(4.5)}

	exact := testItem(1, func(p *types.ProjectedItem) { p.Rating = 4.5 })
	if !Matches(&exact, c) {
		t.Errorf("expected rating 4.5 to be included by [4.5, 4.5]")
	}
	below := testItem(2, func(p *types.ProjectedItem) { p.Rating = 4.49 })
	if Matches(&below, c) {
		t.Errorf("expected rating 4.49 to be excluded by [4.5, 4.5]")
	}
}

func TestMatches_DateRangeInclusive(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	it := testItem(1, func(p *types.ProjectedItem) { p.CreatedDate = day })

	c := &types.FilterCriteria{MinCreationDate: tptr(day), MaxCreationDate: tptr(day)}
	if !Matches(&it, c) {
		t.Errorf("expected creation date equal to both bounds to match")
	}
	c = &types.FilterCriteria{MinCreationDate: tptr(day.Add(time.Second))}
	if Matches(&it, c) {
		t.Errorf("expected creation date before the lower bound to be excluded")
	}
}

func TestMatches_EnrollmentAndDurationBounds(t *testing.T) {
	it := testItem(1, func(p *types.ProjectedItem) {
		p.DurationMinutes = 90
		p.EnrollmentCount = 250
	})
	c := &types.FilterCriteria{
		MinDuration:    fptr(90),
		MaxDuration:    fptr(120),
		MinEnrollments: iptr(100),
		MaxEnrollments: iptr(250),
	}
	if !Matches(&it, c) {
		t.Errorf("expected values on the bounds to match")
	}
	c.MaxEnrollments = iptr(249)
	if Matches(&it, c) {
		t.Errorf("expected enrollment above max to be excluded")
	}
}

func TestMatches_CertificateToggle(t *testing.T) {
	with := testItem(1, func(p *types.ProjectedItem) { p.HasCertificate = true })
	without := testItem(2, nil)

	c := &types.FilterCriteria{HasCertificate: bptr(true)}
	if !Matches(&with, c) || Matches(&without, c) {
		t.Errorf("expected certificate toggle to be an exact match")
	}
	c = &types.FilterCriteria{}
	if !Matches(&with, c) || !Matches(&without, c) {
		t.Errorf("expected absent toggle to match both")
	}
}

func TestFilter_PreservesOrderAndIsIdempotent(t *testing.T) {
	items := []types.ProjectedItem{
		testItem(3, nil),
		testItem(1, func(p *types.ProjectedItem) { p.CategoryNames = []string{"Data"} }),
		testItem(2, nil),
	}
	c := &types.FilterCriteria{CategoryNames: []string{"Web"}}

	once := Filter(items, c)
	if len(once) != 2 || once[0].Id != 3 || once[1].Id != 2 {
		t.Fatalf("expected input order [3 2], got %v", once)
	}

	twice := Filter(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected filtering to be idempotent")
	}
}
