package students

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siconitcc/app/models"
)

func ptr(s string) *string { return &s }

func fixture() []*models.Student {
	return []*models.Student{
		{ID: "1", Document: "1001", FirstName: "Maria", LastName: "Gomez", SedeID: ptr("sede-p"), CourseID: ptr("c-61"), Status: models.StudentActive, HasPiar: false},
		{ID: "2", Document: "1002", FirstName: "Juan", LastName: "Perez", SedeID: ptr("sede-p"), CourseID: ptr("c-61"), Status: models.StudentActive, HasPiar: true},
		{ID: "3", Document: "1003", FirstName: "Lucia", LastName: "Rios", SedeID: ptr("sede-b"), CourseID: ptr("c-92"), Status: models.StudentWithdrawn, HasPiar: false},
		{ID: "4", Document: "2001", FirstName: "Pedro", LastName: "Gomez", SedeID: nil, CourseID: nil, Status: models.StudentActive, HasPiar: false},
	}
}

func ids(list []*models.Student) []string {
	var out []string
	for _, st := range list {
		out = append(out, st.ID)
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	got := Apply(fixture(), Filters{})
	assert.Len(t, got, 4)
}

func TestApplySedeNarrowsCourses(t *testing.T) {
	got := Apply(fixture(), Filters{SedeID: "sede-p"})
	assert.Equal(t, []string{"1", "2"}, ids(got))

	// Students without a sede never match a sede filter.
	got = Apply(fixture(), Filters{SedeID: "sede-x"})
	assert.Empty(t, got)
}

func TestApplyCourseFilter(t *testing.T) {
	got := Apply(fixture(), Filters{CourseID: "c-92"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestApplyPiarFilter(t *testing.T) {
	enrolled := true
	got := Apply(fixture(), Filters{CourseID: "c-61", Piar: &enrolled})
	assert.Equal(t, []string{"2"}, ids(got))

	// Enrollment view lists only students not yet under a plan.
	notEnrolled := false
	got = Apply(fixture(), Filters{CourseID: "c-61", Piar: &notEnrolled})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestApplySearchAndStatus(t *testing.T) {
	got := Apply(fixture(), Filters{Search: "gomez"})
	assert.Equal(t, []string{"1", "4"}, ids(got))

	got = Apply(fixture(), Filters{Search: "1003"})
	assert.Equal(t, []string{"3"}, ids(got))

	got = Apply(fixture(), Filters{Status: "withdrawn"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestPaginate(t *testing.T) {
	list := fixture()
	assert.Len(t, Paginate(list, 0, 0), 4)
	assert.Equal(t, []string{"1", "2"}, ids(Paginate(list, 2, 0)))
	assert.Equal(t, []string{"3", "4"}, ids(Paginate(list, 2, 2)))
	assert.Empty(t, Paginate(list, 2, 10))
	assert.Equal(t, []string{"4"}, ids(Paginate(list, 10, 3)))
}
