package students

import (
	"strings"

	"siconitcc/app/models"
)

// Filters are the dependent-selector parameters of the student views: sede
// narrows courses, course narrows students, and the PIAR flag separates
// enrollment from follow-up contexts.
type Filters struct {
	Search   string
	Status   string
	SedeID   string
	CourseID string
	Piar     *bool // nil: no filter; false: not yet enrolled; true: enrolled
}

// Apply filters a fetched student list in memory. Each dependent filter is
// independent: an empty field matches everything.
func Apply(students []*models.Student, f Filters) []*models.Student {
	var out []*models.Student
	for _, st := range students {
		if f.Search != "" {
			searchLower := strings.ToLower(f.Search)
			fullName := strings.ToLower(st.FirstName + " " + st.LastName)
			if !strings.Contains(fullName, searchLower) &&
				!strings.Contains(strings.ToLower(st.Document), searchLower) {
				continue
			}
		}

		if f.Status != "" && string(st.Status) != f.Status {
			continue
		}

		if f.SedeID != "" {
			if st.SedeID == nil || *st.SedeID != f.SedeID {
				continue
			}
		}

		if f.CourseID != "" {
			if st.CourseID == nil || *st.CourseID != f.CourseID {
				continue
			}
		}

		if f.Piar != nil && st.HasPiar != *f.Piar {
			continue
		}

		out = append(out, st)
	}
	return out
}

// Paginate slices a filtered list. limit <= 0 disables pagination.
func Paginate(students []*models.Student, limit, offset int) []*models.Student {
	if limit <= 0 {
		return students
	}
	if offset >= len(students) {
		return []*models.Student{}
	}
	end := offset + limit
	if end > len(students) {
		end = len(students)
	}
	return students[offset:end]
}
