//go:build unit
// +build unit

package enrollments

import (
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/stretchr/testify/assert"
)

func TestEnrollment_Validate(t *testing.T) {
	tests := []struct {
		name       string
		enrollment Enrollment
		wantErr    bool
	}{
		{"valid without grade", Enrollment{StudentID: 1, CourseID: 2}, false},
		{"valid with grade", Enrollment{StudentID: 1, CourseID: 2, Grade: "O"}, false},
		{"missing student", Enrollment{CourseID: 2}, true},
		{"missing course", Enrollment{StudentID: 1}, true},
		{"invalid grade", Enrollment{StudentID: 1, CourseID: 2, Grade: "xyz"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.enrollment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnrollmentQuery_Validate(t *testing.T) {
	assert.NoError(t, (&EnrollmentQuery{StudentID: 3, Query: paging.Query{SortBy: "grade"}}).Validate())
	assert.Error(t, (&EnrollmentQuery{Query: paging.Query{SortBy: "name"}}).Validate())
}
