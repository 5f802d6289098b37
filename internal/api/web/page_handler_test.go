//go:build unit
// +build unit

package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPageHandler_Index_Anonymous(t *testing.T) {
	houseService := new(MockHouseService)
	enrollmentService := new(MockEnrollmentService)
	handler := NewPageHandler(houseService, enrollmentService, testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	handler.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You are not logged in.")
	assert.Contains(t, w.Body.String(), `href="/login/"`)
	enrollmentService.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
}

func TestPageHandler_Index_LoggedIn(t *testing.T) {
	houseService := new(MockHouseService)
	enrollmentService := new(MockEnrollmentService)
	handler := NewPageHandler(houseService, enrollmentService, testutil.SetupTestLogger(t))

	houseID := 3
	user := &users.User{ID: 1, Username: "harry", Name: "Harry Potter", HouseID: &houseID}
	houseService.On("GetByID", mock.Anything, houseID).Return(&houses.House{ID: houseID, Name: "Gryffindor"}, nil)
	enrollmentService.On("Transcript", mock.Anything, 1).Return([]*enrollments.Enrollment{
		{StudentID: 1, CourseID: 2, Grade: "O", Course: &courses.Course{ID: 2, Name: "Defence Against the Dark Arts"}},
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	c.Set(siteKey, Site{AdminName: "Hogwarts", AdminPath: "/admin"})
	SetCurrentUser(c, user)
	handler.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>harry</strong> (Harry Potter)")
	assert.Contains(t, body, "House: Gryffindor")
	assert.Contains(t, body, "<td>Defence Against the Dark Arts</td><td>O</td>")
	assert.Contains(t, body, `<a href="/admin">Hogwarts admin</a>`)
	houseService.AssertExpectations(t)
	enrollmentService.AssertExpectations(t)
}

func TestPageHandler_Index_ToleratesLookupErrors(t *testing.T) {
	houseService := new(MockHouseService)
	enrollmentService := new(MockEnrollmentService)
	handler := NewPageHandler(houseService, enrollmentService, testutil.SetupTestLogger(t))

	houseID := 3
	houseService.On("GetByID", mock.Anything, houseID).Return(nil, houses.ErrHouseNotFound)
	enrollmentService.On("Transcript", mock.Anything, 1).Return(nil, errors.New("database down"))

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	SetCurrentUser(c, &users.User{ID: 1, Username: "harry", HouseID: &houseID})
	handler.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "House:")
}
