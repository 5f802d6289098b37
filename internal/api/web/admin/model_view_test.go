//go:build unit
// +build unit

package admin

import (
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func schemaOnlyDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{NamingStrategy: schema.NamingStrategy{}}}
}

func TestNewModelView_User(t *testing.T) {
	v, err := NewModelView(schemaOnlyDB(), &models.UserModel{},
		WithExcludedListColumns("address"),
		WithPasswordFields("password"))
	require.NoError(t, err)

	assert.Equal(t, "User", v.Name())
	assert.Equal(t, "user", v.Endpoint())

	id := v.field("id")
	require.NotNil(t, id)
	assert.True(t, id.primary)
	assert.True(t, id.auto)

	house := v.field("house_id")
	require.NotNil(t, house)
	assert.Equal(t, view.InputSelect, house.input)
	assert.NotNil(t, house.relation)
	assert.False(t, house.required())

	assert.Equal(t, view.InputPassword, v.field("password").input)
	assert.Equal(t, view.InputCheckbox, v.field("magical").input)
	assert.True(t, v.field("username").required())

	var names []string
	for _, f := range v.listColumns() {
		names = append(names, f.name)
	}
	assert.NotContains(t, names, "password")
	assert.NotContains(t, names, "address")
	assert.Contains(t, names, "username")

	var search []string
	for _, f := range v.searchColumns() {
		search = append(search, f.name)
	}
	assert.ElementsMatch(t, []string{"username", "name"}, search)
}

func TestNewModelView_CompositeKey(t *testing.T) {
	v, err := NewModelView(schemaOnlyDB(), &models.EnrollmentModel{}, WithName("Classes"))
	require.NoError(t, err)

	assert.Equal(t, "classes", v.Endpoint())
	require.Len(t, v.primary, 2)
	assert.Equal(t, "student", v.primary[0].name)
	assert.Equal(t, "lesson", v.primary[1].name)
	assert.False(t, v.primary[0].auto)
	assert.NotNil(t, v.field("student").relation)
	assert.NotNil(t, v.field("lesson").relation)

	record := &models.EnrollmentModel{StudentID: 3, CourseID: 7}
	assert.Equal(t, "3,7", v.encodeKey(record))

	conditions, err := v.keyConditions("3,7")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"student": 3, "lesson": 7}, conditions)

	_, err = v.keyConditions("3")
	assert.ErrorIs(t, err, errBadKey)
	_, err = v.keyConditions("3,x")
	assert.ErrorIs(t, err, errBadKey)
}

func TestModelView_FormAndApply(t *testing.T) {
	v, err := NewModelView(schemaOnlyDB(), &models.UserModel{}, WithPasswordFields("password"))
	require.NoError(t, err)

	houseID := 2
	record := &models.UserModel{ID: 5, Username: "harry", Password: "$2a$hash", Magical: true, HouseID: &houseID}
	options := map[string][]option{"house_id": {{value: "1", label: "Slytherin"}, {value: "2", label: "Gryffindor"}}}

	form := v.form(record, false, options)
	id := form.Field("id")
	require.NotNil(t, id)
	assert.True(t, id.ReadOnly)
	assert.Empty(t, form.Field("password").Value)
	assert.True(t, form.Field("magical").Checked)
	house := form.Field("house_id")
	require.Len(t, house.Options, 2)
	assert.False(t, house.Options[0].Selected)
	assert.True(t, house.Options[1].Selected)

	assert.Nil(t, v.form(&models.UserModel{}, true, nil).Field("id"))

	values := map[string]string{"id": "99", "username": " ron ", "password": "", "house_id": "", "address": "Burrow"}
	changed := v.apply(record, false, func(name string) string { return values[name] }, form)

	assert.True(t, form.Valid())
	assert.Equal(t, 5, record.ID)
	assert.Equal(t, "ron", record.Username)
	assert.Equal(t, "$2a$hash", record.Password)
	assert.Nil(t, record.HouseID)
	assert.False(t, record.Magical)
	assert.NotContains(t, changed, "password")
	assert.Contains(t, changed, "address")
}

func TestModelView_ApplyReportsFieldErrors(t *testing.T) {
	v, err := NewModelView(schemaOnlyDB(), &models.EnrollmentModel{})
	require.NoError(t, err)

	record := &models.EnrollmentModel{}
	form := v.form(record, true, nil)
	values := map[string]string{"student": "x", "lesson": "", "grade": "A"}
	v.apply(record, true, func(name string) string { return values[name] }, form)

	assert.False(t, form.Valid())
	assert.Equal(t, []string{string(errNotInteger)}, form.Field("student").Errors)
	assert.Equal(t, []string{string(errRequired)}, form.Field("lesson").Errors)
}
