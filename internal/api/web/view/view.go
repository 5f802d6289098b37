// Package view holds the data passed to the HTML templates. Public pages and the
// admin share the layout, forms and tables defined here.
package view

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
)

// Page is the layout data every template receives.
type Page struct {
	Title     string
	User      *users.User
	CSRFToken string
	AdminName string
	AdminPath string
}

// IsAuthenticated reports whether a user is logged in.
func (p Page) IsAuthenticated() bool {
	return p.User != nil
}

// Option of a select field
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field input types
const (
	InputText     = "text"
	InputPassword = "password"
	InputNumber   = "number"
	InputCheckbox = "checkbox"
	InputSelect   = "select"
	InputDateTime = "datetime-local"
)

// Field is one input of a form.
type Field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	Options  []Option
	Required bool
	ReadOnly bool
	Errors   []string
}

// HasErrors reports whether the field failed validation.
func (f Field) HasErrors() bool {
	return len(f.Errors) > 0
}

// Form is a rendered HTML form with its validation state.
type Form struct {
	Action    string
	Submit    string
	CSRFToken string
	Fields    []*Field
	Errors    []string
}

// Field returns the field called name, or nil.
func (f *Form) Field(name string) *Field {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// AddError attaches message to the field called name, or to the form when there is no such field.
func (f *Form) AddError(name, message string) {
	if field := f.Field(name); field != nil {
		field.Errors = append(field.Errors, message)
		return
	}
	f.Errors = append(f.Errors, message)
}

// Valid reports whether neither the form nor any field has errors.
func (f *Form) Valid() bool {
	if len(f.Errors) > 0 {
		return false
	}
	for _, field := range f.Fields {
		if field.HasErrors() {
			return false
		}
	}
	return true
}

// FormPage renders a standalone form such as login or registration.
type FormPage struct {
	Page
	Form *Form
}

// ErrorPage renders an HTTP error.
type ErrorPage struct {
	Page
	Status  int
	Message string
}

// Enrollment row on the index page
type Enrollment struct {
	Course string
	Grade  string
}

// IndexPage renders the landing page.
type IndexPage struct {
	Page
	House       string
	Enrollments []Enrollment
}

// Template names registered with the renderer
const (
	TemplateIndex      = "index"
	TemplateForm       = "form"
	TemplateError      = "error"
	TemplateAdminIndex = "admin_index"
	TemplateAdminList  = "admin_list"
	TemplateAdminEdit  = "admin_edit"
)
