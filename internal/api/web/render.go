package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"

	"github.com/gin-contrib/multitemplate"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageFiles maps template names to the page file rendered inside base.html
var pageFiles = map[string]string{
	view.TemplateIndex:      "index.html",
	view.TemplateForm:       "form.html",
	view.TemplateError:      "error.html",
	view.TemplateAdminIndex: "admin_index.html",
	view.TemplateAdminList:  "admin_list.html",
	view.TemplateAdminEdit:  "admin_edit.html",
}

// NewRenderer parses every page together with the shared layout
func NewRenderer() (multitemplate.Render, error) {
	renderer := multitemplate.New()
	for name, page := range pageFiles {
		tmpl, err := template.New("base.html").ParseFS(templatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		renderer.Add(name, tmpl)
	}
	return renderer, nil
}
