// Package admin generates a CRUD interface from GORM model definitions: every
// registered model gets a paginated, sortable and searchable list plus create,
// edit and delete pages.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/MGTheTrain/auth-admin/internal/api/web"
	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DefaultPageSize is used when Options.PageSize is not set
const DefaultPageSize = 20

// Options configure an Admin
type Options struct {
	Name     string
	PageSize int
}

// Admin serves the registered model views
type Admin struct {
	name     string
	pageSize int
	basePath string
	views    []*ModelView
	logger   logger.Logger
}

// New creates an empty Admin
func New(opts Options, logger logger.Logger) *Admin {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Admin{
		name:     opts.Name,
		pageSize: opts.PageSize,
		logger:   logger,
	}
}

// AddView registers a model view. Endpoints must be unique.
func (a *Admin) AddView(v *ModelView) error {
	for _, existing := range a.views {
		if existing.endpoint == v.endpoint {
			return fmt.Errorf("admin view %q already registered", v.endpoint)
		}
	}
	v.pageSize = a.pageSize
	a.views = append(a.views, v)
	return nil
}

// Views returns the registered views in registration order
func (a *Admin) Views() []*ModelView {
	return a.views
}

// Mount registers the admin routes below group
func (a *Admin) Mount(group *gin.RouterGroup) {
	a.basePath = group.BasePath()

	group.GET("/", a.index)
	for _, v := range a.views {
		g := group.Group("/" + v.endpoint)
		g.GET("/", a.list(v))
		g.GET("/add/", a.showCreate(v))
		g.POST("/add/", a.create(v))
		g.GET("/edit/:pk", a.showEdit(v))
		g.POST("/edit/:pk", a.update(v))
		g.POST("/delete/:pk", a.remove(v))
	}
}

func (a *Admin) listURL(v *ModelView) string {
	return path.Join(a.basePath, v.endpoint) + "/"
}

func (a *Admin) addURL(v *ModelView) string {
	return a.listURL(v) + "add/"
}

func (a *Admin) editURL(v *ModelView, key string) string {
	return a.listURL(v) + "edit/" + url.PathEscape(key)
}

func (a *Admin) deleteURL(v *ModelView, key string) string {
	return a.listURL(v) + "delete/" + url.PathEscape(key)
}

func (a *Admin) links(ctx context.Context, withCounts bool) ([]view.ModelLink, error) {
	links := make([]view.ModelLink, len(a.views))
	for i, v := range a.views {
		links[i] = view.ModelLink{Name: v.name, URL: a.listURL(v)}
		if withCounts {
			count, err := v.count(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to count %s: %w", v.name, err)
			}
			links[i].Count = count
		}
	}
	return links, nil
}

func (a *Admin) index(c *gin.Context) {
	links, err := a.links(c.Request.Context(), true)
	if err != nil {
		a.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.TemplateAdminIndex, view.AdminIndexPage{
		Page:   web.NewPage(c, a.name),
		Models: links,
	})
}

func (a *Admin) list(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		q := listQuery{
			Sort:   c.Query("sort"),
			Desc:   c.Query("desc") == "1",
			Search: c.Query("q"),
		}
		q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		q.Page = max(q.Page, 1)

		records, total, err := v.list(ctx, q)
		if err != nil {
			a.internalError(c, err)
			return
		}
		options, err := v.relationOptions(ctx)
		if err != nil {
			a.internalError(c, err)
			return
		}
		links, err := a.links(ctx, false)
		if err != nil {
			a.internalError(c, err)
			return
		}

		page := view.AdminListPage{
			Page:    web.NewPage(c, v.name+" - "+a.name),
			Model:   v.name,
			AddURL:  a.addURL(v),
			ListURL: a.listURL(v),
			Search:  q.Search,
			Models:  links,
		}

		columns := v.listColumns()
		for _, f := range columns {
			col := view.Column{Name: f.name, Label: f.label, Sorted: q.Sort == f.name}
			col.Desc = col.Sorted && q.Desc
			col.SortURL = a.pageURL(v, listQuery{Sort: f.name, Desc: col.Sorted && !q.Desc, Search: q.Search, Page: 1})
			page.Columns = append(page.Columns, col)
		}

		labels := optionLabels(options)
		for _, record := range records {
			key := v.encodeKey(record)
			row := view.Row{Key: key, EditURL: a.editURL(v, key), DeleteURL: a.deleteURL(v, key)}
			for _, f := range columns {
				cell := f.format(record)
				if label, ok := labels[f.name][cell]; ok {
					cell = label
				}
				row.Cells = append(row.Cells, cell)
			}
			page.Rows = append(page.Rows, row)
		}

		pages := int((total + int64(v.pageSize) - 1) / int64(v.pageSize))
		page.Pager = view.Pager{Page: q.Page, Pages: max(pages, 1), Total: total}
		if q.Page > 1 {
			prev := q
			prev.Page--
			page.Pager.PrevURL = a.pageURL(v, prev)
		}
		if q.Page < pages {
			next := q
			next.Page++
			page.Pager.NextURL = a.pageURL(v, next)
		}

		c.HTML(http.StatusOK, view.TemplateAdminList, page)
	}
}

func (a *Admin) pageURL(v *ModelView, q listQuery) string {
	values := url.Values{}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Desc {
		values.Set("desc", "1")
	}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if len(values) == 0 {
		return a.listURL(v)
	}
	return a.listURL(v) + "?" + values.Encode()
}

func optionLabels(options map[string][]option) map[string]map[string]string {
	labels := make(map[string]map[string]string, len(options))
	for name, opts := range options {
		labels[name] = make(map[string]string, len(opts))
		for _, opt := range opts {
			labels[name][opt.value] = opt.label
		}
	}
	return labels
}

func (a *Admin) showCreate(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := v.relationOptions(c.Request.Context())
		if err != nil {
			a.internalError(c, err)
			return
		}
		form := v.form(v.newRecord(), true, options)
		a.renderEdit(c, v, "Create "+v.name, form, a.addURL(v), "")
	}
}

func (a *Admin) create(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		options, err := v.relationOptions(ctx)
		if err != nil {
			a.internalError(c, err)
			return
		}

		record := v.newRecord()
		form := v.form(record, true, options)
		changed := v.apply(record, true, c.PostForm, form)
		if form.Valid() {
			if err := v.save(ctx, record, true, changed, form); err != nil {
				a.internalError(c, err)
				return
			}
		}
		if !form.Valid() {
			a.renderEdit(c, v, "Create "+v.name, a.refill(v, record, true, options, form), a.addURL(v), "")
			return
		}

		a.logger.Info("Admin created ", v.name, " ", v.encodeKey(record))
		c.Redirect(http.StatusFound, a.listURL(v))
	}
}

func (a *Admin) showEdit(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := c.Param("pk")
		record, err := v.get(ctx, key)
		if err != nil {
			a.lookupError(c, err)
			return
		}
		options, err := v.relationOptions(ctx)
		if err != nil {
			a.internalError(c, err)
			return
		}
		form := v.form(record, false, options)
		a.renderEdit(c, v, "Edit "+v.name, form, a.editURL(v, key), a.deleteURL(v, key))
	}
}

func (a *Admin) update(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := c.Param("pk")
		record, err := v.get(ctx, key)
		if err != nil {
			a.lookupError(c, err)
			return
		}
		options, err := v.relationOptions(ctx)
		if err != nil {
			a.internalError(c, err)
			return
		}

		form := v.form(record, false, options)
		changed := v.apply(record, false, c.PostForm, form)
		if form.Valid() {
			if err := v.save(ctx, record, false, changed, form); err != nil {
				a.internalError(c, err)
				return
			}
		}
		if !form.Valid() {
			a.renderEdit(c, v, "Edit "+v.name, a.refill(v, record, false, options, form), a.editURL(v, key), a.deleteURL(v, key))
			return
		}

		a.logger.Info("Admin updated ", v.name, " ", key)
		c.Redirect(http.StatusFound, a.listURL(v))
	}
}

func (a *Admin) remove(v *ModelView) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("pk")
		if err := v.delete(c.Request.Context(), key); err != nil {
			a.lookupError(c, err)
			return
		}
		a.logger.Info("Admin deleted ", v.name, " ", key)
		c.Redirect(http.StatusFound, a.listURL(v))
	}
}

// refill renders the submitted record again and keeps the errors of form.
func (a *Admin) refill(v *ModelView, record any, isNew bool, options map[string][]option, form *view.Form) *view.Form {
	refilled := v.form(record, isNew, options)
	refilled.Errors = form.Errors
	for _, f := range form.Fields {
		if target := refilled.Field(f.Name); target != nil {
			target.Errors = f.Errors
		}
	}
	return refilled
}

func (a *Admin) renderEdit(c *gin.Context, v *ModelView, title string, form *view.Form, action, deleteURL string) {
	links, err := a.links(c.Request.Context(), false)
	if err != nil {
		a.internalError(c, err)
		return
	}
	page := web.NewPage(c, title)
	form.Action = action
	form.CSRFToken = page.CSRFToken
	c.HTML(http.StatusOK, view.TemplateAdminEdit, view.AdminEditPage{
		Page:      page,
		Model:     v.name,
		ListURL:   a.listURL(v),
		DeleteURL: deleteURL,
		Form:      form,
		Models:    links,
	})
}

func (a *Admin) lookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, errBadKey):
		web.RenderError(c, http.StatusNotFound, "Record not found.")
	default:
		a.internalError(c, err)
	}
}

func (a *Admin) internalError(c *gin.Context, err error) {
	a.logger.Error("Admin request failed: ", err)
	web.RenderError(c, http.StatusInternalServerError, "Internal server error")
}
