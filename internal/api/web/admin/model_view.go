package admin

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// pkSeparator joins the values of a composite primary key in URLs
const pkSeparator = ","

var errBadKey = errors.New("malformed primary key")

// BeforeSaveFunc runs after the form was applied to record and before it is
// validated and written. changed lists the columns taken from the form.
type BeforeSaveFunc func(ctx context.Context, record any, changed []string) error

// Labeler is implemented by models that choose how they are shown in selects.
type Labeler interface {
	AdminLabel() string
}

// validatable is implemented by models that check themselves before saving.
type validatable interface {
	Validate() error
}

// ModelView exposes one GORM model in the admin.
type ModelView struct {
	db       *gorm.DB
	schema   *schema.Schema
	name     string
	endpoint string
	pageSize int

	fields     []*field
	primary    []*field
	excluded   []string
	passwords  []string
	beforeSave BeforeSaveFunc
}

// ViewOption customizes a ModelView
type ViewOption func(*ModelView)

// WithName sets the display name; the endpoint defaults to its lower case form.
func WithName(name string) ViewOption {
	return func(v *ModelView) {
		v.name = name
	}
}

// WithEndpoint sets the URL segment of the view
func WithEndpoint(endpoint string) ViewOption {
	return func(v *ModelView) {
		v.endpoint = endpoint
	}
}

// WithExcludedListColumns hides columns from the list page
func WithExcludedListColumns(columns ...string) ViewOption {
	return func(v *ModelView) {
		v.excluded = append(v.excluded, columns...)
	}
}

// WithPasswordFields renders columns as password inputs. Their value is never
// shown and a blank input on edit keeps the stored value.
func WithPasswordFields(columns ...string) ViewOption {
	return func(v *ModelView) {
		v.passwords = append(v.passwords, columns...)
	}
}

// WithBeforeSave registers a hook run before every create and update
func WithBeforeSave(fn BeforeSaveFunc) ViewOption {
	return func(v *ModelView) {
		v.beforeSave = fn
	}
}

// NewModelView derives a view from the GORM definition of model, a pointer to a struct.
func NewModelView(db *gorm.DB, model any, opts ...ViewOption) (*ModelView, error) {
	sch, err := schema.Parse(model, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	v := &ModelView{
		db:     db,
		schema: sch,
		name:   strings.TrimSuffix(sch.Name, "Model"),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.endpoint == "" {
		v.endpoint = strings.ToLower(v.name)
	}
	if len(sch.PrimaryFields) == 0 {
		return nil, fmt.Errorf("model %s has no primary key", sch.Name)
	}

	relations := make(map[string]*relation)
	for _, rel := range sch.Relationships.BelongsTo {
		if len(rel.References) != 1 {
			continue
		}
		ref := rel.References[0]
		relations[ref.ForeignKey.DBName] = &relation{schema: rel.FieldSchema, key: ref.PrimaryKey}
	}

	for _, column := range sch.Fields {
		if column.DBName == "" {
			continue
		}
		f, err := newField(column)
		if err != nil {
			return nil, err
		}
		if slices.Contains(v.passwords, f.name) {
			f.password = true
			f.input = view.InputPassword
		}
		if rel, ok := relations[f.name]; ok {
			f.relation = rel
			f.input = view.InputSelect
		}
		v.fields = append(v.fields, f)
		if f.primary {
			v.primary = append(v.primary, f)
		}
	}
	return v, nil
}

// Name returns the display name of the view
func (v *ModelView) Name() string {
	return v.name
}

// Endpoint returns the URL segment of the view
func (v *ModelView) Endpoint() string {
	return v.endpoint
}

func (v *ModelView) newRecord() any {
	return reflect.New(v.schema.ModelType).Interface()
}

func (v *ModelView) field(name string) *field {
	for _, f := range v.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// listColumns are the fields shown on the list page
func (v *ModelView) listColumns() []*field {
	var columns []*field
	for _, f := range v.fields {
		if f.password || slices.Contains(v.excluded, f.name) {
			continue
		}
		columns = append(columns, f)
	}
	return columns
}

// searchColumns are the text columns matched by the search box
func (v *ModelView) searchColumns() []*field {
	var columns []*field
	for _, f := range v.listColumns() {
		if f.input == view.InputText {
			columns = append(columns, f)
		}
	}
	return columns
}

// encodeKey joins the primary key values of record
func (v *ModelView) encodeKey(record any) string {
	parts := make([]string, len(v.primary))
	for i, f := range v.primary {
		parts[i] = f.format(record)
	}
	return strings.Join(parts, pkSeparator)
}

// keyConditions parses an encoded primary key into column conditions
func (v *ModelView) keyConditions(key string) (map[string]any, error) {
	parts := strings.Split(key, pkSeparator)
	if len(parts) != len(v.primary) {
		return nil, errBadKey
	}

	sample := v.newRecord()
	conditions := make(map[string]any, len(parts))
	for i, f := range v.primary {
		if err := f.assign(sample, parts[i]); err != nil {
			return nil, errBadKey
		}
		conditions[f.name] = f.value(sample).Interface()
	}
	return conditions, nil
}

// listQuery selects one page of records
type listQuery struct {
	Page   int
	Sort   string
	Desc   bool
	Search string
}

func (v *ModelView) filtered(ctx context.Context, search string) *gorm.DB {
	tx := v.db.WithContext(ctx).Model(v.newRecord())
	if search == "" {
		return tx
	}

	var likes []clause.Expression
	for _, f := range v.searchColumns() {
		likes = append(likes, persistence.ContainsLike(f.name, search))
	}
	if len(likes) == 0 {
		return tx
	}
	return tx.Where(clause.Or(likes...))
}

// list returns the records of a page and the number of matching records
func (v *ModelView) list(ctx context.Context, q listQuery) ([]any, int64, error) {
	var total int64
	if err := v.filtered(ctx, q.Search).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", v.name, err)
	}

	tx := v.filtered(ctx, q.Search)
	if f := v.field(q.Sort); f != nil && !f.password {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: f.name}, Desc: q.Desc})
	} else {
		for _, f := range v.primary {
			tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: f.name}})
		}
	}
	if v.pageSize > 0 {
		page := max(q.Page, 1)
		tx = tx.Limit(v.pageSize).Offset((page - 1) * v.pageSize)
	}

	slice := reflect.New(reflect.SliceOf(reflect.PointerTo(v.schema.ModelType)))
	if err := tx.Find(slice.Interface()).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", v.name, err)
	}

	records := make([]any, slice.Elem().Len())
	for i := range records {
		records[i] = slice.Elem().Index(i).Interface()
	}
	return records, total, nil
}

// count returns the number of records
func (v *ModelView) count(ctx context.Context) (int64, error) {
	var total int64
	err := v.db.WithContext(ctx).Model(v.newRecord()).Count(&total).Error
	return total, err
}

// get loads the record stored under an encoded key
func (v *ModelView) get(ctx context.Context, key string) (any, error) {
	conditions, err := v.keyConditions(key)
	if err != nil {
		return nil, err
	}

	record := v.newRecord()
	if err := v.db.WithContext(ctx).Where(conditions).Take(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// delete removes the record stored under an encoded key
func (v *ModelView) delete(ctx context.Context, key string) error {
	conditions, err := v.keyConditions(key)
	if err != nil {
		return err
	}

	result := v.db.WithContext(ctx).Where(conditions).Delete(v.newRecord())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// option is a related record offered by a select
type option struct {
	value string
	label string
}

// options loads every record a relation can point at
func (v *ModelView) options(ctx context.Context, rel *relation) ([]option, error) {
	slice := reflect.New(reflect.SliceOf(reflect.PointerTo(rel.schema.ModelType)))
	err := v.db.WithContext(ctx).
		Model(reflect.New(rel.schema.ModelType).Interface()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: rel.key.DBName}}).
		Find(slice.Interface()).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", rel.schema.Table, err)
	}

	options := make([]option, slice.Elem().Len())
	for i := range options {
		record := slice.Elem().Index(i)
		value := formatValue(record.Elem().FieldByIndex(rel.key.StructField.Index))
		label := value
		if l, ok := record.Interface().(Labeler); ok {
			label = l.AdminLabel()
		}
		options[i] = option{value: value, label: label}
	}
	return options, nil
}

// relationOptions loads the options of every relation of the view
func (v *ModelView) relationOptions(ctx context.Context) (map[string][]option, error) {
	result := make(map[string][]option)
	for _, f := range v.fields {
		if f.relation == nil {
			continue
		}
		opts, err := v.options(ctx, f.relation)
		if err != nil {
			return nil, err
		}
		result[f.name] = opts
	}
	return result, nil
}

// form renders record as form. New records hide auto increment keys;
// existing records show their key read-only.
func (v *ModelView) form(record any, isNew bool, options map[string][]option) *view.Form {
	form := &view.Form{Submit: "Save"}
	for _, f := range v.fields {
		if isNew && f.auto {
			continue
		}

		input := &view.Field{
			Name:     f.name,
			Label:    f.label,
			Type:     f.input,
			Required: f.required(),
			ReadOnly: !isNew && f.primary,
		}
		switch {
		case f.password:
			input.Required = isNew
		case f.input == view.InputCheckbox:
			input.Checked = f.format(record) == "true"
		default:
			input.Value = f.format(record)
		}
		for _, opt := range options[f.name] {
			input.Options = append(input.Options, view.Option{
				Value:    opt.value,
				Label:    opt.label,
				Selected: opt.value == input.Value,
			})
		}
		form.Fields = append(form.Fields, input)
	}
	return form
}

// apply copies the submitted values into record and reports the columns it changed.
// Keys of existing records are never changed and blank passwords keep the stored value.
func (v *ModelView) apply(record any, isNew bool, values func(string) string, form *view.Form) []string {
	var changed []string
	for _, f := range v.fields {
		if (isNew && f.auto) || (!isNew && f.primary) {
			continue
		}
		raw := values(f.name)
		if f.password && !isNew && raw == "" {
			continue
		}
		if err := f.assign(record, raw); err != nil {
			form.AddError(f.name, err.Error())
			continue
		}
		changed = append(changed, f.name)
	}
	return changed
}

// save runs the hook and the model validation, then creates or updates record.
// Constraint violations are reported on form.
func (v *ModelView) save(ctx context.Context, record any, isNew bool, changed []string, form *view.Form) error {
	if v.beforeSave != nil {
		if err := v.beforeSave(ctx, record, changed); err != nil {
			form.AddError("", err.Error())
			return nil
		}
	}
	if m, ok := record.(validatable); ok {
		if err := m.Validate(); err != nil {
			form.AddError("", err.Error())
			return nil
		}
	}

	tx := v.db.WithContext(ctx).Omit(clause.Associations)
	var err error
	if isNew {
		err = tx.Create(record).Error
	} else {
		err = tx.Save(record).Error
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		form.AddError("", "A record with the same key already exists.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		form.AddError("", "A referenced record does not exist.")
	case err != nil:
		return fmt.Errorf("failed to save %s: %w", v.name, err)
	}
	return nil
}
