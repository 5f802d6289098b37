package admin

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"

	"gorm.io/gorm/schema"
)

const dateTimeLayout = "2006-01-02T15:04"

// fieldError is a validation message shown next to an input.
type fieldError string

func (e fieldError) Error() string {
	return string(e)
}

const (
	errRequired   fieldError = "This field is required."
	errNotInteger fieldError = "Not a valid integer value."
	errNotTime    fieldError = "Not a valid datetime value."
)

// field is a database column exposed as list column and form input.
type field struct {
	column   *schema.Field
	name     string
	label    string
	input    string
	nullable bool
	primary  bool
	auto     bool
	password bool
	relation *relation
}

// relation is the record a belongs-to foreign key points at.
type relation struct {
	schema *schema.Schema
	key    *schema.Field
}

func newField(column *schema.Field) (*field, error) {
	base := column.IndirectFieldType
	f := &field{
		column:   column,
		name:     column.DBName,
		label:    humanize(column.DBName),
		nullable: column.FieldType.Kind() == reflect.Ptr,
		primary:  column.PrimaryKey,
		auto:     column.PrimaryKey && column.AutoIncrement,
	}

	switch {
	case base.Kind() == reflect.Bool:
		f.input = view.InputCheckbox
	case base.Kind() == reflect.String:
		f.input = view.InputText
	case isInteger(base.Kind()):
		f.input = view.InputNumber
	case base == reflect.TypeOf(time.Time{}):
		f.input = view.InputDateTime
	default:
		return nil, fmt.Errorf("column %s: unsupported type %s", column.DBName, column.FieldType)
	}
	return f, nil
}

// required reports whether an empty value is rejected before it reaches the database.
func (f *field) required() bool {
	if f.input == view.InputCheckbox || f.nullable {
		return false
	}
	return f.primary || f.column.NotNull
}

// value returns the struct field of f inside record, a pointer to the model.
func (f *field) value(record any) reflect.Value {
	return reflect.ValueOf(record).Elem().FieldByIndex(f.column.StructField.Index)
}

// format renders the value of f in record for lists and inputs.
func (f *field) format(record any) string {
	return formatValue(f.value(record))
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case isInteger(v.Kind()):
		if v.CanInt() {
			return strconv.FormatInt(v.Int(), 10)
		}
		return strconv.FormatUint(v.Uint(), 10)
	case v.Type() == reflect.TypeOf(time.Time{}):
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format(dateTimeLayout)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// assign parses raw and stores it in the field of record.
// Passwords are stored as typed, other input is trimmed.
func (f *field) assign(record any, raw string) error {
	if !f.password {
		raw = strings.TrimSpace(raw)
	}
	return assignValue(f.value(record), raw)
}

func assignValue(target reflect.Value, raw string) error {
	t := target.Type()
	isPtr := t.Kind() == reflect.Ptr
	base := t
	if isPtr {
		base = t.Elem()
	}

	if base.Kind() == reflect.Bool {
		parsed := raw == "y" || raw == "on" || raw == "true" || raw == "1"
		setValue(target, reflect.ValueOf(parsed).Convert(base), isPtr)
		return nil
	}

	if raw == "" && isPtr {
		target.Set(reflect.Zero(t))
		return nil
	}

	val := reflect.New(base).Elem()
	switch {
	case base.Kind() == reflect.String:
		val.SetString(raw)
	case raw == "":
		return errRequired
	case isSigned(base.Kind()):
		n, err := strconv.ParseInt(raw, 10, base.Bits())
		if err != nil {
			return errNotInteger
		}
		val.SetInt(n)
	case isInteger(base.Kind()):
		n, err := strconv.ParseUint(raw, 10, base.Bits())
		if err != nil {
			return errNotInteger
		}
		val.SetUint(n)
	case base == reflect.TypeOf(time.Time{}):
		parsed, err := time.Parse(dateTimeLayout, raw)
		if err != nil {
			return errNotTime
		}
		val.Set(reflect.ValueOf(parsed))
	default:
		return fmt.Errorf("unsupported type %s", base)
	}
	setValue(target, val, isPtr)
	return nil
}

func setValue(target, val reflect.Value, isPtr bool) {
	if isPtr {
		p := reflect.New(val.Type())
		p.Elem().Set(val)
		target.Set(p)
		return
	}
	target.Set(val)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return isSigned(k)
}

// humanize turns a column name into a label: house_id becomes "House".
func humanize(column string) string {
	column = strings.TrimSuffix(column, "_id")
	words := strings.Split(column, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
