package scenario

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/taxgridgo/internal/line"
	"github.com/vk/taxgridgo/internal/model"
)

// Derive materializes the snapshot a scenario describes: a deep clone of
// the base with every modification applied in order. The base is never
// mutated.
func Derive(base *model.ValidatedInformation, mods []Modification) (*model.ValidatedInformation, error) {
	derived, err := base.Clone()
	if err != nil {
		return nil, err
	}
	for i := range mods {
		if err := applyOne(derived, &mods[i]); err != nil {
			return nil, fmt.Errorf("failed to apply modification %s: %w", mods[i].Path, err)
		}
	}
	return derived, nil
}

func applyOne(target *model.ValidatedInformation, m *Modification) error {
	if m.Path == nil || len(m.Path.Segments) == 0 {
		return fmt.Errorf("modification has no field path")
	}

	v := reflect.ValueOf(target).Elem()
	for i, seg := range m.Path.Segments {
		var err error
		if v, err = derefForWrite(v); err != nil {
			return err
		}
		field, ok := fieldByTag(v, seg.Name)
		if !ok {
			return fmt.Errorf("unknown field %q", seg.Name)
		}

		if seg.HasIndex() {
			if field.Kind() != reflect.Slice {
				return fmt.Errorf("field %q is not a list", seg.Name)
			}
			if seg.Index >= field.Len() {
				return fmt.Errorf("index %d out of range for %q (len %d)", seg.Index, seg.Name, field.Len())
			}
			field = field.Index(seg.Index)
		}

		if i == len(m.Path.Segments)-1 {
			return setField(field, m)
		}
		v = field
	}
	return nil
}

// derefForWrite follows a pointer, allocating through nil so a scenario
// can populate a section the base snapshot left empty (e.g. itemized
// deductions).
func derefForWrite(v reflect.Value) (reflect.Value, error) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("path traverses non-struct value of kind %s", v.Kind())
	}
	return v, nil
}

// fieldByTag resolves a struct field by its yaml tag name, the same
// names the snapshot files use.
func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("yaml"), ",")[0]
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setField(field reflect.Value, m *Modification) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch m.Op {
	case OpSet:
		impliedType, err := gocty.ImpliedType(field.Interface())
		if err != nil {
			return fmt.Errorf("field type %s cannot receive a value: %w", field.Type(), err)
		}
		converted, err := convert.Convert(m.Value, impliedType)
		if err != nil {
			return fmt.Errorf("cannot convert %s to %s: %w", m.Value.Type().FriendlyName(), impliedType.FriendlyName(), err)
		}
		return gocty.FromCtyValue(converted, field.Addr().Interface())

	case OpAdd:
		delta := line.Float(m.Value)
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			field.SetFloat(field.Float() + delta)
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.SetInt(field.Int() + int64(delta))
			return nil
		default:
			return fmt.Errorf("delta modification targets non-numeric field of kind %s", field.Kind())
		}

	default:
		return fmt.Errorf("unknown modification op %q", m.Op)
	}
}
