package coerce

import (
	"fmt"
	goast "go/ast"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldName returns the Go field's GraphQL-facing name: its
// `graphql:"name"` tag if present, else the field name itself.
// Grounded on schemabuilder/reflect.go's parseFieldTag.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("graphql")
	if tag == "" || tag == "-" {
		return f.Name
	}
	return strings.Split(tag, ";")[0]
}

// Bind fills a new value of target's type (a struct type, or a
// pointer to one) from a coerced argument/input map, then validates
// it with struct tags (`validate:"..."`) before returning it to the
// caller (spec §9 "typed-argument builder"). Grounded on
// schemabuilder/reflect.go's Convert, extended with
// github.com/go-playground/validator/v10 post-bind validation.
func Bind(args map[string]interface{}, target reflect.Type) (interface{}, error) {
	ptr := target.Kind() == reflect.Ptr
	structType := target
	if ptr {
		structType = target.Elem()
	}
	out := reflect.New(structType).Elem()
	if err := assign(out, reflect.ValueOf(args)); err != nil {
		return nil, err
	}
	result := out.Interface()
	if ptr {
		result = out.Addr().Interface()
	}
	if err := validate.Struct(result); err != nil {
		return nil, err
	}
	return result, nil
}

func assign(dst, src reflect.Value) error {
	for src.IsValid() && src.Kind() == reflect.Interface {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}
	if !src.IsValid() {
		return nil
	}
	for dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	if dst.Kind() == reflect.Struct && src.Kind() == reflect.Map {
		m, ok := src.Interface().(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected an object for %s, got %s", dst.Type(), src.Type())
		}
		for i := 0; i < dst.NumField(); i++ {
			field := dst.Type().Field(i)
			if !goast.IsExported(field.Name) {
				continue
			}
			v, has := m[fieldName(field)]
			if !has || v == nil {
				continue
			}
			if err := assign(dst.Field(i), reflect.ValueOf(v)); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
		return nil
	}

	if dst.Kind() == reflect.Slice {
		if src.Kind() != reflect.Slice {
			return fmt.Errorf("expected a list for %s, got %s", dst.Type(), src.Type())
		}
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := assign(out.Index(i), src.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}
	if src.Type().ConvertibleTo(dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
}
