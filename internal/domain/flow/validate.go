package flow

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the constraint checker shared by input and output records.
// Besides the stock tags it understands "notblank" and "photo".
func newValidator(maxPhotoBytes int) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("photo", func(fl validator.FieldLevel) bool {
		_, err := ParsePhoto(fl.Field().String(), maxPhotoBytes)
		return err == nil
	})
	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// describeValidation turns validator failures into a caller-facing sentence.
func describeValidation(err error, maxPhotoBytes int) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describeField(fe, maxPhotoBytes))
	}
	return strings.Join(messages, "; ")
}

func describeField(fe validator.FieldError, maxPhotoBytes int) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "photo":
		raw, _ := fe.Value().(string)
		if _, err := ParsePhoto(raw, maxPhotoBytes); err != nil {
			return field + ": " + err.Error()
		}
		return field + " is not a valid photo"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// fieldPath drops the root struct name from the namespace: Request.items[0].type -> items[0].type.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
