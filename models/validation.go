package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/proyectos-api/apperror"
)

// Letters, spaces and the Spanish accented vowels and ñ
var lettersPattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚüÜñÑ ]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so errors match the payload the client sent
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register letters validation: %v", err))
	}

	return v
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// withReceivedValue replaces the value of a field error with the one raw holds for that field
func withReceivedValue(err error, raw any) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
		return err
	}

	rv := reflect.ValueOf(raw)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonName(rt.Field(i)) == appErr.Field {
			appErr.Value = rv.Field(i).Interface()
			break
		}
	}
	return err
}

// validateStruct runs the struct rules and reports the first failing field
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Internal(err, "validation failed")
	}

	fe := fieldErrs[0]
	return apperror.Validation(fe.Field(), fe.Value(), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "letters":
		return fmt.Sprintf("%s may only contain letters and spaces", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
