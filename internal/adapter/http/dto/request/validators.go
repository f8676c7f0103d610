package request

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// custom validation tags
const (
	notBlankTag = "notblank"
	programTag  = "program"
)

// RegisterBindings installs the custom tags on gin's validator. It must run
// before any request is bound.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidations(v)
}

func RegisterValidations(v *validator.Validate) error {
	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(notBlankTag, notBlankValidation); err != nil {
		return err
	}
	return v.RegisterValidation(programTag, programValidation)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// programValidation accepts IDEIAS and SANGUE_VERDE in any case.
func programValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return ResolveProgram(str).Valid()
	}
	return false
}
