// Package validation wires go-playground/validator into echo so request
// structs are checked against their validate tags before any persistence
// operation runs. Validation is purely structural and never touches the
// database.
package validation

import (
	"reflect"
	"strings"

	"kbikes-api/internal/errs"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with JSON field names reported in errors
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks a request struct and converts the first violation into
// an errs.ValidationError naming the offending field and constraint.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		return &errs.ValidationError{Field: fe.Field(), Constraint: constraint}
	}
	return err
}
