// Package validation checks request input schemas and turns the first
// failing field into a client-facing apperr.Invalid.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"feedback-backend/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// Messages maps a JSON field name to the message reported when it fails.
type Messages map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates in. Fields are checked in declaration order and only the
// first failure is reported.
func Struct(in any, msgs Messages) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Invalid(err.Error())
	}

	field := verrs[0].Field()
	if msg, ok := msgs[field]; ok {
		return apperr.Invalid(msg)
	}
	return apperr.Invalid(fmt.Sprintf("%s is invalid", field))
}
