package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("mediamime", isMediaMimeType); err != nil {
		panic(err)
	}
}

// isMediaMimeType accepts image/* and video/* types with a non-empty subtype.
func isMediaMimeType(fl validator.FieldLevel) bool {
	mt := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	for _, prefix := range []string{"image/", "video/"} {
		if strings.HasPrefix(mt, prefix) && len(mt) > len(prefix) {
			return true
		}
	}
	return false
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := make(map[string]string)
	var vErrs validator.ValidationErrors
	if ok := asValidationErrors(validationErrs, &vErrs); !ok {
		errsMap["_"] = validationErrs.Error()
	}
	for _, fieldErr := range vErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}

// asValidationErrors looks through wrapped errors, so "%w: %w" chains from
// the use cases still yield their field errors.
func asValidationErrors(err error, out *validator.ValidationErrors) bool {
	return errors.As(err, out)
}
