package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks s against its `validate` tags and reports every
// failing field in one error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errMsgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		msg := fmt.Sprintf("field %s violates %q", fieldErr.Field(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			msg += fmt.Sprintf(" (param %s)", fieldErr.Param())
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
