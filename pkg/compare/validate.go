package compare

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// sharedValidator validates operation config structs against their struct
// tags. A single instance is safe for concurrent use and caches struct
// metadata across calls.
var sharedValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateConfig runs struct-tag validation for an operation's config and
// wraps failures as an invalid-configuration error naming the operation.
func validateConfig(op string, cfg interface{}) error {
	if err := sharedValidator.Struct(cfg); err != nil {
		return NewInvalidConfig(fmt.Sprintf("%s: invalid configuration", op), err.Error())
	}
	return nil
}

// requireKey rejects empty field-name arguments for operations that take
// plain key parameters instead of a config struct.
func requireKey(op, name, value string) error {
	if value == "" {
		return NewInvalidConfig(fmt.Sprintf("%s: %s must not be empty", op, name), nil)
	}
	return nil
}

// requireKeys rejects empty value-key lists.
func requireKeys(op, name string, values []string) error {
	if len(values) == 0 {
		return NewInvalidConfig(fmt.Sprintf("%s: %s must name at least one field", op, name), nil)
	}
	for _, v := range values {
		if v == "" {
			return NewInvalidConfig(fmt.Sprintf("%s: %s must not contain empty names", op, name), nil)
		}
	}
	return nil
}
