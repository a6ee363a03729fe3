package teamwork

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errBlankValue = errors.New("value is blank")

// ValidationRule declares the checks for one input field. Checks run in the
// order required, max length, allowed values.
type ValidationRule struct {
	Field string

	Required        bool
	RequiredMessage string

	// MaxLength is counted in characters. Zero disables the check.
	MaxLength        int
	MaxLengthMessage string

	AllowedValues  []any
	AllowedMessage string
}

// Validate evaluates rules in declaration order and returns the first
// failure as a *ValidationError. A nil result means every rule passed.
func Validate(fields Params, rules []ValidationRule) error {
	for _, rule := range rules {
		err := rule.check(fields)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r ValidationRule) check(fields Params) error {
	value, present := fields[r.Field]

	if r.Required {
		err := validation.Validate(value, validation.By(notBlank))
		if err != nil {
			return r.fail(r.RequiredMessage, fmt.Sprintf("`%s` is a required field.", r.Field))
		}
	}

	// Absent optional fields skip the remaining checks.
	if !present || isBlank(value) {
		return nil
	}

	if r.MaxLength > 0 {
		err := validateLength(value, r.MaxLength)
		if err != nil {
			return r.fail(r.MaxLengthMessage,
				fmt.Sprintf("`%s` cannot be longer than %d characters.", r.Field, r.MaxLength))
		}
	}

	if len(r.AllowedValues) > 0 {
		err := validation.Validate(value, validation.In(r.AllowedValues...))
		if err != nil {
			return r.fail(r.AllowedMessage, fmt.Sprintf("`%s` is not one of the allowed values.", r.Field))
		}
	}

	return nil
}

func (r ValidationRule) fail(message, fallback string) error {
	if message == "" {
		message = fallback
	}

	return &ValidationError{Field: r.Field, Message: message}
}

func validateLength(value any, maxLength int) error {
	switch typed := value.(type) {
	case string:
		return validation.Validate(typed, validation.RuneLength(0, maxLength))
	case []any, map[string]any, Params:
		return validation.Validate(typed, validation.Length(0, maxLength))
	default:
		return validation.Validate(fmt.Sprint(typed), validation.RuneLength(0, maxLength))
	}
}

// notBlank accepts zero numbers and false, unlike validation.Required.
func notBlank(value interface{}) error {
	if isBlank(value) {
		return errBlankValue
	}

	return nil
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}

	if text, ok := value.(string); ok {
		return strings.TrimSpace(text) == ""
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// CheckID reports whether value can be used as a path identifier: a string or any integer kind.
func CheckID(value any) bool {
	if value == nil {
		return false
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
