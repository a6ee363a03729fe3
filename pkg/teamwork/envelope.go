package teamwork

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Unwrap extracts the value stored under key in a decoded object. An empty
// key returns decoded unchanged.
func Unwrap(decoded any, key string) (any, error) {
	if key == "" {
		return decoded, nil
	}

	object, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unwrapping %q from %T: %w", key, decoded, ErrMissingEnvelopeKey)
	}

	value, ok := object[key]
	if !ok {
		return nil, fmt.Errorf("unwrapping %q: %w", key, ErrMissingEnvelopeKey)
	}

	return value, nil
}

// Decode converts a decoded JSON value into out, matching fields by their json tags.
// String numbers and booleans are converted, which the API uses for most scalars.
func Decode(value any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(value)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	return nil
}
