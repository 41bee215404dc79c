package envconfig

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Get returns the value of the requested environment variable or the supplied fallback when empty.
func Get(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

// Lookup returns the value of the requested environment variable, empty or not,
// and only uses fallback when the variable is unset.
func Lookup(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// Bool reports whether the variable holds a truthy value (1, true, yes, on).
func Bool(name string, fallback bool) bool {
	raw, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Validate validates a struct using validator tags.
func Validate(v any) error {
	return validate.Struct(v)
}
