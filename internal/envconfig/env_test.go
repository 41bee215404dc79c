package envconfig

import (
	"os"
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("ENVCONFIG_TEST_SET", "value")
	t.Setenv("ENVCONFIG_TEST_EMPTY", "")

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{name: "set", key: "ENVCONFIG_TEST_SET", fallback: "fb", want: "value"},
		{name: "empty uses fallback", key: "ENVCONFIG_TEST_EMPTY", fallback: "fb", want: "fb"},
		{name: "unset uses fallback", key: "ENVCONFIG_TEST_UNSET", fallback: "fb", want: "fb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Get(tt.key, tt.fallback); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Setenv("ENVCONFIG_TEST_LOOKUP", "")
	if got := Lookup("ENVCONFIG_TEST_LOOKUP", "fb"); got != "" {
		t.Fatalf("expected empty value to be returned as is, got %q", got)
	}

	t.Setenv("ENVCONFIG_TEST_LOOKUP", "value")
	if got := Lookup("ENVCONFIG_TEST_LOOKUP", "fb"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}

	os.Unsetenv("ENVCONFIG_TEST_LOOKUP")
	if got := Lookup("ENVCONFIG_TEST_LOOKUP", "fb"); got != "fb" {
		t.Fatalf("expected fallback for unset variable, got %q", got)
	}
}

func TestBool(t *testing.T) {
	for _, raw := range []string{"1", "true", "YES", " on "} {
		t.Setenv("ENVCONFIG_TEST_BOOL", raw)
		if !Bool("ENVCONFIG_TEST_BOOL", false) {
			t.Fatalf("expected %q to parse as true", raw)
		}
	}
	t.Setenv("ENVCONFIG_TEST_BOOL", "nope")
	if Bool("ENVCONFIG_TEST_BOOL", true) {
		t.Fatal("expected unrecognised value to parse as false")
	}
	t.Setenv("ENVCONFIG_TEST_BOOL", "")
	if !Bool("ENVCONFIG_TEST_BOOL", true) {
		t.Fatal("expected empty value to use fallback")
	}
}

func TestValidate(t *testing.T) {
	type sample struct {
		Name string `validate:"required"`
	}
	if err := Validate(sample{}); err == nil {
		t.Fatal("expected validation error for missing field")
	}
	if err := Validate(sample{Name: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
