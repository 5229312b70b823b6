package validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

// TestIsValidUUID tests UUID validation
func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		uuid string
		want bool
	}{
		{"valid UUID v4", "550e8400-e29b-41d4-a716-446655440000", true},
		{"valid UUID v4 lowercase", "123e4567-e89b-42d3-a456-426614174000", true},
		{"valid UUID uppercase", "550E8400-E29B-41D4-A716-446655440000", true},
		{"invalid - too short", "550e8400-e29b-41d4", false},
		{"invalid - no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"invalid - wrong format", "not-a-uuid-at-all", false},
		{"empty string", "", false},
		{"random string", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.uuid); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.uuid, got, tt.want)
			}
		})
	}
}

type bindingSample struct {
	Name  string `binding:"required,max=5"`
	Email string `binding:"required,email"`
}

// validate runs the same validator engine gin uses for binding tags
func validate(t *testing.T, v any) error {
	t.Helper()
	engine := validator.New()
	engine.SetTagName("binding")
	return engine.Struct(v)
}

// TestFromBindingError tests conversion of validator errors into field errors
func TestFromBindingError(t *testing.T) {
	tests := []struct {
		name       string
		sample     bindingSample
		wantFields map[string]string
	}{
		{
			name:   "missing fields",
			sample: bindingSample{},
			wantFields: map[string]string{
				"name":  "is required",
				"email": "is required",
			},
		},
		{
			name:   "invalid email and long name",
			sample: bindingSample{Name: "Anastasia", Email: "nope"},
			wantFields: map[string]string{
				"name":  "must be at most 5 characters",
				"email": "must be a valid email address",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := FromBindingError(validate(t, tt.sample))
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("FromBindingError() len = %d, want %d (%v)", len(errs), len(tt.wantFields), errs)
			}
			for _, err := range errs {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error %v is not a *ValidationError", err)
				}
				want, ok := tt.wantFields[ve.Field]
				if !ok {
					t.Errorf("unexpected field %q", ve.Field)
					continue
				}
				if ve.Message != want {
					t.Errorf("field %q message = %q, want %q", ve.Field, ve.Message, want)
				}
			}
		})
	}
}

// TestFromBindingError_NonValidatorError tests that decode errors map to the body field
func TestFromBindingError_NonValidatorError(t *testing.T) {
	errs := FromBindingError(errors.New("unexpected EOF"))
	if len(errs) != 1 {
		t.Fatalf("FromBindingError() len = %d, want 1", len(errs))
	}
	if got, want := errs[0].Error(), "body: unexpected EOF"; got != want {
		t.Errorf("FromBindingError() = %q, want %q", got, want)
	}

	if got := FromBindingError(nil); got != nil {
		t.Errorf("FromBindingError(nil) = %v, want nil", got)
	}
}

// TestFormatValidationErrors tests error message formatting
func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(nil); got != "" {
		t.Errorf("FormatValidationErrors(nil) = %q, want empty", got)
	}

	single := []error{NewValidationError("name", "is required")}
	if got, want := FormatValidationErrors(single), "name: is required"; got != want {
		t.Errorf("FormatValidationErrors(single) = %q, want %q", got, want)
	}

	multiple := []error{
		NewValidationError("name", "is required"),
		NewValidationError("email", "is required"),
	}
	got := FormatValidationErrors(multiple)
	if !strings.HasPrefix(got, "validation errors:\n") {
		t.Errorf("FormatValidationErrors(multiple) = %q, want validation errors prefix", got)
	}
	if !strings.Contains(got, "  2. email: is required") {
		t.Errorf("FormatValidationErrors(multiple) = %q, want numbered email entry", got)
	}
	if !HasValidationErrors(multiple) {
		t.Error("HasValidationErrors() = false, want true")
	}
}
