// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Folio", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"undotted_domain", "test@localhost", false},
		{"display_name", "Jane <jane@example.com>", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "tai").
		MinLen("username", "tai", 3).
		MaxLen("username", "tai", 10).
		Email("email", "tai@folio.dev").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_URL checks absolute http(s) URL validation and its optional variant.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://github.com/folio", true},
		{"http", "http://localhost:3000/demo", true},
		{"relative", "/projects/1", false},
		{"other_scheme", "ftp://example.com/file", false},
		{"no_host", "https://", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("live_url", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}

	t.Run("optional_empty", func(t *testing.T) {
		v := &validate.Validator{}
		v.OptionalURL("github_url", "  ")
		assert.False(t, v.HasErrors())
	})

	t.Run("optional_invalid", func(t *testing.T) {
		v := &validate.Validator{}
		v.OptionalURL("github_url", "github.com/folio")
		assert.True(t, v.HasErrors())
	})
}

/*
TestValidator_Date checks both accepted date layouts.
*/
func TestValidator_Date(t *testing.T) {
	for value, isValid := range map[string]bool{
		"2024-03-01": true,
		"2024-03":    true,
		"2024-13":    false,
		"March 2024": false,
		"":           false,
	} {
		v := &validate.Validator{}
		v.Date("start_date", value)
		assert.Equal(t, !isValid, v.HasErrors(), value)
	}
}

/*
TestValidator_OneOf checks enum membership.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("category", "backend", "frontend", "backend")
	assert.False(t, v.HasErrors())

	v.OneOf("category", "design", "frontend", "backend")
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "category", ae.Details[0].Field)
	assert.Contains(t, ae.Details[0].Message, "frontend, backend")
}
