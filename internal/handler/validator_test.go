package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

type profileStruct struct {
	Name string `validate:"required,profilename"`
}

type saleDateStruct struct {
	Date string `validate:"saledate"`
}

func TestValidator_ProfileName(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Best case
		{"plain", "alice", false},
		{"accents and spaces", "Sacri Terre Élodie", false},

		// Boundary
		{"max length", strings.Repeat("é", profile.MaxNameLength), false},
		{"too long", strings.Repeat("a", profile.MaxNameLength+1), true},

		// Invalid
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"trailing space", "alice ", true},
		{"tab", "al\tice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(profileStruct{Name: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SaleDate(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"14/03/2026", false},
		{"", false},
		{"31/02/2026", true},
		{"2026-03-14", true},
		{"14/3/26", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := v.ValidateStruct(saleDateStruct{Date: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("not a validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, errs)
	})

	t.Run("field messages", func(t *testing.T) {
		err := GetValidator().ValidateStruct(profileStruct{})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"name": "This field is required"}, FormatValidationError(err))

		err = GetValidator().ValidateStruct(profileStruct{Name: " x"})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"name": "Invalid profile name"}, FormatValidationError(err))
	})
}
