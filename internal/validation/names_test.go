package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidProjectName(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		wantErr     string
	}{
		{name: "simple name", projectName: "my-app"},
		{name: "underscores and digits", projectName: "app_2024"},
		{name: "in-place sentinel", projectName: "."},
		{name: "empty", projectName: "", wantErr: "empty"},
		{name: "spaces rejected", projectName: "my app", wantErr: "can only contain"},
		{name: "slash rejected", projectName: "my/app", wantErr: "can only contain"},
		{name: "too long", projectName: strings.Repeat("a", 65), wantErr: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsValidProjectName(tt.projectName)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatorCustomTags(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	type inputs struct {
		ProjectName    string `validate:"omitempty,project_name" cli:"name"`
		LanguageOption string `validate:"omitempty,language_option" cli:"language"`
	}

	t.Run("valid inputs pass", func(t *testing.T) {
		assert.NoError(t, v.Struct(inputs{ProjectName: "my-app", LanguageOption: "ts-sw"}))
	})

	t.Run("empty inputs pass", func(t *testing.T) {
		assert.NoError(t, v.Struct(inputs{}))
	})

	t.Run("bad project name is translated", func(t *testing.T) {
		err := v.Struct(inputs{ProjectName: "my app"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name must contain only letters")
	})

	t.Run("bad language option rejected", func(t *testing.T) {
		err := v.Struct(inputs{LanguageOption: "coffeescript"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of ts, js, ts-sw, js-sw")
	})
}
