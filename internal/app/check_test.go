package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		wantValid    bool
		wantSchema   bool
		wantErrors   int
		wantWarnings bool
	}{
		{
			name:      "valid",
			config:    projectConfig,
			wantValid: true,
		},
		{
			name:       "missing sections",
			config:     "output:\n  destination: _tests\n",
			wantErrors: 3,
		},
		{
			name:       "wrong types",
			config:     "output:\n  destination: 5\nexperimentation:\n  projects:\n    - project_name: a\n      project_id: abc\n",
			wantSchema: true,
		},
		{
			name: "warnings only",
			config: `experimentation:
  projects:
    - project_name: Main
prompts:
  files:
    js: {showInPrompts: true, checkedByDefault: true}
output:
  destination: _tests
templates:
  customDirectory: _templates
`,
			wantValid:    true,
			wantWarnings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.config)

			result, err := CheckConfig(context.Background(), CheckOptions{WorkDir: dir})
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid())
			assert.Equal(t, tt.wantSchema, len(result.SchemaIssues) > 0)
			assert.Len(t, result.Errors, tt.wantErrors)
			assert.Equal(t, tt.wantWarnings, len(result.Warnings) > 0)
		})
	}
}

func TestCheckConfigMissingFile(t *testing.T) {
	_, err := CheckConfig(context.Background(), CheckOptions{WorkDir: t.TempDir()})
	assert.Error(t, err)
}
