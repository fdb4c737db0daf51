package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Experimentation: &ExperimentationConfig{
			Projects: []Project{{
				Name:      "Main",
				AuthToken: "token",
				ProjectID: 123,
				Audiences: map[string]int64{"desktop": 1},
				Default:   true,
			}},
		},
		Prompts: &PromptsConfig{
			Config: &PromptSettings{},
			Files:  DefaultFileKinds(),
		},
		Output:    &OutputConfig{Destination: "_tests"},
		Templates: &TemplatesConfig{CustomDirectory: "_templates"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(c *Config)
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:       "missing output section",
			mutate:     func(c *Config) { c.Output = nil },
			wantErrors: []string{"Missing required section: output"},
		},
		{
			name: "all sections missing returns early",
			mutate: func(c *Config) {
				*c = Config{}
			},
			wantErrors: []string{
				"Missing required section: output",
				"Missing required section: experimentation",
				"Missing required section: templates",
				"Missing required section: prompts",
			},
		},
		{
			name:       "empty destination",
			mutate:     func(c *Config) { c.Output.Destination = "  " },
			wantErrors: []string{"No output destination set in configuration"},
		},
		{
			name:       "missing custom directory",
			mutate:     func(c *Config) { c.Templates.CustomDirectory = "" },
			wantErrors: []string{"No custom templates directory specified"},
		},
		{
			name:       "missing files map",
			mutate:     func(c *Config) { c.Prompts.Files = nil },
			wantErrors: []string{"Invalid or missing files configuration in prompts section"},
		},
		{
			name:         "no default project",
			mutate:       func(c *Config) { c.Experimentation.Projects[0].Default = false },
			wantWarnings: []string{"No default experimentation project set - add one to utilize the API"},
		},
		{
			name: "default project without credentials",
			mutate: func(c *Config) {
				p := &c.Experimentation.Projects[0]
				p.AuthToken = ""
				p.ProjectID = 0
				p.Audiences = nil
			},
			wantWarnings: []string{
				"No experimentation project ID set - add one to utilize the API",
				"No experimentation auth token set - add one to utilize the API",
				"No experimentation audiences configured - this may limit targeting options",
			},
		},
		{
			name:   "no projects configured",
			mutate: func(c *Config) { c.Experimentation.Projects = nil },
		},
		{
			name: "two default projects",
			mutate: func(c *Config) {
				c.Experimentation.Projects = append(c.Experimentation.Projects, Project{Name: "Other", Default: true, AuthToken: "x", ProjectID: 2, Audiences: map[string]int64{}})
			},
			wantErrors: []string{"Only one experimentation project may be default, found 2: Main, Other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			res := Validate(cfg)
			assert.Equal(t, tt.wantErrors, res.Errors)
			assert.Equal(t, tt.wantWarnings, res.Warnings)
			assert.Equal(t, len(tt.wantErrors) == 0, res.Valid())
		})
	}
}

func TestValidateOptionalFieldsOnlyWarn(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Localhost = ""
	cfg.Templates.DefaultCustomTemplate = ""
	cfg.Prompts.Config = nil
	cfg.Experimentation.Projects[0].Audiences = nil

	res := Validate(cfg)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Warnings, 1)
}

func TestValidateDoesNotMutate(t *testing.T) {
	cfg := validConfig()
	cfg.Experimentation.Projects[0].Default = false
	before := *cfg.Experimentation

	Validate(cfg)
	assert.Equal(t, before.Projects, cfg.Experimentation.Projects)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.False(t, res.Valid())
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{}.Err("cro.config.yaml"))

	err := Result{Errors: []string{"a", "b"}}.Err("cro.config.yaml")
	cfgErr, ok := err.(*ConfigError)
	if assert.True(t, ok) {
		assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
		assert.Equal(t, "a; b", cfgErr.Message)
	}
}
