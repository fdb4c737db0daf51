package config

import (
	"fmt"
	"strings"
)

// Required top-level sections, in reporting order.
var requiredSections = []string{"output", "experimentation", "templates", "prompts"}

// Result is the outcome of Validate.
// Errors are fatal; warnings only limit optional features.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err converts a failed result into a ConfigError.
func (r Result) Err(file string) error {
	if r.Valid() {
		return nil
	}
	return NewConfigError(ConfigValidationFailed, file, strings.Join(r.Errors, "; "))
}

// Validate checks a loaded configuration. It never mutates cfg.
// When a required section is missing the remaining checks are skipped.
func Validate(cfg *Config) Result {
	var res Result
	if cfg == nil {
		res.Errors = append(res.Errors, "Invalid configuration object provided")
		return res
	}

	present := map[string]bool{
		"output":          cfg.Output != nil,
		"experimentation": cfg.Experimentation != nil,
		"templates":       cfg.Templates != nil,
		"prompts":         cfg.Prompts != nil,
	}
	for _, section := range requiredSections {
		if !present[section] {
			res.Errors = append(res.Errors, fmt.Sprintf("Missing required section: %s", section))
		}
	}
	if len(res.Errors) > 0 {
		return res
	}

	if strings.TrimSpace(cfg.Output.Destination) == "" {
		res.Errors = append(res.Errors, "No output destination set in configuration")
	}
	if strings.TrimSpace(cfg.Templates.CustomDirectory) == "" {
		res.Errors = append(res.Errors, "No custom templates directory specified")
	}
	if cfg.Prompts.Files == nil {
		res.Errors = append(res.Errors, "Invalid or missing files configuration in prompts section")
	}

	validateProjects(cfg.Experimentation.Projects, &res)
	return res
}

func validateProjects(projects []Project, res *Result) {
	if projects == nil {
		return
	}

	var defaults []string
	for _, p := range projects {
		if p.Default {
			defaults = append(defaults, p.Name)
		}
	}

	switch len(defaults) {
	case 0:
		res.Warnings = append(res.Warnings, "No default experimentation project set - add one to utilize the API")
		return
	case 1:
	default:
		res.Errors = append(res.Errors,
			fmt.Sprintf("Only one experimentation project may be default, found %d: %s", len(defaults), strings.Join(defaults, ", ")))
	}

	for _, p := range projects {
		if p.Default {
			res.Warnings = append(res.Warnings, projectWarnings(p)...)
			return
		}
	}
}

func projectWarnings(p Project) []string {
	var warnings []string
	if p.ProjectID == 0 {
		warnings = append(warnings, "No experimentation project ID set - add one to utilize the API")
	}
	if p.AuthToken == "" {
		warnings = append(warnings, "No experimentation auth token set - add one to utilize the API")
	}
	if p.Audiences == nil {
		warnings = append(warnings, "No experimentation audiences configured - this may limit targeting options")
	}
	return warnings
}
