package config

import (
	"dario.cat/mergo"
)

const (
	// DefaultFileName is the config file name without extension.
	DefaultFileName = "cro.config"
	// DefaultAPIBaseURL is the experiment REST API root.
	DefaultAPIBaseURL = "https://api.optimizely.com/v2"
	// DefaultTestNameFormat names experiments after the test id, type and name.
	DefaultTestNameFormat = "[<%= testId %>][<%= experiment.testType %>][<%= testName %>]"
	// DefaultTemplateDir is where `crogen init` installs templates.
	DefaultTemplateDir = "_templates"
	// DefaultDestination is the default output root.
	DefaultDestination = "_tests"
)

// DefaultFileKinds returns the built-in file kinds in prompt order.
func DefaultFileKinds() FileKinds {
	return FileKinds{
		{Name: "html", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "shared", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "control", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "variation", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "js", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "css", ShowInPrompts: true, CheckedByDefault: true},
		{Name: "readme", ShowInPrompts: true, CheckedByDefault: true, FileExtension: "md", SingleFile: true},
		{Name: "scss", ShowInPrompts: true, CheckedByDefault: false},
		{Name: "tampermonkey", ShowInPrompts: true, CheckedByDefault: false, FileExtension: "js"},
		{Name: "cypress", ShowInPrompts: true, CheckedByDefault: false, FileExtension: "js", SingleFile: true},
	}
}

// DefaultConfig returns the starter configuration written by `crogen init`.
func DefaultConfig() *Config {
	return &Config{
		Experimentation: &ExperimentationConfig{
			APIBaseURL:     DefaultAPIBaseURL,
			TestNameFormat: DefaultTestNameFormat,
			Projects: []Project{
				{
					Name:      "Default",
					AuthToken: "${OPTIMIZELY_AUTH_TOKEN}",
					Audiences: map[string]int64{},
					Default:   true,
				},
			},
		},
		Prompts: &PromptsConfig{
			Config: &PromptSettings{
				ChildFolders:    []string{},
				Developers:      []string{},
				HomepageURL:     "https://www.example.com/",
				TestIDExample:   "CRO-1",
				TestNameExample: "Homepage hero copy",
			},
			Files: DefaultFileKinds(),
		},
		Output: &OutputConfig{
			Destination: DefaultDestination,
			Localhost:   "http://localhost:3000",
		},
		Templates: &TemplatesConfig{
			CustomDirectory: DefaultTemplateDir,
		},
	}
}

// applyDefaults fills empty optional fields of present sections.
// Absent sections stay absent so validation can report them.
func applyDefaults(cfg *Config) error {
	if cfg.Experimentation != nil {
		defaults := ExperimentationConfig{APIBaseURL: DefaultAPIBaseURL}
		if err := mergo.Merge(cfg.Experimentation, defaults); err != nil {
			return err
		}
	}
	if cfg.Prompts != nil && cfg.Prompts.Config != nil {
		if err := mergo.Merge(cfg.Prompts.Config, PromptSettings{TestIDExample: "CRO-1"}); err != nil {
			return err
		}
	}
	return nil
}
