package config

import (
	"fmt"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"
)

// Config represents a project's cro.config file.
// Sections are pointers so a missing section can be told apart from an empty one.
type Config struct {
	// Experimentation configures the experiment API integration.
	Experimentation *ExperimentationConfig `yaml:"experimentation,omitempty" json:"experimentation,omitempty"`
	// Prompts configures prompt choices and the known file kinds.
	Prompts *PromptsConfig `yaml:"prompts,omitempty" json:"prompts,omitempty"`
	// Output configures where generated tests are written.
	Output *OutputConfig `yaml:"output,omitempty" json:"output,omitempty"`
	// Templates configures custom template lookup.
	Templates *TemplatesConfig `yaml:"templates,omitempty" json:"templates,omitempty"`

	// Path is the file the config was loaded from.
	Path string `yaml:"-" json:"-"`
}

// ExperimentationConfig holds experiment API settings and projects.
type ExperimentationConfig struct {
	// APIBaseURL is the REST API root, without a trailing slash.
	APIBaseURL string `yaml:"apiBaseUrl,omitempty" json:"apiBaseUrl,omitempty"`
	// TestNameFormat formats experiment names, e.g. "[<%= testId %>][<%= testName %>]".
	TestNameFormat string `yaml:"testNameFormat,omitempty" json:"testNameFormat,omitempty"`
	// Projects lists the experimentation projects available to the user.
	Projects []Project `yaml:"projects" json:"projects"`
}

// Project is one experimentation project.
type Project struct {
	Name      string           `yaml:"project_name" json:"project_name"`
	AuthToken string           `yaml:"auth_token,omitempty" json:"auth_token,omitempty"`
	ProjectID int64            `yaml:"project_id,omitempty" json:"project_id,omitempty"`
	Audiences map[string]int64 `yaml:"audiences,omitempty" json:"audiences,omitempty"`
	Default   bool             `yaml:"default,omitempty" json:"default,omitempty"`
}

// HasCredentials reports whether the project can talk to the experiment API.
func (p Project) HasCredentials() bool {
	return p.AuthToken != "" && p.ProjectID != 0
}

// PromptsConfig configures the interactive prompts.
type PromptsConfig struct {
	// Config holds prompt choices and defaults.
	Config *PromptSettings `yaml:"config,omitempty" json:"config,omitempty"`
	// Files lists the known file kinds in declaration order.
	Files FileKinds `yaml:"files" json:"files"`
}

// PromptSettings holds prompt choices and example values.
type PromptSettings struct {
	ChildFolders    []string `yaml:"childFolders,omitempty" json:"childFolders,omitempty"`
	Developers      []string `yaml:"developers,omitempty" json:"developers,omitempty"`
	HomepageURL     string   `yaml:"homepageUrl,omitempty" json:"homepageUrl,omitempty"`
	TestIDExample   string   `yaml:"testIdExample,omitempty" json:"testIdExample,omitempty"`
	TestNameExample string   `yaml:"testNameExample,omitempty" json:"testNameExample,omitempty"`
}

// OutputConfig configures the output tree.
type OutputConfig struct {
	// Destination is the root directory for generated tests.
	Destination string `yaml:"destination" json:"destination"`
	// Localhost is the base URL of a local server serving Destination.
	Localhost string `yaml:"localhost,omitempty" json:"localhost,omitempty"`
}

// TemplatesConfig configures custom templates.
type TemplatesConfig struct {
	// CustomDirectory holds one subdirectory per custom template.
	CustomDirectory string `yaml:"customDirectory" json:"customDirectory"`
	// DefaultCustomTemplate is offered as the default custom template.
	DefaultCustomTemplate string `yaml:"defaultCustomTemplate,omitempty" json:"defaultCustomTemplate,omitempty"`
}

// FileKind describes how one kind of file is generated.
type FileKind struct {
	Name             string `yaml:"-" json:"-"`
	ShowInPrompts    bool   `yaml:"showInPrompts" json:"showInPrompts"`
	CheckedByDefault bool   `yaml:"checkedByDefault" json:"checkedByDefault"`
	FileExtension    string `yaml:"fileExtension,omitempty" json:"fileExtension,omitempty"`
	SingleFile       bool   `yaml:"singleFile,omitempty" json:"singleFile,omitempty"`
}

// Extension returns the file extension, defaulting to the kind name.
func (k FileKind) Extension() string {
	if k.FileExtension != "" {
		return k.FileExtension
	}
	return k.Name
}

// FileKinds is an ordered file kind mapping.
type FileKinds []FileKind

// Get returns the file kind with the given name.
func (f FileKinds) Get(name string) (FileKind, bool) {
	for _, k := range f {
		if k.Name == name {
			return k, true
		}
	}
	return FileKind{}, false
}

// Names returns kind names in declaration order.
func (f FileKinds) Names() []string {
	names := make([]string, len(f))
	for i, k := range f {
		names[i] = k.Name
	}
	return names
}

// UnmarshalYAML decodes a mapping while keeping key order.
func (f *FileKinds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: files must be a mapping of file kinds", node.Line)
	}
	kinds := make(FileKinds, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var kind FileKind
		if err := value.Decode(&kind); err != nil {
			return fmt.Errorf("file kind %q: %w", key.Value, err)
		}
		kind.Name = key.Value
		kinds = append(kinds, kind)
	}
	*f = kinds
	return nil
}

// MarshalYAML encodes the kinds as an ordered mapping.
func (f FileKinds) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kind := range f {
		var value yaml.Node
		if err := value.Encode(kind); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kind.Name},
			&value,
		)
	}
	return node, nil
}

// DefaultProject returns the project marked default.
func (c *Config) DefaultProject() (Project, bool) {
	if c == nil || c.Experimentation == nil {
		return Project{}, false
	}
	for _, p := range c.Experimentation.Projects {
		if p.Default {
			return p, true
		}
	}
	return Project{}, false
}

// CredentialedProjects returns projects that have an auth token and id.
func (c *Config) CredentialedProjects() []Project {
	if c == nil || c.Experimentation == nil {
		return nil
	}
	return lo.Filter(c.Experimentation.Projects, func(p Project, _ int) bool {
		return p.HasCredentials()
	})
}

// Settings returns prompt settings, never nil.
func (c *Config) Settings() PromptSettings {
	if c == nil || c.Prompts == nil || c.Prompts.Config == nil {
		return PromptSettings{}
	}
	return *c.Prompts.Config
}

// FileKinds returns configured file kinds.
func (c *Config) FileKinds() FileKinds {
	if c == nil || c.Prompts == nil {
		return nil
	}
	return c.Prompts.Files
}
