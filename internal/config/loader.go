package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/tacogips/crogen/internal/debug"
)

// Environment variables that override config values.
const (
	EnvPrefix      = "CROGEN"
	EnvDestination = "CROGEN_DESTINATION"
	EnvLocalhost   = "CROGEN_LOCALHOST"
	EnvAuthToken   = "CROGEN_AUTH_TOKEN"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from path, or searches dir when path is empty.
	Load(path string) (*Config, error)
	// Locate returns the file Load would read.
	Locate(path string) (string, error)
}

// FileLoader loads cro.config.{yaml,yml,json} files.
type FileLoader struct {
	// Dir is searched when no explicit path is given.
	Dir string
}

// NewLoader creates a FileLoader searching dir.
func NewLoader(dir string) Loader {
	if dir == "" {
		dir = "."
	}
	return &FileLoader{Dir: dir}
}

// Load locates, lints and decodes the configuration file.
// Validation of required sections is left to Validate.
func (l *FileLoader) Load(path string) (*Config, error) {
	v, used, err := l.read(path)
	if err != nil {
		return nil, err
	}
	debug.Debug("[config] Using configuration file: %s", used)

	data, err := os.ReadFile(used)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, used, "failed to read configuration file", err)
	}

	cfg, err := Parse(used, data)
	if err != nil {
		return nil, err
	}

	loadDotEnv(filepath.Dir(used))
	expandSecrets(cfg)
	applyEnvOverrides(v, cfg)
	return cfg, nil
}

// Locate returns the configuration file Load would read.
func (l *FileLoader) Locate(path string) (string, error) {
	_, used, err := l.read(path)
	return used, err
}

func (l *FileLoader) read(path string) (*viper.Viper, string, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(l.Dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	_ = v.BindEnv("output.destination", EnvDestination)
	_ = v.BindEnv("output.localhost", EnvLocalhost)
	_ = v.BindEnv("auth_token", EnvAuthToken)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			where := path
			if where == "" {
				where = filepath.Join(l.Dir, DefaultFileName+".yaml")
			}
			return nil, "", NewConfigErrorWithCause(ConfigNotFound, where, "configuration file not found", err)
		}
		return nil, "", NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}
	return v, v.ConfigFileUsed(), nil
}

// LintFile checks a configuration file against the schema without decoding
// it into a Config.
func LintFile(path string) ([]SchemaIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigNotFound, path, "failed to read configuration file", err)
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return LintDocument(doc)
}

// Parse lints and decodes configuration bytes. JSON documents are accepted
// because they are valid YAML.
func Parse(file string, data []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, file, "invalid YAML syntax", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	issues, err := LintDocument(doc)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, file, "failed to check configuration structure", err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, NewConfigError(ConfigInvalid, file, strings.Join(msgs, "; "))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, file, "failed to decode configuration", err)
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, file, "failed to apply defaults", err)
	}
	cfg.Path = file
	return &cfg, nil
}

// loadDotEnv loads dir/.env without overriding variables already set.
func loadDotEnv(dir string) {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		debug.Debug("[config] Failed to load %s: %v", envFile, err)
		return
	}
	debug.Debug("[config] Loaded environment from %s", envFile)
}

// expandSecrets resolves ${VAR} references in project auth tokens.
func expandSecrets(cfg *Config) {
	if cfg.Experimentation == nil {
		return
	}
	for i := range cfg.Experimentation.Projects {
		p := &cfg.Experimentation.Projects[i]
		if strings.Contains(p.AuthToken, "$") {
			p.AuthToken = os.ExpandEnv(p.AuthToken)
		}
	}
}

func applyEnvOverrides(v *viper.Viper, cfg *Config) {
	if cfg.Output != nil {
		if s := v.GetString("output.destination"); s != "" && s != cfg.Output.Destination {
			debug.Debug("[config] output.destination overridden by %s", EnvDestination)
			cfg.Output.Destination = s
		}
		if s := v.GetString("output.localhost"); s != "" && s != cfg.Output.Localhost {
			debug.Debug("[config] output.localhost overridden by %s", EnvLocalhost)
			cfg.Output.Localhost = s
		}
	}
	if token := v.GetString("auth_token"); token != "" && cfg.Experimentation != nil {
		for i := range cfg.Experimentation.Projects {
			if cfg.Experimentation.Projects[i].Default {
				debug.Debug("[config] default project auth token overridden by %s", EnvAuthToken)
				cfg.Experimentation.Projects[i].AuthToken = token
			}
		}
	}
}

// Save writes cfg as YAML to path.
// Security: The path is validated to prevent path traversal attacks.
func Save(path string, cfg *Config) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return NewConfigErrorWithCause(ConfigInvalid, path,
			"path contains '..' which is not allowed for security reasons", nil)
	}

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, cleanPath,
			fmt.Sprintf("failed to create directory %s", dir), err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, cleanPath, "failed to marshal configuration", err)
	}

	if err := os.WriteFile(cleanPath, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, cleanPath, "failed to write configuration", err)
	}
	return nil
}

// Dir returns the directory holding the loaded config file.
func (c *Config) Dir() string {
	if c == nil || c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// ResolvePath resolves p relative to the config directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}
