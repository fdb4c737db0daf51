package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tacogips/crogen/internal/debug"
)

const (
	// StateDir holds per-project crogen state next to the config file.
	StateDir  = ".crogen"
	stateFile = "state.yaml"
)

// State holds answers remembered between runs and offered as defaults.
type State struct {
	Developer      string
	ChildFolder    string
	CustomTemplate string
}

// StatePath returns the state file location for a config directory.
func StatePath(configDir string) string {
	return filepath.Join(configDir, StateDir, stateFile)
}

// LoadState reads remembered answers. A missing or unreadable file yields
// an empty State.
func LoadState(configDir string) State {
	path := StatePath(configDir)
	if _, err := os.Stat(path); err != nil {
		return State{}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		debug.Debug("[config] Ignoring unreadable state file %s: %v", path, err)
		return State{}
	}
	return State{
		Developer:      v.GetString("developer"),
		ChildFolder:    v.GetString("childFolder"),
		CustomTemplate: v.GetString("customTemplate"),
	}
}

// SaveState writes remembered answers.
func SaveState(configDir string, s State) error {
	path := StatePath(configDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to create state directory", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("developer", s.Developer)
	v.Set("childFolder", s.ChildFolder)
	v.Set("customTemplate", s.CustomTemplate)
	if err := v.WriteConfigAs(path); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write state file", err)
	}
	return nil
}
