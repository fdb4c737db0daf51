package app

import (
	"context"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
	"github.com/tacogips/crogen/internal/template/provider"
)

// InitOptions contains options for project initialization.
type InitOptions struct {
	// Dir is the project directory to initialize.
	Dir string
	// Force overwrites an existing config file and built-in templates.
	Force bool
}

// InitResult contains the results of project initialization.
type InitResult struct {
	ConfigPath  string
	TemplateDir string
	// ConfigWritten is false when an existing config was kept.
	ConfigWritten bool
	// TemplatesWritten is false when existing templates were kept.
	TemplatesWritten bool
}

// Init writes a starter cro.config.yaml and installs the built-in templates
// into the custom template directory. Existing files are kept unless Force.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	debug.DebugSection("[app] Init workflow start")
	debug.DebugValue("[app] Dir", dir)
	debug.DebugValue("[app] Force", opts.Force)

	result := &InitResult{
		ConfigPath:  filepath.Join(dir, config.DefaultFileName+".yaml"),
		TemplateDir: filepath.Join(dir, config.DefaultTemplateDir, model.DefaultTemplateName),
	}

	existing, err := config.NewLoader(dir).Locate("")
	configExists := err == nil
	if configExists && !opts.Force {
		debug.Debug("[app] Keeping existing config: %s", existing)
		result.ConfigPath = existing
	}
	if !configExists || opts.Force {
		if err := config.Save(result.ConfigPath, config.DefaultConfig()); err != nil {
			return nil, NewInitError("failed to write configuration", err)
		}
		result.ConfigWritten = true
	}

	_, statErr := os.Stat(result.TemplateDir)
	if os.IsNotExist(statErr) || opts.Force {
		if err := installTemplates(ctx, result.TemplateDir); err != nil {
			return nil, NewInitError("failed to install templates", err)
		}
		result.TemplatesWritten = true
	}

	if !result.ConfigWritten && !result.TemplatesWritten {
		return result, NewInitError("project already initialized (use --force to overwrite)", nil)
	}
	return result, nil
}

// installTemplates copies the embedded default templates to dest.
func installTemplates(ctx context.Context, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	debug.Debug("[app] Installing built-in templates to %s", dest)
	return cp.Copy(model.DefaultTemplateName, dest, cp.Options{
		FS:                provider.BuiltinFS(),
		PermissionControl: cp.AddPermission(0200),
	})
}
