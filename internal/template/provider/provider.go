package provider

import (
	"context"

	"github.com/go-git/go-billy/v5"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
)

// Provider abstracts where template sets come from.
type Provider interface {
	// List returns the available template names, sorted.
	List(ctx context.Context) ([]string, error)

	// Open returns a filesystem rooted at the named template, holding src/.
	Open(ctx context.Context, name string) (billy.Filesystem, error)

	// Name returns the provider name.
	Name() string
}

// Resolve opens the template chosen for a run. An empty name or "default"
// selects the built-in templates, anything else a custom template.
func Resolve(ctx context.Context, builtin, custom Provider, name string) (billy.Filesystem, error) {
	if name == "" || name == model.DefaultTemplateName || custom == nil {
		debug.Debug("[provider] Using built-in templates")
		return builtin.Open(ctx, model.DefaultTemplateName)
	}
	debug.Debug("[provider] Using custom template %s", name)
	return custom.Open(ctx, name)
}
