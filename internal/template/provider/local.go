package provider

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
)

// LocalProvider serves custom templates: each subdirectory of Dir is one
// template set.
type LocalProvider struct {
	Dir string
}

// NewLocalProvider creates a provider over a custom template directory.
func NewLocalProvider(dir string) *LocalProvider {
	return &LocalProvider{Dir: dir}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "custom"
}

// List returns custom template directory names. A missing directory is
// not an error and yields no templates.
func (p *LocalProvider) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[provider] Custom template directory %s does not exist", p.Dir)
			return nil, nil
		}
		return nil, NewReadError(p.Name(), p.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	debug.Debug("[provider] Found %d custom templates in %s", len(names), p.Dir)
	return names, nil
}

// Open returns a filesystem rooted at Dir/name.
func (p *LocalProvider) Open(ctx context.Context, name string) (billy.Filesystem, error) {
	if !validName(name) {
		return nil, NewInvalidNameError(p.Name(), name)
	}
	root := filepath.Join(p.Dir, name)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, NewNotFoundError(p.Name(), name)
	}
	return osfs.New(root), nil
}

// CustomTemplateChoices lists custom templates with "default" first, or nil
// when there are none.
func CustomTemplateChoices(ctx context.Context, p Provider) ([]string, error) {
	names, err := p.List(ctx)
	if err != nil || len(names) == 0 {
		return nil, err
	}
	choices := []string{model.DefaultTemplateName}
	for _, n := range names {
		if n != model.DefaultTemplateName {
			choices = append(choices, n)
		}
	}
	return choices, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
