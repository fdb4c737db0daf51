package provider

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

//go:embed all:templates
var builtinTemplates embed.FS

const templatesRoot = "templates"

// BuiltinFS returns the embedded template sets, one directory per set.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinTemplates, templatesRoot)
	if err != nil {
		panic(err)
	}
	return sub
}

// EmbeddedProvider serves the template sets compiled into the binary.
type EmbeddedProvider struct {
	files fs.FS
}

// NewEmbeddedProvider creates a provider over the built-in templates.
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{files: BuiltinFS()}
}

// Name returns the provider name.
func (p *EmbeddedProvider) Name() string {
	return "builtin"
}

// List returns the built-in template names.
func (p *EmbeddedProvider) List(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(p.files, ".")
	if err != nil {
		return nil, NewReadError(p.Name(), ".", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Open copies the named template into an in-memory filesystem.
func (p *EmbeddedProvider) Open(ctx context.Context, name string) (billy.Filesystem, error) {
	if !validName(name) {
		return nil, NewInvalidNameError(p.Name(), name)
	}
	if _, err := fs.Stat(p.files, name); err != nil {
		return nil, NewNotFoundError(p.Name(), name)
	}

	mem := memfs.New()
	err := fs.WalkDir(p.files, name, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := path.Clean(file[len(name):])
		if rel == "." || rel == "/" {
			return nil
		}
		rel = rel[1:]
		if d.IsDir() {
			return mem.MkdirAll(rel, 0755)
		}
		data, err := fs.ReadFile(p.files, file)
		if err != nil {
			return err
		}
		return util.WriteFile(mem, rel, data, 0644)
	})
	if err != nil {
		return nil, NewReadError(p.Name(), name, err)
	}
	return mem, nil
}
