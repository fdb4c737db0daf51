package generator

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
	"github.com/tacogips/crogen/internal/template/parser"
)

// Generator writes planned test files.
type Generator interface {
	// Generate renders and writes every plan entry, respecting Overwrite.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun renders every plan entry without writing anything.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// Plan is the ordered list of (source, destination) pairs.
	Plan []model.PlanEntry

	// Variables supplies the per-entry variable trees.
	Variables *model.TemplateVariables

	// Source is the template root holding the src/ tree.
	Source billy.Filesystem

	// Overwrite replaces existing files instead of skipping them.
	Overwrite bool
}

// DryRunFile describes a file a dry run would write.
type DryRunFile struct {
	Path           string
	Source         string
	Content        []byte
	Exists         bool
	WouldOverwrite bool
	WouldSkip      bool
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	FilesCreated     int
	FilesSkipped     int
	FilesOverwritten int

	// Errors holds one *FileGenerationError per failed pair.
	Errors []error

	// Files lists every destination processed, in plan order.
	Files []string

	// DryRunFiles is only populated in dry-run mode.
	DryRunFiles []DryRunFile

	// Directories lists directories a dry run would create.
	Directories []string
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	processor Processor
	writer    Writer
}

// NewGenerator creates a DefaultGenerator writing through writer.
func NewGenerator(writer Writer) Generator {
	return &DefaultGenerator{
		processor: NewFileProcessor(parser.NewParser(), nil),
		writer:    writer,
	}
}

// Generate renders and writes every plan entry.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun renders every plan entry without writing.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	debug.Debug("[generator] Starting generation: entries=%d, dryRun=%v, overwrite=%v",
		len(opts.Plan), dryRun, opts.Overwrite)

	result := &GenerateResult{
		Errors:      []error{},
		Files:       []string{},
		DryRunFiles: []DryRunFile{},
		Directories: []string{},
	}
	dirsToCreate := make(map[string]bool)

	for _, entry := range opts.Plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Files = append(result.Files, entry.Destination)
		exists := g.writer.Exists(entry.Destination)

		if exists && !opts.Overwrite {
			debug.Debug("[generator] Skipping existing file: %s", entry.Destination)
			result.FilesSkipped++
			if dryRun {
				result.DryRunFiles = append(result.DryRunFiles, DryRunFile{
					Path:      entry.Destination,
					Source:    entry.Source,
					Exists:    true,
					WouldSkip: true,
				})
			}
			continue
		}

		content, err := g.render(ctx, opts, entry)
		if err != nil {
			g.fail(result, entry, err)
			continue
		}

		if dryRun {
			for dir := path.Dir(entry.Destination); dir != "." && dir != "/" && !g.writer.Exists(dir); dir = path.Dir(dir) {
				dirsToCreate[dir] = true
			}
			result.DryRunFiles = append(result.DryRunFiles, DryRunFile{
				Path:           entry.Destination,
				Source:         entry.Source,
				Content:        content,
				Exists:         exists,
				WouldOverwrite: exists,
			})
		} else if err := g.writer.WriteFile(entry.Destination, content, 0644); err != nil {
			g.fail(result, entry, err)
			continue
		}

		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
	}

	if dryRun {
		for dir := range dirsToCreate {
			result.Directories = append(result.Directories, dir)
		}
		sortPaths(result.Directories)
	}

	debug.Debug("[generator] Generation complete: created=%d, overwritten=%d, skipped=%d, errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped, len(result.Errors))
	return result, nil
}

func (g *DefaultGenerator) render(ctx context.Context, opts GenerateOptions, entry model.PlanEntry) ([]byte, error) {
	raw, err := util.ReadFile(opts.Source, entry.Source)
	if err != nil {
		return nil, newGeneratorError(GeneratorSourceMissing, "template source not found", entry.Source, err)
	}
	vars := parser.NewTreeVariables(opts.Variables.TreeFor(entry))
	return g.processor.Process(ctx, entry.Source, raw, vars)
}

func (g *DefaultGenerator) fail(result *GenerateResult, entry model.PlanEntry, err error) {
	debug.Debug("[generator] Failed %s -> %s: %v", entry.Source, entry.Destination, err)
	result.Errors = append(result.Errors, &FileGenerationError{
		Source:      entry.Source,
		Destination: entry.Destination,
		Cause:       err,
	})
}

// sortPaths orders parents before children, then lexicographically.
func sortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], "/"), strings.Count(paths[j], "/")
		if di != dj {
			return di < dj
		}
		return paths[i] < paths[j]
	})
}

func validateOptions(opts GenerateOptions) error {
	if opts.Variables == nil {
		return fmt.Errorf("variables cannot be nil")
	}
	if opts.Source == nil {
		return fmt.Errorf("template source cannot be nil")
	}
	return nil
}
