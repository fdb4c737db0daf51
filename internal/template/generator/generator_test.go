package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/template/model"
)

func templateFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func readFile(t *testing.T, fs billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(fs, name)
	require.NoError(t, err)
	return string(data)
}

func sampleVars() *model.TemplateVariables {
	return &model.TemplateVariables{
		TestID:          "T-1",
		TestName:        "Hero",
		Developer:       "Chris",
		VariationCount:  2,
		FilesToGenerate: []string{"control", "shared", "variation", "js", "readme"},
	}
}

func planFor(t *testing.T, vars *model.TemplateVariables) []model.PlanEntry {
	t.Helper()
	entries, err := Plan(PlanFromVariables(vars, config.DefaultFileKinds(), "_tests"))
	require.NoError(t, err)
	return entries
}

func TestGenerate(t *testing.T) {
	source := templateFS(t, map[string]string{
		"src/js/control.js":     "// <%= testId %> control <%= variations.control.name %>",
		"src/js/shared.js":      "// shared by <%= developer %>",
		"src/js/variation-x.js": "// <%= variations.currentVariation.name %> (<%= variations.currentVariation.filename %>)",
		"src/README.md":         "# <%= testName %>",
	})
	out := memfs.New()
	vars := sampleVars()

	result, err := NewGenerator(NewFSWriter(out)).Generate(context.Background(), GenerateOptions{
		Plan:      planFor(t, vars),
		Variables: vars,
		Source:    source,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 5, result.FilesCreated)

	assert.Equal(t, "// T-1 control ", readFile(t, out, "_tests/T-1/src/js/control.js"))
	assert.Equal(t, "// shared by Chris", readFile(t, out, "_tests/T-1/src/js/shared.js"))
	assert.Equal(t, "// Variation #1 (variation-1)", readFile(t, out, "_tests/T-1/src/js/variation-1.js"))
	assert.Equal(t, "// Variation #2 (variation-2)", readFile(t, out, "_tests/T-1/src/js/variation-2.js"))
	assert.Equal(t, "# Hero", readFile(t, out, "_tests/T-1/src/README.md"))

	_, err = out.Stat("_tests/T-1/src/js/control.js.tmp")
	assert.Error(t, err, "temporary file should be renamed away")
}

func TestGenerateContinuesAfterMissingSource(t *testing.T) {
	source := templateFS(t, map[string]string{
		"src/js/control.js": "control",
		"src/README.md":     "readme",
	})
	out := memfs.New()
	vars := sampleVars()

	result, err := NewGenerator(NewFSWriter(out)).Generate(context.Background(), GenerateOptions{
		Plan:      planFor(t, vars),
		Variables: vars,
		Source:    source,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesCreated)
	require.Len(t, result.Errors, 3)

	var fileErr *FileGenerationError
	require.True(t, errors.As(result.Errors[0], &fileErr))
	assert.Equal(t, "src/js/shared.js", fileErr.Source)
	assert.Equal(t, "_tests/T-1/src/js/shared.js", fileErr.Destination)

	var genErr *GeneratorError
	require.True(t, errors.As(result.Errors[0], &genErr))
	assert.Equal(t, GeneratorSourceMissing, genErr.Type)

	assert.Equal(t, "readme", readFile(t, out, "_tests/T-1/src/README.md"))
}

func TestGenerateSkipsExistingUnlessOverwrite(t *testing.T) {
	source := templateFS(t, map[string]string{"src/README.md": "new"})
	vars := sampleVars()
	vars.FilesToGenerate = []string{"readme"}
	plan := planFor(t, vars)

	out := memfs.New()
	require.NoError(t, util.WriteFile(out, "_tests/T-1/src/README.md", []byte("old"), 0644))
	gen := NewGenerator(NewFSWriter(out))

	result, err := gen.Generate(context.Background(), GenerateOptions{Plan: plan, Variables: vars, Source: source})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, "old", readFile(t, out, "_tests/T-1/src/README.md"))

	result, err = gen.Generate(context.Background(), GenerateOptions{Plan: plan, Variables: vars, Source: source, Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesOverwritten)
	assert.Equal(t, "new", readFile(t, out, "_tests/T-1/src/README.md"))
}

func TestDryRunWritesNothing(t *testing.T) {
	source := templateFS(t, map[string]string{
		"src/js/control.js":     "c",
		"src/js/shared.js":      "s",
		"src/js/variation-x.js": "<%= variations.currentVariation.index %>",
		"src/README.md":         "r",
	})
	out := memfs.New()
	vars := sampleVars()

	result, err := NewGenerator(NewFSWriter(out)).DryRun(context.Background(), GenerateOptions{
		Plan:      planFor(t, vars),
		Variables: vars,
		Source:    source,
	})
	require.NoError(t, err)
	assert.Len(t, result.DryRunFiles, 5)
	assert.Equal(t, "2", string(result.DryRunFiles[3].Content))
	assert.Equal(t, []string{"_tests", "_tests/T-1", "_tests/T-1/src", "_tests/T-1/src/js"}, result.Directories)

	_, err = out.Stat("_tests")
	assert.Error(t, err)
}

func TestGenerateBinaryCopiedAsIs(t *testing.T) {
	raw := "\x89PNG\x00<%= testId %>"
	source := templateFS(t, map[string]string{"src/logo.png": raw})
	out := memfs.New()

	plan := []model.PlanEntry{{Kind: "logo", Role: model.RoleSingle, Source: "src/logo.png", Destination: "_tests/T-1/src/logo.png"}}
	_, err := NewGenerator(NewFSWriter(out)).Generate(context.Background(), GenerateOptions{Plan: plan, Variables: sampleVars(), Source: source})
	require.NoError(t, err)
	assert.Equal(t, raw, readFile(t, out, "_tests/T-1/src/logo.png"))
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	vars := sampleVars()
	_, err := NewGenerator(NewFSWriter(memfs.New())).Generate(ctx, GenerateOptions{
		Plan:      planFor(t, vars),
		Variables: vars,
		Source:    memfs.New(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateValidatesOptions(t *testing.T) {
	gen := NewGenerator(NewFSWriter(memfs.New()))
	_, err := gen.Generate(context.Background(), GenerateOptions{Source: memfs.New()})
	assert.Error(t, err)
	_, err = gen.Generate(context.Background(), GenerateOptions{Variables: sampleVars()})
	assert.Error(t, err)
}
