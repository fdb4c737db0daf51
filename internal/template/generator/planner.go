package generator

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
)

const readmeKind = "readme"

// TestRoot returns <destination>/[<childFolder>/]<testID> using slashes.
// Empty segments are dropped.
func TestRoot(destination, childFolder, testID string) string {
	return path.Join(filepath.ToSlash(destination), childFolder, testID)
}

// PlanInput is everything the planner reads.
type PlanInput struct {
	Destination string
	ChildFolder string
	TestID      string
	Files       config.FileKinds
	// Selection is the chosen kinds in selection order.
	Selection  []string
	Variations []model.Variation
}

// PlanFromVariables builds the planner input from the run's variables.
func PlanFromVariables(vars *model.TemplateVariables, files config.FileKinds, destination string) PlanInput {
	return PlanInput{
		Destination: destination,
		ChildFolder: vars.ChildFolder,
		TestID:      vars.TestID,
		Files:       files,
		Selection:   vars.FilesToGenerate,
		Variations:  vars.Variations(),
	}
}

// Plan derives the ordered (source, destination) pairs. It performs no I/O
// and returns the same list for the same input.
func Plan(in PlanInput) ([]model.PlanEntry, error) {
	if err := validateSegments(in); err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(in.Selection))
	for _, k := range in.Selection {
		selected[k] = true
	}

	srcRoot := path.Join(TestRoot(in.Destination, in.ChildFolder, in.TestID), "src")
	var entries []model.PlanEntry

	for _, name := range in.Selection {
		if model.IsStructuralKind(name) {
			continue
		}
		kind, ok := in.Files.Get(name)
		if !ok {
			debug.Debug("[generator] Plan: kind %s is not configured, skipping", name)
			continue
		}
		ext := kind.Extension()

		if kind.SingleFile {
			base := name
			if name == readmeKind {
				base = "README"
			}
			file := base + "." + ext
			entries = append(entries, model.PlanEntry{
				Kind:        name,
				Role:        model.RoleSingle,
				Source:      path.Join("src", file),
				Destination: path.Join(srcRoot, file),
			})
			continue
		}

		if selected[string(model.RoleControl)] {
			file := "control." + ext
			entries = append(entries, model.PlanEntry{
				Kind:        name,
				Role:        model.RoleControl,
				Source:      path.Join("src", name, file),
				Destination: path.Join(srcRoot, name, file),
			})
		}
		if selected[string(model.RoleShared)] {
			file := "shared." + ext
			entries = append(entries, model.PlanEntry{
				Kind:        name,
				Role:        model.RoleShared,
				Source:      path.Join("src", name, file),
				Destination: path.Join(srcRoot, name, file),
			})
		}
		if selected[string(model.RoleVariation)] {
			for i := range in.Variations {
				arm := in.Variations[i]
				entries = append(entries, model.PlanEntry{
					Kind:        name,
					Role:        model.RoleVariation,
					Source:      path.Join("src", name, "variation-x."+ext),
					Destination: path.Join(srcRoot, name, arm.Filename+"."+ext),
					Variation:   &arm,
				})
			}
		}
	}

	debug.Debug("[generator] Plan: %d entries for selection %v", len(entries), in.Selection)
	return entries, nil
}

// validateSegments rejects ids and folders that would escape the test root.
func validateSegments(in PlanInput) error {
	if strings.TrimSpace(in.TestID) == "" {
		return newGeneratorError(GeneratorPathError, "test id is required", "", nil)
	}
	if strings.TrimSpace(in.Destination) == "" {
		return newGeneratorError(GeneratorPathError, "output destination is required", "", nil)
	}
	if strings.ContainsAny(in.TestID, `/\`) || hasTraversal(in.TestID) {
		return newGeneratorError(GeneratorPathError, "test id must be a single path segment", in.TestID, nil)
	}
	if hasTraversal(in.ChildFolder) || path.IsAbs(filepath.ToSlash(in.ChildFolder)) {
		return newGeneratorError(GeneratorPathError, "child folder must stay inside the destination", in.ChildFolder, nil)
	}
	for _, k := range in.Files {
		if strings.ContainsAny(k.Extension(), `/\`) || hasTraversal(k.Name) {
			return newGeneratorError(GeneratorPathError, "file kind produces an unsafe path", k.Name, nil)
		}
	}
	return nil
}

func hasTraversal(p string) bool {
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
