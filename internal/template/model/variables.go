package model

import "strconv"

// DateFormat renders the run date as DD/MM/YYYY.
const DateFormat = "02/01/2006"

// Roles a generated file plays within a kind.
type Role string

const (
	RoleSingle    Role = "single"
	RoleControl   Role = "control"
	RoleShared    Role = "shared"
	RoleVariation Role = "variation"
)

// StructuralKinds are pseudo kinds selecting roles rather than files.
var StructuralKinds = []string{string(RoleControl), string(RoleShared), string(RoleVariation)}

// IsStructuralKind reports whether kind selects a role.
func IsStructuralKind(kind string) bool {
	for _, k := range StructuralKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Variation is one non-control arm of a test, indexed from 1.
type Variation struct {
	Index    int
	Name     string
	Filename string
	ID       string
}

// VariationData is one arm as reported by the experiment API. Index 0 is the
// control arm.
type VariationData struct {
	Name string
	ID   string
}

// PathTriple holds the shared/control/variation forms of one kind.
type PathTriple struct {
	Shared    string
	Control   string
	Variation string
}

// KindPaths holds dist paths and their localhost URL forms.
type KindPaths struct {
	Local  PathTriple
	Server PathTriple
}

// ExperimentMeta carries experiment API details into templates.
type ExperimentMeta struct {
	ProjectName  string
	ExperimentID string
	TestType     string
	// RequestType is GET for an existing experiment and POST for a new one.
	RequestType string
}

// TemplateVariables is built once per run and read by templates.
type TemplateVariables struct {
	Date            string
	TestDetails     string
	TestID          string
	TestName        string
	TestURL         string
	TestDescription string
	VariationCount  int
	ChildFolder     string
	FilesToGenerate []string
	Developer       string
	CustomTemplate  string
	// DestinationPath is the src directory of the test.
	DestinationPath string
	Files           map[string]KindPaths
	Experiment      ExperimentMeta
	VariationData   []VariationData
}

// Variations returns arms 1..VariationCount, named from VariationData when
// the experiment API supplied it.
func (v *TemplateVariables) Variations() []Variation {
	out := make([]Variation, 0, v.VariationCount)
	for i := 1; i <= v.VariationCount; i++ {
		arm := Variation{
			Index:    i,
			Name:     "Variation #" + strconv.Itoa(i),
			Filename: "variation-" + strconv.Itoa(i),
		}
		if i < len(v.VariationData) {
			if name := v.VariationData[i].Name; name != "" {
				arm.Name = name
			}
			arm.ID = v.VariationData[i].ID
		}
		out = append(out, arm)
	}
	return out
}

// Control returns the control arm from VariationData, empty when unknown.
func (v *TemplateVariables) Control() VariationData {
	if len(v.VariationData) == 0 {
		return VariationData{}
	}
	return v.VariationData[0]
}

// Tree exposes the variables as the nested map templates address with
// dotted paths.
func (v *TemplateVariables) Tree() map[string]interface{} {
	experiment := map[string]interface{}{
		"project_name":  v.Experiment.ProjectName,
		"experimentId":  v.Experiment.ExperimentID,
		"testType":      v.Experiment.TestType,
		"requestType":   v.Experiment.RequestType,
		"variationId":   "",
		"variationName": "",
	}

	variationData := make([]interface{}, len(v.VariationData))
	for i, d := range v.VariationData {
		variationData[i] = map[string]interface{}{
			"variationName": d.Name,
			"variationId":   d.ID,
		}
	}

	control := v.Control()
	tree := map[string]interface{}{
		"date":            v.Date,
		"testDetails":     v.TestDetails,
		"testId":          v.TestID,
		"testName":        v.TestName,
		"testUrl":         v.TestURL,
		"testDescription": v.TestDescription,
		"variationCount":  v.VariationCount,
		"childFolder":     v.ChildFolder,
		"filesToGenerate": append([]string(nil), v.FilesToGenerate...),
		"developer":       v.Developer,
		"customTemplate":  v.CustomTemplate,
		"destinationPath": v.DestinationPath,
		"experiment":      experiment,
		// optimizely is kept for templates written against the original keys.
		"optimizely":    experiment,
		"variationData": variationData,
		"variations": map[string]interface{}{
			"control":          map[string]interface{}{"id": control.ID, "name": control.Name},
			"currentVariation": map[string]interface{}{},
		},
	}

	for kind, paths := range v.Files {
		if _, taken := tree[kind]; taken {
			continue
		}
		tree[kind] = map[string]interface{}{
			"shared":    paths.Local.Shared,
			"control":   paths.Local.Control,
			"variation": paths.Local.Variation,
			"server": map[string]interface{}{
				"shared":    paths.Server.Shared,
				"control":   paths.Server.Control,
				"variation": paths.Server.Variation,
			},
		}
	}
	return tree
}

// TreeFor returns the variable tree for rendering one plan entry.
// Variation entries see their own arm as variations.currentVariation.
func (v *TemplateVariables) TreeFor(entry PlanEntry) map[string]interface{} {
	tree := v.Tree()
	experiment := copyMap(tree["experiment"].(map[string]interface{}))
	tree["experiment"] = experiment
	tree["optimizely"] = experiment

	switch entry.Role {
	case RoleVariation:
		if entry.Variation != nil {
			arm := entry.Variation
			tree["variations"].(map[string]interface{})["currentVariation"] = map[string]interface{}{
				"index":    arm.Index,
				"name":     arm.Name,
				"filename": arm.Filename,
				"id":       arm.ID,
			}
			experiment["variationId"] = arm.ID
			experiment["variationName"] = arm.Name
		}
	case RoleControl:
		control := v.Control()
		experiment["variationId"] = control.ID
		experiment["variationName"] = control.Name
	}
	return tree
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out
}
