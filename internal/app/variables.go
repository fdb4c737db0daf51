package app

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/experiment"
	"github.com/tacogips/crogen/internal/prompt"
	"github.com/tacogips/crogen/internal/template/model"
	"github.com/tacogips/crogen/internal/template/parser"
)

// Request types recorded in experiment.requestType.
const (
	RequestFetch  = "GET"
	RequestCreate = "POST"
)

// BuildTemplateVariables merges configuration and answers into the
// variables every template of the run reads.
func BuildTemplateVariables(cfg *config.Config, answers model.Answers, now time.Time) (*model.TemplateVariables, error) {
	debug.Debug("[app] Building template variables")

	count := 0
	if answers.Has(model.AnswerVariations) {
		n, err := answers.Int(model.AnswerVariations)
		if err != nil {
			return nil, NewPromptError("invalid number of variations", err)
		}
		if n < 0 || n > model.MaxVariations {
			return nil, NewPromptError(fmt.Sprintf("number of variations must be between 0 and %d, got %d", model.MaxVariations, n), nil)
		}
		count = n
	}

	childFolder := answers.String(model.AnswerChildFolder)
	if childFolder == prompt.NoChildFolder {
		childFolder = ""
	}
	testID := answers.String(model.AnswerTestID)

	destination := cfg.Output.Destination
	testRoot := path.Join(filepath.ToSlash(cfg.ResolvePath(destination)), childFolder, testID)
	distRoot := path.Join(testRoot, "dist")
	serverRoot := ""
	if cfg.Output.Localhost != "" {
		serverRoot = strings.TrimRight(cfg.Output.Localhost, "/") + "/" +
			strings.TrimLeft(path.Join(filepath.ToSlash(destination), childFolder, testID, "dist"), "/")
	}

	vars := &model.TemplateVariables{
		Date:            now.Format(model.DateFormat),
		TestDetails:     answers.String(model.AnswerTestDetails),
		TestID:          testID,
		TestName:        answers.String(model.AnswerTestName),
		TestURL:         answers.String(model.AnswerTestURL),
		TestDescription: answers.String(model.AnswerTestDescription),
		VariationCount:  count,
		ChildFolder:     childFolder,
		FilesToGenerate: answers.Strings(model.AnswerFilesToGenerate),
		Developer:       answers.String(model.AnswerDeveloper),
		CustomTemplate:  chosenTemplate(cfg, answers),
		DestinationPath: path.Join(testRoot, "src"),
		Files:           map[string]model.KindPaths{},
	}

	for _, kind := range cfg.FileKinds() {
		if model.IsStructuralKind(kind.Name) {
			continue
		}
		ext := kind.Extension()
		paths := model.KindPaths{
			Local: model.PathTriple{
				Shared:    path.Join(distRoot, kind.Name, "shared."+ext),
				Control:   path.Join(distRoot, kind.Name, "control."+ext),
				Variation: path.Join(distRoot, kind.Name) + "/",
			},
		}
		if serverRoot != "" {
			paths.Server = model.PathTriple{
				Shared:    serverRoot + "/" + kind.Name + "/shared." + ext,
				Control:   serverRoot + "/" + kind.Name + "/control." + ext,
				Variation: serverRoot + "/" + kind.Name + "/",
			}
		}
		vars.Files[kind.Name] = paths
	}

	switch answers.Mode() {
	case model.ModeNew:
		vars.Experiment = model.ExperimentMeta{
			ProjectName: projectName(cfg, answers),
			TestType:    answers.String(model.AnswerTestType),
			RequestType: RequestCreate,
		}
	case model.ModeExisting:
		vars.Experiment = model.ExperimentMeta{
			ProjectName:  projectName(cfg, answers),
			ExperimentID: strings.TrimSpace(answers.String(model.AnswerExperimentID)),
			RequestType:  RequestFetch,
		}
	}

	debug.DebugValue("[app] Test root", testRoot)
	debug.DebugValue("[app] Variation count", vars.VariationCount)
	return vars, nil
}

// ApplyExperiment copies API experiment data into vars.
func ApplyExperiment(vars *model.TemplateVariables, data *experiment.Data) {
	if data.ID != 0 {
		vars.Experiment.ExperimentID = strconv.FormatInt(data.ID, 10)
	}
	if data.Name != "" {
		vars.TestName = data.Name
	}
	vars.VariationCount = data.VariationCount()
	vars.VariationData = data.VariationData()
}

// FormatTestName renders format against the variables. An empty format
// keeps the plain test name.
func FormatTestName(format string, vars *model.TemplateVariables) string {
	if format == "" {
		return vars.TestName
	}
	return parser.FormatString(format, parser.NewTreeVariables(vars.Tree()))
}

// chosenTemplate resolves the template set the answers select.
func chosenTemplate(cfg *config.Config, answers model.Answers) string {
	if answers.Bool(model.AnswerUseDefaultCustomTemplate) && cfg.Templates != nil {
		return cfg.Templates.DefaultCustomTemplate
	}
	if name := answers.String(model.AnswerCustomTemplate); name != "" {
		return name
	}
	return model.DefaultTemplateName
}

func projectName(cfg *config.Config, answers model.Answers) string {
	if name := answers.String(model.AnswerExperimentProject); name != "" {
		return name
	}
	p, _ := cfg.DefaultProject()
	return p.Name
}

// selectProject returns the project the experiment API call uses.
func selectProject(cfg *config.Config, name string) (config.Project, bool) {
	for _, p := range cfg.CredentialedProjects() {
		if p.Name == name {
			return p, true
		}
	}
	return config.Project{}, false
}
