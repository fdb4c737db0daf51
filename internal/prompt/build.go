package prompt

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/experiment"
	"github.com/tacogips/crogen/internal/greeter"
	"github.com/tacogips/crogen/internal/template/model"
)

// NoChildFolder is the childFolder choice that writes tests directly under
// the destination.
const NoChildFolder = "none"

var modeDescriptions = map[string]string{
	model.ModeNew:      "create new experiment via the API",
	model.ModeExisting: "request existing experiment from the API",
	model.ModeFiles:    "create local files only",
}

// Context is everything Build needs to decide which questions to ask.
type Context struct {
	Config *config.Config
	// CustomTemplates lists custom template choices with "default" first.
	// Empty when no custom templates exist.
	CustomTemplates []string
	// State holds the previous run's choices used as defaults.
	State config.State
}

// Build returns the ordered question list for a generation run.
func Build(ctx Context) []Spec {
	settings := ctx.Config.Settings()
	defaultProject, _ := ctx.Config.DefaultProject()
	credentialed := ctx.Config.CredentialedProjects()

	defaultTemplate := ""
	if ctx.Config.Templates != nil {
		defaultTemplate = ctx.Config.Templates.DefaultCustomTemplate
	}
	hasCustom := len(ctx.CustomTemplates) > 0
	defaultExists := hasCustom && defaultTemplate != "" && lo.Contains(ctx.CustomTemplates, defaultTemplate)

	modes := []string{model.ModeFiles}
	if defaultProject.HasCredentials() {
		modes = []string{model.ModeNew, model.ModeExisting, model.ModeFiles}
	}
	usesAPI := func(a model.Answers) bool {
		m := a.Mode()
		return m == model.ModeNew || m == model.ModeExisting
	}
	definesTest := func(a model.Answers) bool {
		m := a.Mode()
		return m == model.ModeNew || m == model.ModeFiles
	}

	kinds := lo.Filter(ctx.Config.FileKinds(), func(k config.FileKind, _ int) bool {
		return k.ShowInPrompts
	})
	checked := lo.FilterMap(kinds, func(k config.FileKind, _ int) (string, bool) {
		return k.Name, k.CheckedByDefault
	})

	var specs []Spec
	specs = append(specs,
		Spec{
			Name: model.AnswerTestDetails,
			Kind: KindInput,
			Message: func(model.Answers) (string, error) {
				return greeter.Welcome() + "Please enter the URL to the test details (eg JIRA, Trello etc)", nil
			},
			Validate: NotEmpty,
		},
		Spec{
			Name: model.AnswerUseDefaultCustomTemplate,
			Kind: KindConfirm,
			Message: func(model.Answers) (string, error) {
				return fmt.Sprintf("Continue with the %s custom template?", color.GreenString(defaultTemplate)), nil
			},
			When:    func(model.Answers) bool { return defaultExists },
			Default: true,
		},
		Spec{
			Name:    model.AnswerCustomTemplate,
			Kind:    KindSelect,
			Message: static("Please select the templates you'd like to build:"),
			When: func(a model.Answers) bool {
				return hasCustom && (!defaultExists || !a.Bool(model.AnswerUseDefaultCustomTemplate))
			},
			Choices: ctx.CustomTemplates,
			Default: preferred(ctx.State.CustomTemplate, ctx.CustomTemplates),
		},
		Spec{
			Name:    model.AnswerCreateExperiment,
			Kind:    KindSelect,
			Message: static("How would you like the files created?"),
			Choices: modes,
			Default: modes[0],
			Description: func(value string, _ int) string {
				return modeDescriptions[value]
			},
		},
		Spec{
			Name:    model.AnswerExperimentProject,
			Kind:    KindSelect,
			Message: static("Which experimentation project should be used?"),
			When: func(a model.Answers) bool {
				return usesAPI(a) && len(credentialed) > 1
			},
			Choices: lo.Map(credentialed, func(p config.Project, _ int) string { return p.Name }),
			Default: defaultProject.Name,
		},
		Spec{
			Name:     model.AnswerExperimentID,
			Kind:     KindInput,
			Message:  static("Please enter the experiment ID:"),
			When:     func(a model.Answers) bool { return a.Mode() == model.ModeExisting },
			Validate: ExperimentID,
		},
		Spec{
			Name:    model.AnswerTestType,
			Kind:    KindSelect,
			Message: static("Please select the test type:"),
			When:    func(a model.Answers) bool { return a.Mode() == model.ModeNew },
			Choices: experiment.TestTypes,
			Default: experiment.TestTypes[0],
		},
		Spec{
			Name:     model.AnswerTestID,
			Kind:     KindInput,
			Message:  static(fmt.Sprintf("Please enter the test ID (this is used to namespace the test - eg %s):", settings.TestIDExample)),
			Validate: All(NotEmpty, ID),
		},
		Spec{
			Name:     model.AnswerTestName,
			Kind:     KindInput,
			Message:  static(fmt.Sprintf("Please enter the test name - eg %s:", settings.TestNameExample)),
			When:     definesTest,
			Validate: NotEmpty,
		},
		Spec{
			Name:    model.AnswerTestDescription,
			Kind:    KindInput,
			Message: static("Please enter the test description (optional):"),
		},
		Spec{
			Name:     model.AnswerVariations,
			Kind:     KindInput,
			Message:  static("Please enter the number of variations (not including control):"),
			When:     definesTest,
			Validate: Variations,
		},
		Spec{
			Name:     model.AnswerTestURL,
			Kind:     KindInput,
			Message:  static("Please enter the URL the test will run on:"),
			Default:  settings.HomepageURL,
			Validate: NotEmpty,
		},
		Spec{
			Name:    model.AnswerChildFolder,
			Kind:    KindSelect,
			Message: static("Which folder should the test be created in?"),
			When:    func(model.Answers) bool { return len(settings.ChildFolders) > 0 },
			Choices: append([]string{NoChildFolder}, settings.ChildFolders...),
			Default: preferred(ctx.State.ChildFolder, append([]string{NoChildFolder}, settings.ChildFolders...)),
		},
		Spec{
			Name:    model.AnswerFilesToGenerate,
			Kind:    KindMultiSelect,
			Message: static("Please select the files required to build locally:"),
			Choices: lo.Map(kinds, func(k config.FileKind, _ int) string { return k.Name }),
			Default: checked,
		},
		Spec{
			Name:    model.AnswerDeveloper,
			Kind:    KindSelect,
			Message: static("And finally, which lovely developer is building this test?"),
			When:    func(model.Answers) bool { return len(settings.Developers) > 0 },
			Choices: settings.Developers,
			Default: preferred(ctx.State.Developer, settings.Developers),
		},
	)

	order := Names(specs)
	specs = append(specs, Spec{
		Name: model.AnswerConfirm,
		Kind: KindConfirm,
		Message: func(a model.Answers) (string, error) {
			return greeter.BannerString("Please confirm:") + "\n" + Summary(a, order) + "\n\nConfirm?", nil
		},
		Default: true,
	})
	return specs
}

// preferred returns last if it is one of choices, else the first choice.
func preferred(last string, choices []string) interface{} {
	if len(choices) == 0 {
		return nil
	}
	if last != "" && lo.Contains(choices, last) {
		return last
	}
	return choices[0]
}
