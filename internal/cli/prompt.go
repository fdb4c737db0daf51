package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/crogen/internal/prompt"
)

// SurveyAsker asks questions on the terminal.
type SurveyAsker struct {
	opts []survey.AskOpt
}

// NewSurveyAsker creates an interactive asker.
func NewSurveyAsker(opts ...survey.AskOpt) *SurveyAsker {
	return &SurveyAsker{opts: opts}
}

// Ask implements prompt.Asker. Invalid input is rejected and asked again.
func (a *SurveyAsker) Ask(spec prompt.Spec, message string) (interface{}, error) {
	switch spec.Kind {
	case prompt.KindConfirm:
		var result bool
		def, _ := spec.Default.(bool)
		err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &result, a.opts...)
		return result, err

	case prompt.KindSelect:
		var result string
		p := &survey.Select{
			Message:     message,
			Options:     spec.Choices,
			Description: spec.Description,
		}
		if def, ok := spec.Default.(string); ok && def != "" {
			p.Default = def
		}
		err := survey.AskOne(p, &result, a.opts...)
		return result, err

	case prompt.KindMultiSelect:
		var result []string
		p := &survey.MultiSelect{
			Message:  message,
			Options:  spec.Choices,
			PageSize: len(spec.Choices),
		}
		if def, ok := spec.Default.([]string); ok && len(def) > 0 {
			p.Default = def
		}
		err := survey.AskOne(p, &result, a.opts...)
		return result, err

	case prompt.KindInput:
		var result string
		p := &survey.Input{Message: message}
		if spec.Default != nil {
			p.Default = fmt.Sprintf("%v", spec.Default)
		}
		opts := a.opts
		if spec.Validate != nil {
			opts = append(append([]survey.AskOpt{}, opts...), survey.WithValidator(spec.Validate))
		}
		err := survey.AskOne(p, &result, opts...)
		return result, err

	default:
		return nil, fmt.Errorf("unsupported prompt kind %q", spec.Kind)
	}
}
