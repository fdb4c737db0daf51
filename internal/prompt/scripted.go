package prompt

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"
)

// ScriptedAsker replays recorded answers. Unanswered questions take their
// default. Answers are validated like interactive input but never re-asked.
type ScriptedAsker struct {
	Answers map[string]interface{}
}

// NewScriptedAsker creates an asker over recorded answers.
func NewScriptedAsker(answers map[string]interface{}) *ScriptedAsker {
	return &ScriptedAsker{Answers: answers}
}

// LoadScript reads recorded answers from a YAML file.
func LoadScript(path string) (*ScriptedAsker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	answers := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	return NewScriptedAsker(answers), nil
}

// Ask returns the recorded answer for spec.
func (s *ScriptedAsker) Ask(spec Spec, message string) (interface{}, error) {
	value, ok := s.Answers[spec.Name]
	if !ok {
		value = spec.Default
	}

	switch spec.Kind {
	case KindConfirm:
		b, _ := value.(bool)
		return b, nil

	case KindSelect:
		choice := fmt.Sprintf("%v", value)
		if value == nil && len(spec.Choices) > 0 {
			choice = spec.Choices[0]
		}
		if !lo.Contains(spec.Choices, choice) {
			return nil, fmt.Errorf("%q is not one of %v", choice, spec.Choices)
		}
		return choice, nil

	case KindMultiSelect:
		var picked []string
		switch v := value.(type) {
		case []string:
			picked = v
		case []interface{}:
			picked = lo.Map(v, func(item interface{}, _ int) string { return fmt.Sprintf("%v", item) })
		case nil:
		default:
			return nil, fmt.Errorf("expected a list, got %T", value)
		}
		if unknown := lo.Without(picked, spec.Choices...); len(unknown) > 0 {
			return nil, fmt.Errorf("unknown choices %v", unknown)
		}
		return picked, nil

	default:
		text := ""
		if value != nil {
			text = fmt.Sprintf("%v", value)
		}
		if spec.Validate != nil {
			if err := spec.Validate(text); err != nil {
				return nil, err
			}
		}
		return text, nil
	}
}
