package prompt

import (
	"fmt"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
)

// Kind is the type of question a Spec asks.
type Kind string

const (
	KindInput       Kind = "input"
	KindConfirm     Kind = "confirm"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
)

// Spec describes one question. Message is evaluated lazily so it can depend
// on earlier answers.
type Spec struct {
	Name    string
	Kind    Kind
	Message func(answers model.Answers) (string, error)
	// When reports whether the question is asked. Nil means always.
	When func(answers model.Answers) bool
	// Validate checks an input answer. Nil accepts anything.
	Validate func(value interface{}) error
	// Default is a string, bool or []string depending on Kind.
	Default interface{}
	Choices []string
	// Description annotates select choices.
	Description func(value string, index int) string
}

// Asker puts a question to the user.
type Asker interface {
	Ask(spec Spec, message string) (interface{}, error)
}

// Run asks each applicable spec in order and returns the collected answers.
func Run(specs []Spec, asker Asker) (model.Answers, error) {
	answers := model.Answers{}
	for _, spec := range specs {
		if spec.When != nil && !spec.When(answers) {
			debug.Debug("[prompt] Skipping %s", spec.Name)
			continue
		}

		message := spec.Name
		if spec.Message != nil {
			m, err := spec.Message(answers)
			if err != nil {
				return nil, fmt.Errorf("failed to build message for %s: %w", spec.Name, err)
			}
			message = m
		}

		value, err := asker.Ask(spec, message)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", spec.Name, err)
		}
		debug.DebugValue("[prompt] "+spec.Name, value)
		answers[spec.Name] = value
	}
	return answers, nil
}

// Names returns spec names in order.
func Names(specs []Spec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

func static(msg string) func(model.Answers) (string, error) {
	return func(model.Answers) (string, error) {
		return msg, nil
	}
}
