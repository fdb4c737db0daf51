package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Prompt names, also used as answer keys and answers-file keys.
const (
	AnswerTestDetails              = "testDetails"
	AnswerUseDefaultCustomTemplate = "useDefaultCustomTemplate"
	AnswerCustomTemplate           = "customTemplate"
	AnswerCreateExperiment         = "createExperiment"
	AnswerExperimentProject        = "experimentProject"
	AnswerExperimentID             = "experimentId"
	AnswerTestType                 = "testType"
	AnswerTestID                   = "testId"
	AnswerTestName                 = "testName"
	AnswerTestDescription          = "testDescription"
	AnswerVariations               = "variations"
	AnswerTestURL                  = "testUrl"
	AnswerChildFolder              = "childFolder"
	AnswerFilesToGenerate          = "filesToGenerate"
	AnswerDeveloper                = "developer"
	AnswerConfirm                  = "confirm"
)

// Experiment modes offered by the createExperiment prompt.
const (
	ModeNew      = "New"
	ModeExisting = "Existing"
	ModeFiles    = "Files"
)

// MaxVariations keeps every arm of a 10000-unit traffic split at weight 1
// or more.
const MaxVariations = 9999

// DefaultTemplateName names the built-in template set.
const DefaultTemplateName = "default"

// Answers maps prompt names to collected values.
type Answers map[string]interface{}

// Has reports whether name was answered.
func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string answer, or "" when absent.
func (a Answers) String(name string) string {
	switch v := a[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Strings returns a multi-choice answer.
func (a Answers) Strings(name string) []string {
	switch v := a[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Bool returns a confirm answer, false when absent.
func (a Answers) Bool(name string) bool {
	switch v := a[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Int parses a numeric answer.
func (a Answers) Int(name string) (int, error) {
	switch v := a[name].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("answer %s is not a number: %q", name, v)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("answer %s not provided", name)
	default:
		return 0, fmt.Errorf("answer %s is not a number (got %T)", name, v)
	}
}

// Mode returns the chosen experiment mode, defaulting to local files only.
func (a Answers) Mode() string {
	switch m := a.String(AnswerCreateExperiment); m {
	case ModeNew, ModeExisting:
		return m
	default:
		return ModeFiles
	}
}
