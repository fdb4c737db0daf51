package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tacogips/crogen/internal/template/model"
)

// Validation codes.
const (
	CodeEmptyValue          = "EMPTY_VALUE"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidExperimentID = "INVALID_EXPERIMENT_ID"
	CodeNotANumber          = "NOT_A_NUMBER"
	CodeInvalidID           = "INVALID_ID"
	CodeTooManyVariations   = "TOO_MANY_VARIATIONS"
)

var messages = map[string]string{
	CodeEmptyValue:          "Cannot be an empty value",
	CodeInvalidInput:        "Invalid input provided",
	CodeInvalidExperimentID: "The experiment ID must contain only numbers",
	CodeNotANumber:          "Value must be a number",
	CodeInvalidID:           "ID can only contain letters, numbers, hyphens, and underscores",
	CodeTooManyVariations:   fmt.Sprintf("No more than %d variations are allowed", model.MaxVariations),
}

var (
	numbersOnly = regexp.MustCompile(`^[0-9]+$`)
	idPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidationError rejects one answer. The question is asked again.
type ValidationError struct {
	Code  string
	Value interface{}
}

func (e *ValidationError) Error() string {
	if msg, ok := messages[e.Code]; ok {
		return msg
	}
	return fmt.Sprintf("invalid value %v", e.Value)
}

func asString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", &ValidationError{Code: CodeInvalidInput, Value: value}
	case string:
		return v, nil
	case int, int64:
		return fmt.Sprintf("%d", v), nil
	default:
		return "", &ValidationError{Code: CodeInvalidInput, Value: value}
	}
}

// NotEmpty rejects blank input.
func NotEmpty(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Code: CodeEmptyValue, Value: value}
	}
	return nil
}

// ExperimentID accepts a non-empty numeric id.
func ExperimentID(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return &ValidationError{Code: CodeEmptyValue, Value: value}
	}
	if !numbersOnly.MatchString(s) {
		return &ValidationError{Code: CodeInvalidExperimentID, Value: value}
	}
	return nil
}

// Number accepts a non-negative integer.
func Number(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if !numbersOnly.MatchString(strings.TrimSpace(s)) {
		return &ValidationError{Code: CodeNotANumber, Value: value}
	}
	return nil
}

// Variations accepts a variation count between 0 and model.MaxVariations.
func Variations(value interface{}) error {
	if err := Number(value); err != nil {
		return err
	}
	s, _ := asString(value)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n > model.MaxVariations {
		return &ValidationError{Code: CodeTooManyVariations, Value: value}
	}
	return nil
}

// ID accepts letters, digits, hyphens and underscores.
func ID(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if !idPattern.MatchString(s) {
		return &ValidationError{Code: CodeInvalidID, Value: value}
	}
	return nil
}

// All runs validators in order and returns the first failure.
func All(validators ...func(interface{}) error) func(interface{}) error {
	return func(value interface{}) error {
		for _, v := range validators {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}
