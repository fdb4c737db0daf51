package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(interface{}) error
		value    interface{}
		wantCode string
	}{
		{"not empty ok", NotEmpty, "x", ""},
		{"not empty blank", NotEmpty, "  ", CodeEmptyValue},
		{"not empty nil", NotEmpty, nil, CodeInvalidInput},
		{"experiment id ok", ExperimentID, "24681012141618", ""},
		{"experiment id letters", ExperimentID, "12a", CodeInvalidExperimentID},
		{"experiment id empty", ExperimentID, "", CodeEmptyValue},
		{"number ok", Number, "3", ""},
		{"number int", Number, 3, ""},
		{"number negative", Number, "-1", CodeNotANumber},
		{"number text", Number, "three", CodeNotANumber},
		{"variations ok", Variations, "4", ""},
		{"variations zero", Variations, "0", ""},
		{"variations limit", Variations, "9999", ""},
		{"variations over limit", Variations, "10000", CodeTooManyVariations},
		{"variations huge", Variations, "99999999999999", CodeTooManyVariations},
		{"variations overflow", Variations, "999999999999999999999999", CodeTooManyVariations},
		{"variations text", Variations, "two", CodeNotANumber},
		{"id ok", ID, "Test_1-a", ""},
		{"id slash", ID, "a/b", CodeInvalidID},
		{"id space", ID, "a b", CodeInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.value)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			if assert.True(t, errors.As(err, &ve)) {
				assert.Equal(t, tt.wantCode, ve.Code)
				assert.NotEmpty(t, ve.Error())
			}
		})
	}
}

func TestAll(t *testing.T) {
	v := All(NotEmpty, ID)
	assert.NoError(t, v("T-1"))

	var ve *ValidationError
	assert.True(t, errors.As(v(""), &ve))
	assert.Equal(t, CodeEmptyValue, ve.Code)
}
