package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVars() Variables {
	return NewTreeVariables(map[string]interface{}{
		"testId":         "T-1",
		"testName":       "Hero copy",
		"variationCount": 3,
		"experiment": map[string]interface{}{
			"testType":     "a/b",
			"experimentId": "",
		},
		"variations": map[string]interface{}{
			"control": map[string]interface{}{"id": int64(42), "name": "Original"},
		},
		"filesToGenerate": []string{"js", "css"},
		"variationData": []interface{}{
			map[string]interface{}{"variationName": "Original"},
		},
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no tags", "plain text", "plain text"},
		{"single", "id=<%= testId %>", "id=T-1"},
		{"no spaces", "<%=testId%>", "T-1"},
		{"raw tag", "<%- testName %>", "Hero copy"},
		{"nested path", "<%= variations.control.id %>/<%= variations.control.name %>", "42/Original"},
		{"int value", "<%= variationCount %>", "3"},
		{"string slice", "<%= filesToGenerate %>", "js,css"},
		{"slice index", "<%= variationData.0.variationName %>", "Original"},
		{"empty value", "[<%= experiment.experimentId %>]", "[]"},
		{"missing kept verbatim", "<%= missing.path %>!", "<%= missing.path %>!"},
		{"non-expression tag untouched", "<% if (x) { %>", "<% if (x) { %>"},
		{
			"test name format",
			"[<%= testId %>][<%= experiment.testType %>][<%= testName %>]",
			"[T-1][a/b][Hero copy]",
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(context.Background(), []byte(tt.input), sampleVars())
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParseStrictMissing(t *testing.T) {
	_, err := NewStrictParser().Parse(context.Background(), []byte("a\n<%= nope %>"), sampleVars())
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, MissingVariable, pe.Type)
	assert.Equal(t, 2, pe.Line)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParseErrorType
	}{
		{"unclosed", "hello <%= testId", UnclosedTag},
		{"empty", "<%=   %>", EmptyTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(context.Background(), []byte(tt.input), sampleVars())
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.want, pe.Type)
		})
	}
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewParser().Parse(ctx, []byte("<%= testId %>"), sampleVars())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractVariables(t *testing.T) {
	got, err := NewParser().ExtractVariables([]byte("<%= a %> <%= b.c %> <%= a %>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b.c"}, got)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "[T-1][<%= nope %>]", FormatString("[<%= testId %>][<%= nope %>]", sampleVars()))
	assert.Equal(t, "broken <%= x", FormatString("broken <%= x", sampleVars()))
}

func TestLookup(t *testing.T) {
	tree := map[string]interface{}{
		"a": map[string]string{"b": "c"},
		"l": []interface{}{"x", "y"},
	}
	tests := []struct {
		path   []string
		want   interface{}
		wantOK bool
	}{
		{[]string{"a", "b"}, "c", true},
		{[]string{"a", "z"}, nil, false},
		{[]string{"l", "1"}, "y", true},
		{[]string{"l", "5"}, nil, false},
		{[]string{"l", "x"}, nil, false},
		{[]string{"a", "b", "c"}, nil, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tree, tt.path)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Lookup(%v) = (%v, %v), want (%v, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}
