package parser

import (
	"bytes"
	"context"
	"strings"

	"github.com/tacogips/crogen/internal/debug"
)

const (
	openTag    = "<%="
	openRawTag = "<%-"
	closeTag   = "%>"
)

// Parser substitutes "<%= a.b.c %>" tokens in template content.
type Parser interface {
	// Parse replaces every token. Unresolved tokens are kept verbatim unless
	// the parser is strict.
	Parse(ctx context.Context, input []byte, vars Variables) ([]byte, error)

	// ExtractVariables lists the variable paths referenced by input, in order.
	ExtractVariables(input []byte) ([]string, error)
}

// DefaultParser implements Parser.
type DefaultParser struct {
	// Strict turns unresolved paths into MissingVariable errors.
	Strict bool
}

// NewParser creates a lenient DefaultParser.
func NewParser() Parser {
	return &DefaultParser{}
}

// NewStrictParser creates a DefaultParser that fails on unresolved paths.
func NewStrictParser() Parser {
	return &DefaultParser{Strict: true}
}

type tag struct {
	start, end int
	path       string
	text       string
}

// scan finds tags in input. The returned tags are ordered and non-overlapping.
func scan(input []byte) ([]tag, error) {
	var tags []tag
	pos := 0
	for pos < len(input) {
		rest := input[pos:]
		idx := bytes.Index(rest, []byte("<%"))
		if idx < 0 {
			break
		}
		start := pos + idx
		if !bytes.HasPrefix(input[start:], []byte(openTag)) && !bytes.HasPrefix(input[start:], []byte(openRawTag)) {
			pos = start + 2
			continue
		}

		closeIdx := bytes.Index(input[start+len(openTag):], []byte(closeTag))
		if closeIdx < 0 {
			line := bytes.Count(input[:start], []byte("\n")) + 1
			return nil, newParseError(UnclosedTag, line, string(input[start:min(len(input), start+20)]), "unclosed template tag")
		}
		end := start + len(openTag) + closeIdx + len(closeTag)
		text := string(input[start:end])
		path := strings.TrimSpace(string(input[start+len(openTag) : end-len(closeTag)]))
		if path == "" {
			line := bytes.Count(input[:start], []byte("\n")) + 1
			return nil, newParseError(EmptyTag, line, text, "template tag has no variable path")
		}
		tags = append(tags, tag{start: start, end: end, path: path, text: text})
		pos = end
	}
	return tags, nil
}

// Parse replaces every token with its resolved value.
func (p *DefaultParser) Parse(ctx context.Context, input []byte, vars Variables) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tags, err := scan(input)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return input, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(input))
	last := 0
	for _, t := range tags {
		buf.Write(input[last:t.start])
		last = t.end

		val, ok := vars.Get(t.path)
		if !ok {
			if p.Strict {
				line := bytes.Count(input[:t.start], []byte("\n")) + 1
				return nil, newParseError(MissingVariable, line, t.text, "variable not found: "+t.path)
			}
			debug.Debug("[parser] Unresolved variable %s kept verbatim", t.path)
			buf.WriteString(t.text)
			continue
		}
		buf.WriteString(valueToString(val))
	}
	buf.Write(input[last:])
	return buf.Bytes(), nil
}

// ExtractVariables lists referenced paths without duplicates.
func (p *DefaultParser) ExtractVariables(input []byte) ([]string, error) {
	tags, err := scan(input)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(tags))
	var paths []string
	for _, t := range tags {
		if !seen[t.path] {
			seen[t.path] = true
			paths = append(paths, t.path)
		}
	}
	return paths, nil
}

// FormatString substitutes tokens in s, keeping unresolved tokens verbatim.
// Malformed input is returned unchanged.
func FormatString(s string, vars Variables) string {
	out, err := NewParser().Parse(context.Background(), []byte(s), vars)
	if err != nil {
		debug.Debug("[parser] FormatString: %v", err)
		return s
	}
	return string(out)
}
