package generator

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/parser"
)

// Processor renders template content.
type Processor interface {
	// Process renders content. Binary files are returned unchanged.
	Process(ctx context.Context, name string, content []byte, vars parser.Variables) ([]byte, error)

	// ShouldProcess reports whether content should be rendered.
	ShouldProcess(name string, content []byte) bool
}

// FileProcessor implements Processor using a Parser.
type FileProcessor struct {
	parser           parser.Parser
	binaryExtensions []string
}

// NewFileProcessor creates a FileProcessor. A nil binaryExtensions uses the
// defaults.
func NewFileProcessor(p parser.Parser, binaryExtensions []string) Processor {
	if binaryExtensions == nil {
		binaryExtensions = defaultBinaryExtensions()
	}
	return &FileProcessor{parser: p, binaryExtensions: binaryExtensions}
}

func defaultBinaryExtensions() []string {
	return []string{
		".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico",
		".woff", ".woff2", ".ttf", ".otf",
		".mp4", ".webm",
		".zip", ".gz",
	}
}

// ShouldProcess returns false for known binary extensions and for content
// with NUL bytes in its first 512 bytes.
func (p *FileProcessor) ShouldProcess(name string, content []byte) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, binaryExt := range p.binaryExtensions {
		if ext == binaryExt {
			return false
		}
	}
	return !isBinaryContent(content)
}

func isBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > 512 {
		checkLen = 512
	}
	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// Process renders the tokens in content.
func (p *FileProcessor) Process(ctx context.Context, name string, content []byte, vars parser.Variables) ([]byte, error) {
	if !p.ShouldProcess(name, content) {
		debug.Debug("[generator] Copying binary file as-is: %s", name)
		return content, nil
	}

	processed, err := p.parser.Parse(ctx, content, vars)
	if err != nil {
		return nil, newGeneratorError(GeneratorProcessFailed, "failed to render template", name, err)
	}
	return processed, nil
}
