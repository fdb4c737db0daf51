package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tacogips/crogen/internal/template/model"
)

var titleCaser = cases.Title(language.English)

// TitleCase turns a camelCase answer name into "Title Case" words.
func TitleCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(b.String())
}

// Summary lists the given answers in order, one "Name: value" per line.
func Summary(answers model.Answers, order []string) string {
	var lines []string
	for _, name := range order {
		if !answers.Has(name) {
			continue
		}
		value := answers[name]
		var text string
		switch v := value.(type) {
		case []string:
			text = strings.Join(v, ", ")
		default:
			text = fmt.Sprintf("%v", v)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", TitleCase(name), color.GreenString(text)))
	}
	return strings.Join(lines, "\n")
}
