package generator

import (
	"strings"
)

// RenderTemplate fills {name} placeholders in a prompt template. Literal
// braces that are not placeholders (JSON examples inside prompts) pass
// through untouched.
func RenderTemplate(tpl string, vars map[string]string) string {
	out := tpl
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// StripEmphasis removes the markdown emphasis markers models keep emitting
// despite prompt instructions.
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "#", "")
	return s
}

// CleanText strips emphasis markers and collapses all whitespace runs
// (including newlines) into single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(StripEmphasis(s)), " ")
}
