package generator

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Shape is the top-level JSON value a caller expects from the model.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) brackets() (byte, byte) {
	if s == ShapeArray {
		return '[', ']'
	}
	return '{', '}'
}

func (s Shape) emptyLiteral() string {
	if s == ShapeArray {
		return "[]"
	}
	return "{}"
}

// Fenced code-block delimiters with an optional language tag, multi-line aware.
var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\r?\n?|```")

// ExtractJSON pulls the first well-formed JSON value of the expected shape
// out of noisy model output. It never fails: when no usable payload exists
// the shape-appropriate empty literal is returned, and callers must treat
// that sentinel as "no result", not as valid data with zero entries.
//
// Strategy: strip fences and emphasis markers, try a direct parse, then fall
// back to the outermost bracket span (first opening bracket to last closing
// bracket). Trailing prose may itself contain brackets, so the widest span
// is tried first and the right edge shrinks until a span parses.
func ExtractJSON(raw string, shape Shape) string {
	clean := strings.TrimSpace(StripEmphasis(fenceRe.ReplaceAllString(raw, "")))
	if isShape(clean, shape) {
		return clean
	}

	open, close := shape.brackets()
	start := strings.IndexByte(clean, open)
	if start == -1 {
		return shape.emptyLiteral()
	}

	for end := strings.LastIndexByte(clean, close); end > start; end = strings.LastIndexByte(clean[:end], close) {
		candidate := strings.TrimSpace(clean[start : end+1])
		if isShape(candidate, shape) {
			return candidate
		}
	}

	return shape.emptyLiteral()
}

func isShape(s string, shape Shape) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	open, _ := shape.brackets()
	if trimmed[0] != open {
		return false
	}
	var v interface{}
	return json.Unmarshal([]byte(trimmed), &v) == nil
}
