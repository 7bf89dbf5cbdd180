package generator

import "errors"

var (
	// ErrMalformedAIResponse means the sanitizer/shape validation could not
	// produce the structure a generator requires.
	ErrMalformedAIResponse = errors.New("malformed AI response")

	// ErrEmptyAIResponse means the model returned nothing usable where a
	// non-empty result is mandatory (quiz generation).
	ErrEmptyAIResponse = errors.New("empty AI response")

	// ErrItemNotFound means a roadmap item id was not present in the document.
	ErrItemNotFound = errors.New("item not found in roadmap")

	// ErrUnsupportedFile means an upload could not be read as text.
	ErrUnsupportedFile = errors.New("unsupported file format")
)
