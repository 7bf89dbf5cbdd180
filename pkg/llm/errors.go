package llm

import "fmt"

// CompletionError wraps a failed completion call with provider context.
type CompletionError struct {
	Provider string
	Status   int // HTTP status if applicable, 0 otherwise
	Err      error
}

func (e *CompletionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s completion failed (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
