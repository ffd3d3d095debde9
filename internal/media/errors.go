package media

import "fmt"

// UnsupportedMediaError indicates a document type no extractor handles.
// Raised immediately on dispatch, no fallback is attempted.
type UnsupportedMediaError struct {
	Filename string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.Filename)
}
