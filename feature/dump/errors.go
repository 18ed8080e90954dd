package dump

import "fmt"

// MissingInputError reports that the primary recipe dump does not exist.
// It is the only condition that aborts a conversion before any output is touched.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("raw dump not found: %s", e.Path)
}
