package loader

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from a delimited file's header.
// Missing is sorted.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("loader: %s is missing columns: [%s]", e.Path, strings.Join(e.Missing, ", "))
}

// MissingFileError reports an input file absent at its expected path.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("loader: cannot find %s in the working directory", e.Path)
}
