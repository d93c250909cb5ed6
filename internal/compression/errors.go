package compression

import (
	"errors"
	"fmt"
	"strings"
)

// Compression error types
var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidInputType = errors.New("input file is not a PDF")
	ErrInvalidLevel     = errors.New("invalid compression level")
	ErrEngineNotFound   = errors.New("ghostscript not found. Please install ghostscript to use this tool")
	ErrOutputMissing    = errors.New("ghostscript reported success but did not create the output file")
)

// EngineError represents a Ghostscript run that exited with a nonzero status.
type EngineError struct {
	ExitCode int
	Stderr   string
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("ghostscript failed with exit code %d", e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// NewEngineError creates a new engine error
func NewEngineError(exitCode int, stderr string) *EngineError {
	return &EngineError{
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}
