package compression

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DerivedOutputSuffix is appended to the input basename when no output path
// is given.
const DerivedOutputSuffix = "-compressed"

// Request is a validated compression request. It is constructed once by
// ResolveRequest and not mutated afterwards.
type Request struct {
	InputPath     string
	OutputPath    string
	Level         int
	Verbose       bool
	OutputDerived bool
}

// ResolveRequest validates raw CLI input and produces an immutable Request.
// The only filesystem access is the input existence check.
func ResolveRequest(inputPath, outputPath string, level int, verbose bool) (Request, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Request{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return Request{}, fmt.Errorf("cannot access input file %s: %w", inputPath, err)
	}
	if info.IsDir() {
		return Request{}, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, inputPath)
	}

	if !strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		return Request{}, fmt.Errorf("%w: %s", ErrInvalidInputType, inputPath)
	}

	if level < MinLevel || level > MaxLevel {
		return Request{}, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}

	derived := false
	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath)
		derived = true
	}

	return Request{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		Level:         level,
		Verbose:       verbose,
		OutputDerived: derived,
	}, nil
}

// DeriveOutputPath returns <input-dir>/<input-basename>-compressed.pdf.
func DeriveOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+DerivedOutputSuffix+".pdf")
}
