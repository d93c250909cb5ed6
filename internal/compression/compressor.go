package compression

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// Compressor orchestrates a single Ghostscript run per request.
type Compressor struct {
	enginePath string
	logger     zerolog.Logger
}

// NewCompressor creates a new compressor instance. enginePath is the resolved
// Ghostscript executable; an empty path means the engine was not found.
func NewCompressor(enginePath string, logger zerolog.Logger) *Compressor {
	return &Compressor{
		enginePath: enginePath,
		logger:     logger,
	}
}

// IsAvailable reports whether a Ghostscript executable was resolved.
func (c *Compressor) IsAvailable() bool {
	return c.enginePath != ""
}

// EnginePath returns the resolved Ghostscript executable path.
func (c *Compressor) EnginePath() string {
	return c.enginePath
}

// Compress invokes Ghostscript with the profile for req.Level and returns
// verified size statistics. Arguments are passed as a discrete vector, never
// through a shell. If echo is non-nil, engine stdout/stderr chunks are copied
// to it as they arrive; stderr is always retained for failure messages.
//
// There is no timeout: a hung engine blocks until ctx is cancelled, and the
// default CLI context is never cancelled. Known limitation of the single-shot
// design.
func (c *Compressor) Compress(ctx context.Context, req Request, echo io.Writer) (Result, error) {
	if c.enginePath == "" {
		return Result{}, ErrEngineNotFound
	}

	profile, err := ProfileForLevel(req.Level)
	if err != nil {
		return Result{}, err
	}

	inputInfo, err := os.Stat(req.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}

	args := profile.Args(req.InputPath, req.OutputPath)
	c.logger.Debug().
		Str("engine", c.enginePath).
		Strs("args", args).
		Msg("invoking ghostscript")

	cmd := exec.CommandContext(ctx, c.enginePath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("attach stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, fmt.Errorf("attach stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w (looked for %s)", ErrEngineNotFound, c.enginePath)
		}
		return Result{}, fmt.Errorf("start ghostscript: %w", err)
	}

	var stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		drain(stdout, echo)
	}()
	go func() {
		defer wg.Done()
		stderrSink := io.Writer(&stderrBuf)
		if echo != nil {
			stderrSink = io.MultiWriter(&stderrBuf, echo)
		}
		drain(stderr, stderrSink)
	}()

	// All concurrent activity funnels into this single completion point.
	wg.Wait()
	err = cmd.Wait()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{}, NewEngineError(exitErr.ExitCode(), stderrBuf.String())
		}
		return Result{}, fmt.Errorf("ghostscript run: %w", err)
	}

	// Ghostscript can exit 0 without writing output in some misconfiguration
	// cases, so a success exit code alone is not trusted.
	outputInfo, err := os.Stat(req.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrOutputMissing, req.OutputPath)
	}

	result := NewResult(req, inputInfo.Size(), outputInfo.Size())
	c.logger.Debug().
		Int64("input_size", result.InputSize).
		Int64("output_size", result.OutputSize).
		Float64("ratio", result.Ratio).
		Msg("compression complete")

	return result, nil
}

// drain copies r to w chunk by chunk until EOF. A nil w discards the stream.
func drain(r io.Reader, w io.Writer) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 && w != nil {
			w.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}
