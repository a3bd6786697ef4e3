// Package spotdl adapts the spotdl command-line tool to the
// ports.RetrievalEngine contract. The tool is treated as a black box: a
// command line in, an exit code and diagnostic text out.
package spotdl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pvictorr/SpotifyDownloader-API/internal/apperrors"
	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// Engine invokes spotdl as a subprocess.
type Engine struct {
	bin string
	log zerolog.Logger
}

// New creates an engine invoking the given spotdl binary (name or path).
func New(bin string, logger zerolog.Logger) *Engine {
	return &Engine{bin: bin, log: logger}
}

func (e *Engine) Fetch(ctx context.Context, req domain.DownloadRequest, verbose bool, progress ports.ProgressFunc) error {
	// Idempotent: no error when the destination already exists.
	if err := os.MkdirAll(req.DestinationPath, 0o755); err != nil {
		return &apperrors.EnvironmentError{Op: "create download directory", Err: err}
	}

	args := buildArgs(req)
	e.log.Debug().Str("bin", e.bin).Strs("args", args).Str("dir", req.DestinationPath).Msg("running retrieval engine")

	cmd := exec.CommandContext(ctx, e.bin, args...)
	cmd.Dir = req.DestinationPath

	if verbose {
		return e.runPassthrough(cmd)
	}
	return e.runCaptured(cmd, progress)
}

// buildArgs constructs the spotdl argument list. The worker-count flag is
// appended only for multi-item content; single tracks are never parallelized.
func buildArgs(req domain.DownloadRequest) []string {
	args := []string{"--format", "mp3"}
	if req.ContentType.IsMulti() {
		args = append(args, "--threads", strconv.Itoa(req.Threads))
	}
	return append(args, req.URL)
}

// runPassthrough streams the engine's output straight to the terminal. This
// trades structured error detail for real-time feedback on interactive use.
func (e *Engine) runPassthrough(cmd *exec.Cmd) error {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return e.classify(cmd.Run(), "")
}

// runCaptured collects stderr for diagnostics and scans stdout line by line,
// feeding the progress callback when one is registered.
func (e *Engine) runCaptured(cmd *exec.Cmd, progress ports.ProgressFunc) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &apperrors.EnvironmentError{Op: "attach to " + e.bin + " output", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &apperrors.EnvironmentError{Op: "run " + e.bin, Err: err}
	}

	tracker := newProgressTracker()
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if progress == nil {
			continue
		}
		if update, ok := tracker.Line(scanner.Text()); ok {
			progress(update)
		}
	}

	return e.classify(cmd.Wait(), strings.TrimSpace(stderr.String()))
}

// classify maps a subprocess outcome to the adapter's error taxonomy: nil on
// success, ExecutionError on a non-zero exit, EnvironmentError otherwise.
func (e *Engine) classify(err error, stderr string) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &apperrors.ExecutionError{ExitCode: exitErr.ExitCode(), Stderr: stderr}
	}
	return &apperrors.EnvironmentError{Op: "run " + e.bin, Err: err}
}
