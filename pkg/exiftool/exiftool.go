package exiftool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ExifTool command wrapper

const DefaultTimeout = 60 * time.Second

type ExifTool struct {
	ProgramPath string
	Timeout     time.Duration
}

func New(path *string) ExifTool {
	et := ExifTool{Timeout: DefaultTimeout}
	if path == nil {
		et.ProgramPath = "exiftool"
	} else {
		et.ProgramPath = *path
	}
	return et
}

// Version probes the exiftool binary. An error means it is not invocable.
func (e *ExifTool) Version() (string, error) {
	out, err := exec.Command(e.ProgramPath, "-ver").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ExtractEmbedded runs `exiftool -ee` on path and returns its stdout. The
// invocation is killed once the configured timeout elapses.
func (e *ExifTool) ExtractEmbedded(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.ProgramPath, "-ee", path)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("timed out after %s", e.Timeout)
	}
	if err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}

	return out.String(), nil
}
