package llm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CLIRunner pipes the prompt to an external command's stdin and reads
// the model's reply from stdout. Any tool that reads a prompt and prints
// a completion works: llm, ollama run, a shell script around an API, etc.
type CLIRunner struct {
	command string
	args    []string
	timeout time.Duration
}

// NewCLIRunner creates a runner for the given command line
func NewCLIRunner(command string, args []string, timeout time.Duration) *CLIRunner {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &CLIRunner{
		command: command,
		args:    args,
		timeout: timeout,
	}
}

func (r *CLIRunner) Name() string {
	return filepath.Base(r.command)
}

// Ping verifies the command exists in PATH
func (r *CLIRunner) Ping(_ context.Context) error {
	if r.command == "" {
		return ErrNotConfigured
	}
	if _, err := exec.LookPath(r.command); err != nil {
		return fmt.Errorf("model command %q not found in PATH", r.command)
	}
	return nil
}

// Invoke runs the command with the prompt on stdin and returns whatever
// it printed. The text is returned untrimmed of interior content; the
// response parsers own the job of finding structure inside it.
func (r *CLIRunner) Invoke(ctx context.Context, promptText string) (string, error) {
	if r.command == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.command, r.args...)
	cmd.Stdin = strings.NewReader(promptText)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("model command timed out after %s", r.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("model command failed: %s", msg)
		}
		return "", fmt.Errorf("model command failed: %w", err)
	}

	return stdout.String(), nil
}
