package podexec

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"podctl/pkg/logging"
)

// CommandError reports a remote command that exited non-zero. It carries
// everything the remote wrote to stderr during the run.
type CommandError struct {
	Command    string
	ExitStatus int
	Stderr     string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit status %d", e.Command, e.ExitStatus)
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}

// runPollInterval bounds each pump iteration of the Run loop. It only
// affects how promptly output appears, not correctness.
const runPollInterval = 100 * time.Millisecond

// Runner executes shell commands inside remote pods over exec channels.
// Stdout is forwarded to out as it arrives; stderr is held back and only
// surfaces inside the CommandError of a failed run.
type Runner struct {
	streamer Streamer
	out      io.Writer
	errOut   io.Writer
}

// NewRunner returns a Runner writing live command output to out.
func NewRunner(streamer Streamer, out, errOut io.Writer) *Runner {
	return &Runner{streamer: streamer, out: out, errOut: errOut}
}

// Run executes `/bin/sh -c command` in the target pod to completion. The
// channel is closed on every exit path. A non-zero exit status surfaces as
// *CommandError; a missing pod as *kube.NotFoundError from Open.
func (r *Runner) Run(ctx context.Context, target Target, command string) error {
	fmt.Fprintf(r.out, "Executing command '/bin/sh -c %s' in %s pod.\n", command, target.Pod)

	ch, err := r.streamer.Open(ctx, target, []string{"/bin/sh", "-c", command})
	if err != nil {
		return err
	}
	defer ch.Close()

	var stderr strings.Builder
	for ch.IsOpen() {
		ch.Update(runPollInterval)
		if ch.PeekStdout() {
			r.out.Write(ch.ReadStdout())
		}
		if ch.PeekStderr() {
			stderr.Write(ch.ReadStderr())
		}
	}
	ch.Close()

	if err := ch.Err(); err != nil {
		return fmt.Errorf("exec stream to pod %s/%s failed: %w", target.Namespace, target.Pod, err)
	}
	if status := ch.ExitStatus(); status != 0 {
		logging.Debug("Exec", "Command failed in %s/%s with exit status %d", target.Namespace, target.Pod, status)
		return &CommandError{Command: command, ExitStatus: status, Stderr: stderr.String()}
	}
	return nil
}

// MkdirRemote ensures a directory exists inside the target pod. `mkdir -p`
// makes it a no-op when the directory is already there.
func (r *Runner) MkdirRemote(ctx context.Context, target Target, path string) error {
	fmt.Fprintf(r.out, "Creating directory %s if not exist.\n", path)
	return r.Run(ctx, target, fmt.Sprintf("mkdir -p %s", path))
}

// ListRemote lists a directory inside the target pod through the same
// streaming output path as any other command.
func (r *Runner) ListRemote(ctx context.Context, target Target, dir string) error {
	return r.Run(ctx, target, fmt.Sprintf("ls %s", dir))
}
