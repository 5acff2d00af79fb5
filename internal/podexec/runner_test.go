package podexec

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podctl/internal/kube"
)

// scriptedChannel serves pre-baked stdout/stderr and records lifecycle calls.
type scriptedChannel struct {
	stdout []byte
	stderr []byte
	exit   int
	runErr error

	stdin      bytes.Buffer
	closeCount int
}

func (c *scriptedChannel) IsOpen() bool {
	return len(c.stdout) > 0 || len(c.stderr) > 0
}

func (c *scriptedChannel) PeekStdout() bool { return len(c.stdout) > 0 }
func (c *scriptedChannel) PeekStderr() bool { return len(c.stderr) > 0 }

func (c *scriptedChannel) ReadStdout() []byte {
	out := c.stdout
	c.stdout = nil
	return out
}

func (c *scriptedChannel) ReadStderr() []byte {
	out := c.stderr
	c.stderr = nil
	return out
}

func (c *scriptedChannel) WriteStdin(p []byte) (int, error) { return c.stdin.Write(p) }
func (c *scriptedChannel) Update(timeout time.Duration)     {}
func (c *scriptedChannel) Close()                           { c.closeCount++ }
func (c *scriptedChannel) ExitStatus() int                  { return c.exit }
func (c *scriptedChannel) Err() error                       { return c.runErr }

// recordingStreamer hands out a scripted channel and records the request.
type recordingStreamer struct {
	channel *scriptedChannel
	openErr error

	target  Target
	command []string
}

func (s *recordingStreamer) Open(ctx context.Context, target Target, command []string) (Channel, error) {
	s.target = target
	s.command = command
	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.channel, nil
}

func TestRunStreamsStdoutAndSucceeds(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{stdout: []byte("total 0\n")}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "worker-1", Namespace: "jobs"}, "ls /")
	require.NoError(t, err)

	assert.Equal(t, []string{"/bin/sh", "-c", "ls /"}, streamer.command)
	assert.Contains(t, out.String(), "total 0")
	assert.GreaterOrEqual(t, streamer.channel.closeCount, 1, "channel must be closed")
}

func TestRunNonZeroExitCarriesStderr(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{
		stderr: []byte("sh: nope: not found\n"),
		exit:   127,
	}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "worker-1", Namespace: "jobs"}, "nope")

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr), "expected CommandError, got %v", err)
	assert.Equal(t, 127, cmdErr.ExitStatus)
	assert.Equal(t, "sh: nope: not found\n", cmdErr.Stderr)
	// Stderr is not forwarded on the live output path
	assert.NotContains(t, out.String(), "not found")
	assert.GreaterOrEqual(t, streamer.channel.closeCount, 1)
}

func TestRunExitOneNeverSilentlySucceeds(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{exit: 1}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "any", Namespace: "default"}, "false")

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitStatus)
}

func TestRunZeroExitNeverFails(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{stdout: []byte("ok")}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "any", Namespace: "default"}, "true")
	assert.NoError(t, err)
}

func TestRunPropagatesTargetNotFound(t *testing.T) {
	notFound := &kube.NotFoundError{Kind: kube.KindPod, Name: "ghost", Namespace: "jobs"}
	streamer := &recordingStreamer{openErr: notFound}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "ghost", Namespace: "jobs"}, "ls")

	var nf *kube.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ghost", nf.Name)
}

func TestRunTransportErrorIsNotCommandError(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{
		exit:   -1,
		runErr: errors.New("connection reset"),
	}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	err := runner.Run(context.Background(), Target{Pod: "worker-1", Namespace: "jobs"}, "ls")
	require.Error(t, err)

	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMkdirRemoteCommand(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	require.NoError(t, runner.MkdirRemote(context.Background(), Target{Pod: "worker-1", Namespace: "jobs"}, "/data"))
	assert.Equal(t, []string{"/bin/sh", "-c", "mkdir -p /data"}, streamer.command)
}

func TestListRemoteCommand(t *testing.T) {
	streamer := &recordingStreamer{channel: &scriptedChannel{stdout: []byte("a.txt\n")}}
	var out, errOut bytes.Buffer
	runner := NewRunner(streamer, &out, &errOut)

	require.NoError(t, runner.ListRemote(context.Background(), Target{Pod: "worker-1", Namespace: "jobs"}, "/data"))
	assert.Equal(t, []string{"/bin/sh", "-c", "ls /data"}, streamer.command)
	assert.Contains(t, out.String(), "a.txt")
}
