package podexec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/remotecommand"
	utilexec "k8s.io/client-go/util/exec"

	"podctl/internal/kube"
	"podctl/pkg/logging"
)

// Target identifies the remote workload a command runs against.
type Target struct {
	Pod       string
	Namespace string
}

// Channel is one live multiplexed exec connection: three independent byte
// flows (stdout, stderr, stdin) plus a final exit status once closed.
//
// The surface is poll shaped: Update pumps until buffered data is visible,
// Peek checks without consuming and Read drains what is buffered without
// ever blocking for more. WriteStdin may block under backpressure but never
// drops bytes.
type Channel interface {
	IsOpen() bool
	PeekStdout() bool
	PeekStderr() bool
	ReadStdout() []byte
	ReadStderr() []byte
	WriteStdin(p []byte) (int, error)
	Update(timeout time.Duration)
	Close()
	// ExitStatus is only meaningful after Close; non-zero means the remote
	// command failed. A negative value means the stream itself broke, see Err.
	ExitStatus() int
	Err() error
}

// Streamer opens exec channels against targets. The production
// implementation is Dialer; tests substitute fakes.
type Streamer interface {
	Open(ctx context.Context, target Target, command []string) (Channel, error)
}

// streamExecutor is the slice of remotecommand.Executor the stream needs.
type streamExecutor interface {
	StreamWithContext(ctx context.Context, options remotecommand.StreamOptions) error
}

// Dialer opens SPDY exec streams through a kube client.
type Dialer struct {
	client *kube.Client
}

// NewDialer returns a Dialer bound to the given cluster client.
func NewDialer(client *kube.Client) *Dialer {
	return &Dialer{client: client}
}

// Open establishes a bidirectional exec stream to the target pod running the
// given command vector, with stdin, stdout and stderr attached and no TTY.
// A missing pod surfaces as *kube.NotFoundError.
func (d *Dialer) Open(ctx context.Context, target Target, command []string) (Channel, error) {
	clientset := d.client.Clientset()

	// The exec subresource does not 404 cleanly on a missing pod, so check
	// up front to classify the failure.
	if _, err := clientset.CoreV1().Pods(target.Namespace).Get(ctx, target.Pod, metav1.GetOptions{}); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &kube.NotFoundError{Kind: kube.KindPod, Name: target.Pod, Namespace: target.Namespace}
		}
		return nil, err
	}

	req := clientset.CoreV1().RESTClient().Post().
		Resource("pods").
		Namespace(target.Namespace).
		Name(target.Pod).
		SubResource("exec").
		VersionedParams(&corev1.PodExecOptions{
			Command: command,
			Stdin:   true,
			Stdout:  true,
			Stderr:  true,
			TTY:     false,
		}, scheme.ParameterCodec)

	executor, err := remotecommand.NewSPDYExecutor(d.client.RESTConfig(), http.MethodPost, req.URL())
	if err != nil {
		return nil, err
	}

	logging.Debug("Exec", "Opening exec stream to %s/%s: %v", target.Namespace, target.Pod, command)
	return startStream(ctx, executor), nil
}

// Stream is the Channel implementation over a remotecommand executor.
// One goroutine owns the underlying connection; stdout and stderr land in
// internal buffers guarded by a single mutex, and a condition variable
// wakes Update waiters whenever data arrives or the remote process ends.
type Stream struct {
	cancel context.CancelFunc
	stdinW *io.PipeWriter

	mu       sync.Mutex
	cond     *sync.Cond
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	done     bool
	closed   bool
	exitCode int
	runErr   error

	finished chan struct{}
}

// startStream launches the exec connection and returns immediately; the
// remote process runs until it exits or the stream is closed.
func startStream(ctx context.Context, executor streamExecutor) *Stream {
	runCtx, cancel := context.WithCancel(ctx)
	stdinR, stdinW := io.Pipe()

	s := &Stream{
		cancel:   cancel,
		stdinW:   stdinW,
		finished: make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)

	go func() {
		err := executor.StreamWithContext(runCtx, remotecommand.StreamOptions{
			Stdin:  stdinR,
			Stdout: &flowWriter{stream: s, buf: &s.stdout},
			Stderr: &flowWriter{stream: s, buf: &s.stderr},
			Tty:    false,
		})

		// The remote side no longer reads stdin; unblock any pending writer.
		stdinR.CloseWithError(io.ErrClosedPipe)

		s.mu.Lock()
		s.done = true
		switch {
		case err == nil:
			s.exitCode = 0
		default:
			var codeErr utilexec.CodeExitError
			if errors.As(err, &codeErr) {
				s.exitCode = codeErr.Code
			} else {
				s.exitCode = -1
				s.runErr = err
			}
		}
		s.cond.Broadcast()
		s.mu.Unlock()
		close(s.finished)
	}()

	return s
}

// flowWriter appends one remote flow into its stream buffer and wakes
// Update waiters.
type flowWriter struct {
	stream *Stream
	buf    *bytes.Buffer
}

func (w *flowWriter) Write(p []byte) (int, error) {
	w.stream.mu.Lock()
	defer w.stream.mu.Unlock()
	n, _ := w.buf.Write(p) // bytes.Buffer writes cannot fail
	w.stream.cond.Broadcast()
	return n, nil
}

// IsOpen reports whether the channel still carries data: it stays true
// until the remote process has ended and both output buffers are drained.
func (s *Stream) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.done || s.stdout.Len() > 0 || s.stderr.Len() > 0
}

// PeekStdout reports whether buffered stdout data is available, without
// consuming it.
func (s *Stream) PeekStdout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stdout.Len() > 0
}

// PeekStderr reports whether buffered stderr data is available, without
// consuming it.
func (s *Stream) PeekStderr() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stderr.Len() > 0
}

// ReadStdout drains and returns all currently buffered stdout bytes. It
// never blocks; with nothing buffered it returns nil.
func (s *Stream) ReadStdout() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return drain(&s.stdout)
}

// ReadStderr drains and returns all currently buffered stderr bytes.
func (s *Stream) ReadStderr() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return drain(&s.stderr)
}

func drain(buf *bytes.Buffer) []byte {
	if buf.Len() == 0 {
		return nil
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	buf.Reset()
	return out
}

// WriteStdin enqueues bytes for the remote stdin. It blocks while the
// transport applies backpressure and fails once the remote side stopped
// reading; it never silently drops data.
func (s *Stream) WriteStdin(p []byte) (int, error) {
	return s.stdinW.Write(p)
}

// Update blocks until buffered stdout/stderr data is visible, the remote
// process has ended, or the timeout elapses, whichever comes first.
func (s *Stream) Update(timeout time.Duration) {
	deadline := time.Now().Add(timeout)

	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.done && s.stdout.Len() == 0 && s.stderr.Len() == 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		timer := time.AfterFunc(remaining, s.cond.Broadcast)
		s.cond.Wait()
		timer.Stop()
	}
}

// Close terminates the channel: it signals EOF on stdin, waits for the
// remote process to finish, then tears down the connection. Idempotent and
// safe to call on every exit path.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	// EOF on stdin lets commands like `tar xvf -` finish cleanly before the
	// transport goes away.
	s.stdinW.Close()
	select {
	case <-s.finished:
	case <-time.After(closeGracePeriod):
		// The remote process ignored stdin EOF; tear the connection down.
		s.cancel()
		<-s.finished
	}
	s.cancel()
}

// closeGracePeriod bounds how long Close waits for the remote process to
// exit after stdin EOF before forcing the connection down.
const closeGracePeriod = time.Minute

// ExitStatus returns the remote command's exit status. Only valid after
// Close; zero means success, negative means the stream failed before an
// exit status was seen.
func (s *Stream) ExitStatus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode
}

// Err returns the transport-level failure, if any. Remote non-zero exits
// are not transport failures; they are reported through ExitStatus.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runErr
}
