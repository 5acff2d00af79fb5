// Package podexec drives remote command execution inside pods over the
// Kubernetes exec subresource.
//
// The exec protocol multiplexes three byte flows (stdin, stdout, stderr)
// over one SPDY connection and reports the command's exit status out of
// band. Stream wraps that connection behind a poll-shaped Channel: callers
// pump with Update, check with Peek and drain with non-blocking Read, so no
// flow can starve another. Internally one goroutine owns the connection and
// buffers output; the polling surface is a deliberate shape, not a
// transport artifact.
//
// Runner layers command semantics on top: run a shell command to
// completion, stream stdout live, hold stderr back and turn a non-zero exit
// status into a CommandError carrying that stderr text. The file transfer
// engine reuses the same channels for tar streaming.
//
// Lifecycle rule: a channel is owned by exactly one call, which must close
// it on every exit path. Close is idempotent, signals EOF on stdin first so
// stdin-draining remote commands can finish, and only then tears down the
// connection.
package podexec
