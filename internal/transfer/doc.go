// Package transfer copies single files between the local filesystem and
// running pods.
//
// The exec protocol has no file API, so transfers are layered on top of
// remote commands: upload streams a locally built tar archive into a remote
// `tar xvf -`, download drains the stdout of a remote `tar cmf -` and
// extracts the buffered archive locally. The framing overhead buys
// universality; any pod with a tar binary can participate.
//
// Two ordering rules keep the archive intact. On upload, every byte reaches
// the remote stdin before the channel closes. On download, the stdout
// stream is buffered in full before extraction starts, because extraction
// seeks back to the beginning of the archive.
package transfer
