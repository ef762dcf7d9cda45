// Package iotest provides error-injecting io.Reader/io.Writer/io.Closer
// implementations for exercising the failure paths of StreamEncrypter and
// StreamDecrypter without touching real files or network sockets.
package iotest

import "io"

// ErrReader always returns Err from Read.
type ErrReader struct {
	Err error
}

func (r ErrReader) Read(p []byte) (int, error) { return 0, r.Err }

// ErrWriteCloser always returns Err from both Write and Close.
type ErrWriteCloser struct {
	Err error
}

func (w ErrWriteCloser) Write(p []byte) (int, error) { return 0, w.Err }
func (w ErrWriteCloser) Close() error                { return w.Err }

// CloseErrWriteCloser writes through to W successfully but returns Err
// from Close, simulating a downstream flush failure after a successful
// write.
type CloseErrWriteCloser struct {
	W   io.Writer
	Err error
}

func (w CloseErrWriteCloser) Write(p []byte) (int, error) { return w.W.Write(p) }
func (w CloseErrWriteCloser) Close() error                { return w.Err }
