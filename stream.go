package present

import (
	"bytes"
	"io"

	"github.com/dromara/present/internal/block"
)

// StreamEncrypter is an io.WriteCloser that buffers everything written to
// it and, on Close, encrypts the buffered plaintext as a single message
// and writes the result downstream. Padding is only well defined over a
// complete message, so there is no way to emit ciphertext before Close.
//
// For CBC mode the freshly generated IV is written first, immediately
// followed by the ciphertext; StreamDecrypter expects that same framing.
type StreamEncrypter struct {
	writer io.Writer
	key    Key
	mode   BlockMode
	buffer bytes.Buffer
	Error  error
}

// NewStreamEncrypter returns a StreamEncrypter that writes its encrypted
// output to w once Close is called.
func NewStreamEncrypter(w io.Writer, key Key, m BlockMode) *StreamEncrypter {
	return &StreamEncrypter{writer: w, key: key, mode: m}
}

// Write buffers p for encryption on Close.
func (e *StreamEncrypter) Write(p []byte) (n int, err error) {
	if e.Error != nil {
		return 0, e.Error
	}
	return e.buffer.Write(p)
}

// Close encrypts everything written so far, writes it to the underlying
// writer (IV first, for CBC), and closes the underlying writer if it
// implements io.Closer.
func (e *StreamEncrypter) Close() error {
	if e.Error != nil {
		return e.Error
	}

	ciphertext, iv, err := EncryptBytes(e.buffer.Bytes(), e.key, e.mode)
	if err != nil {
		e.Error = err
		return err
	}

	if e.mode == CBC {
		if _, err := e.writer.Write(iv); err != nil {
			e.Error = err
			return err
		}
	}
	if _, err := e.writer.Write(ciphertext); err != nil {
		e.Error = err
		return err
	}

	if closer, ok := e.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StreamDecrypter is an io.Reader that reads and decrypts its entire
// underlying reader on the first Read call, then serves the recovered
// plaintext in whatever chunk sizes the caller asks for.
type StreamDecrypter struct {
	reader    io.Reader
	key       Key
	mode      BlockMode
	decrypted []byte
	pos       int
	Error     error
}

// NewStreamDecrypter returns a StreamDecrypter reading ciphertext (IV
// first, for CBC, matching StreamEncrypter's framing) from r.
func NewStreamDecrypter(r io.Reader, key Key, m BlockMode) *StreamDecrypter {
	return &StreamDecrypter{reader: r, key: key, mode: m}
}

// Read decrypts the underlying reader's entire contents on first call and
// copies successive chunks of the result into p.
func (d *StreamDecrypter) Read(p []byte) (n int, err error) {
	if d.Error != nil {
		return 0, d.Error
	}

	if d.decrypted == nil {
		raw, err := io.ReadAll(d.reader)
		if err != nil {
			d.Error = err
			return 0, err
		}

		var iv []byte
		if d.mode == CBC {
			if len(raw) < block.Size {
				d.Error = CiphertextTooShortError{Length: len(raw)}
				return 0, d.Error
			}
			iv, raw = raw[:block.Size], raw[block.Size:]
		}

		plaintext, err := DecryptBytes(raw, d.key, d.mode, iv)
		if err != nil {
			d.Error = err
			return 0, err
		}
		d.decrypted = plaintext
	}

	if d.pos >= len(d.decrypted) {
		return 0, io.EOF
	}
	n = copy(p, d.decrypted[d.pos:])
	d.pos += n
	return n, nil
}
