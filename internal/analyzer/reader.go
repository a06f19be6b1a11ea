package analyzer

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const readBufferSize = 64 * 1024

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type inputFormat int

const (
	formatPlain inputFormat = iota
	formatGzip
	formatZstd
)

func (f inputFormat) String() string {
	switch f {
	case formatGzip:
		return "gzip"
	case formatZstd:
		return "zstd"
	default:
		return "plain"
	}
}

// lineReader yields raw lines one at a time, decompressing the stream
// when it starts with a gzip or zstd header. Lines have no length limit.
type lineReader struct {
	br     *bufio.Reader
	format inputFormat
	close  func() error
	line   int
}

func newLineReader(r io.Reader) (*lineReader, error) {
	src := bufio.NewReaderSize(r, readBufferSize)

	// Fewer than four bytes is fine, the stream is then treated as plain text.
	magic, err := src.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &FileError{Op: "read", Err: err}
	}

	lr := &lineReader{close: func() error { return nil }}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, &FileError{Op: "decompress", Err: err}
		}
		lr.format = formatGzip
		lr.br = bufio.NewReaderSize(gz, readBufferSize)
		lr.close = gz.Close
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, &FileError{Op: "decompress", Err: err}
		}
		lr.format = formatZstd
		lr.br = bufio.NewReaderSize(dec, readBufferSize)
		lr.close = func() error {
			dec.Close()
			return nil
		}
	default:
		lr.format = formatPlain
		lr.br = src
	}

	return lr, nil
}

// Next returns the next line including its line terminator and its 1-indexed
// number. It returns io.EOF once the input is exhausted.
func (lr *lineReader) Next() ([]byte, int, error) {
	text, err := lr.br.ReadBytes('\n')
	if len(text) == 0 && err != nil {
		if errors.Is(err, io.EOF) {
			return nil, lr.line, io.EOF
		}
		return nil, lr.line, lr.wrap(err)
	}
	lr.line++

	// A final line without a newline arrives together with io.EOF.
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, lr.line, lr.wrap(err)
	}
	return text, lr.line, nil
}

func (lr *lineReader) wrap(err error) error {
	op := "read"
	if lr.format != formatPlain {
		op = "decompress"
	}
	return &FileError{Op: op, Err: err}
}

// Close releases the decompressor, if any. The underlying reader is not closed.
func (lr *lineReader) Close() error {
	return lr.close()
}
