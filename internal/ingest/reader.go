package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Reader buffers raw bytes from a hardware stream and pushes completed
// barcode tokens onto a queue. Scanners in keyboard-wedge serial mode send
// one barcode per line; the terminator byte is configurable because some
// devices end lines with CR only.
type Reader struct {
	src        io.Reader
	terminator byte
	log        *slog.Logger
}

// NewReader creates a producer for the given byte stream.
func NewReader(src io.Reader, terminator byte, log *slog.Logger) *Reader {
	if terminator == 0 {
		terminator = '\n'
	}
	if log == nil {
		log = slog.Default()
	}
	return &Reader{
		src:        src,
		terminator: terminator,
		log:        log.With("component", "device"),
	}
}

// Run reads the stream until EOF or error, pushing each non-empty token.
// It returns nil on EOF, so unplugging the scanner is a clean shutdown.
func (r *Reader) Run(queue *Queue) error {
	scanner := bufio.NewScanner(r.src)
	scanner.Split(splitOn(r.terminator))

	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		r.log.Debug("barcode received", "barcode", token)
		queue.Push(token)
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return fmt.Errorf("read device: %w", err)
	}
	return nil
}

// splitOn returns a bufio split function for a single terminator byte,
// tolerating a CR before an LF terminator.
func splitOn(terminator byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if i := bytes.IndexByte(data, terminator); i >= 0 {
			return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
		}
		if atEOF && len(data) > 0 {
			return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
		}
		return 0, nil, nil
	}
}
