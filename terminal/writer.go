package terminal

import (
	"bytes"
	"io"
)

// CRLFWriter adds the carriage return that a raw-mode terminal no longer
// inserts before every line feed.
type CRLFWriter struct {
	io.Writer
}

func (w CRLFWriter) Write(p []byte) (int, error) {
	if _, err := w.Writer.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
