package filemagic

import (
	"errors"
	"io"
	"os"
)

// DetectReaderAt detects the type of size bytes readable from r using the
// built-in table. Only the head and tail regions the table inspects are read.
func DetectReaderAt(r io.ReaderAt, size int64) (FileType, bool, error) {
	return defaultDetector.DetectReaderAt(r, size)
}

// DetectReaderAt reads the leading HeadReach and trailing TailReach bytes of
// r and detects over their concatenation. Start patterns never reach past the
// head part and end patterns never reach before the tail part, so the result
// equals Detect over the full content.
func (d *Detector) DetectReaderAt(r io.ReaderAt, size int64) (FileType, bool, error) {
	if r == nil {
		return Unknown, false, ErrNilReader
	}
	if size < 0 {
		return Unknown, false, ErrInvalidSize
	}

	head, tail := int64(d.head), int64(d.tail)
	if size <= head+tail {
		buf := make([]byte, size)
		if err := readFullAt(r, buf, 0); err != nil {
			return Unknown, false, &DetectError{Op: "read", Err: err}
		}
		t, ok := d.Detect(buf)
		return t, ok, nil
	}

	buf := make([]byte, head+tail)
	if err := readFullAt(r, buf[:head], 0); err != nil {
		return Unknown, false, &DetectError{Op: "read head", Err: err}
	}
	if err := readFullAt(r, buf[head:], size-tail); err != nil {
		return Unknown, false, &DetectError{Op: "read tail", Err: err}
	}
	t, ok := d.Detect(buf)
	return t, ok, nil
}

func readFullAt(r io.ReaderAt, buf []byte, off int64) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// DetectReader detects the type of everything readable from r using the
// built-in table.
func DetectReader(r io.Reader) (FileType, bool, error) {
	return defaultDetector.DetectReader(r)
}

// DetectReader reads the leading HeadReach bytes of r, then drains it keeping
// only the last TailReach bytes. The result equals DetectReaderAt over the
// same content.
func (d *Detector) DetectReader(r io.Reader) (FileType, bool, error) {
	if r == nil {
		return Unknown, false, ErrNilReader
	}

	head := make([]byte, d.head)
	n, err := io.ReadFull(r, head)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		t, ok := d.Detect(head[:n])
		return t, ok, nil
	}
	if err != nil {
		return Unknown, false, &DetectError{Op: "read head", Err: err}
	}

	tail := &tailBuffer{size: d.tail}
	if _, err := io.Copy(tail, r); err != nil {
		return Unknown, false, &DetectError{Op: "read tail", Err: err}
	}
	t, ok := d.Detect(append(head, tail.buf...))
	return t, ok, nil
}

// tailBuffer is an io.Writer that retains the last size bytes written.
type tailBuffer struct {
	buf  []byte
	size int
}

func (w *tailBuffer) Write(p []byte) (int, error) {
	if len(p) >= w.size {
		w.buf = append(w.buf[:0], p[len(p)-w.size:]...)
		return len(p), nil
	}
	w.buf = append(w.buf, p...)
	if over := len(w.buf) - w.size; over > 0 {
		w.buf = append(w.buf[:0], w.buf[over:]...)
	}
	return len(p), nil
}

// DetectFile detects the type of the file at path using the built-in table.
func DetectFile(path string) (FileType, bool, error) {
	return defaultDetector.DetectFile(path)
}

// DetectFile opens path and detects its type from its head and tail.
func (d *Detector) DetectFile(path string) (FileType, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, false, &DetectError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, false, &DetectError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return Unknown, false, &DetectError{Op: "open", Path: path, Err: ErrIsDir}
	}

	t, ok, err := d.DetectReaderAt(f, info.Size())
	if err != nil {
		var de *DetectError
		if errors.As(err, &de) {
			de.Path = path
		}
		return Unknown, false, err
	}
	return t, ok, nil
}
