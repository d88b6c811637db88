package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Rotator wraps an io.Writer and keeps the backing file bounded to a
// fixed number of recent lines. Once twice the capacity has been seen,
// the file is rewritten with only the retained tail.
type Rotator struct {
	writer    io.Writer
	filePath  string
	lines     []string
	capacity  int
	head      int
	size      int
	totalSeen int
	mu        sync.Mutex
}

// NewRotator creates a new Rotator that keeps at most maxLines lines.
func NewRotator(writer io.Writer, maxLines int, filePath string) *Rotator {
	return &Rotator{
		writer:   writer,
		filePath: filePath,
		lines:    make([]string, maxLines),
		capacity: maxLines,
	}
}

// Write implements io.Writer and tracks lines for rotation.
func (r *Rotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err = r.writer.Write(p)
	if err != nil {
		return n, err
	}

	for line := range strings.SplitSeq(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}

		r.push(line)

		// Rotation is deferred until twice the capacity has passed
		// through so the file is rewritten infrequently.
		if r.totalSeen == r.capacity*2 {
			if err := r.rotate(); err != nil {
				return n, fmt.Errorf("failed to rotate log file: %w", err)
			}

			r.totalSeen = r.size
		}
	}

	return n, nil
}

// push appends a line to the circular line buffer.
func (r *Rotator) push(line string) {
	r.lines[r.head] = line

	r.head = (r.head + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}

	r.totalSeen++
}

// tail returns the buffered lines in chronological order.
func (r *Rotator) tail() []string {
	if r.size == 0 {
		return nil
	}

	result := make([]string, r.size)
	start := (r.head - r.size + r.capacity) % r.capacity

	for i := range r.size {
		result[i] = r.lines[(start+i)%r.capacity]
	}

	return result
}

// rotate rewrites the backing file with only the retained tail.
func (r *Rotator) rotate() error {
	lines := r.tail()
	if len(lines) == 0 {
		return nil
	}

	temp, err := os.CreateTemp(filepath.Dir(r.filePath), "temp-log-")
	if err != nil {
		return err
	}

	tempPath := temp.Name()

	content := strings.Join(lines, "\n") + "\n"
	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		os.Remove(tempPath)

		return err
	}

	if err := temp.Sync(); err != nil {
		temp.Close()
		os.Remove(tempPath)

		return err
	}

	temp.Close()

	if closer, ok := r.writer.(io.Closer); ok {
		closer.Close()
	}

	// Remove-then-rename keeps this working on Windows too.
	os.Remove(r.filePath)

	if err := os.Rename(tempPath, r.filePath); err != nil {
		return err
	}

	newFile, err := os.OpenFile(r.filePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	r.writer = newFile

	return nil
}
