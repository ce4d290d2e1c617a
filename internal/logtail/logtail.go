package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const chunkSize = 32 * 1024

// Tail returns at most n lines from the end of the file at path, oldest first.
// A missing file yields no lines and no error.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	// Read backwards until n+1 newlines are buffered or the start is reached.
	var buf []byte
	offset := info.Size()
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		size := int64(chunkSize)
		if offset < size {
			size = offset
		}
		offset -= size
		chunk := make([]byte, size)
		if _, err := file.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(chunk, buf...)
	}

	text := string(bytes.TrimRight(buf, "\n"))
	if text == "" {
		return nil, nil
	}
	lines := splitLines(text)
	if offset > 0 && len(lines) > 0 {
		// First line may be partial.
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

func splitLines(text string) []string {
	raw := bytes.Split([]byte(text), []byte{'\n'})
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(bytes.TrimRight(l, "\r"))
	}
	return lines
}
