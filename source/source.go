// Package source provides the text inputs consumed by the loaders.
//
// A Source is anything that can be checked for existence and then opened.
// Files on disk and in-memory text both satisfy it, so the loaders never
// touch the filesystem directly.
package source

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/firgold/fault"
)

// Source is a named, readable text input.
type Source interface {
	// Name identifies the source in messages, usually its path.
	Name() string

	// Stat returns an error if the source does not exist or cannot be read.
	Stat() error

	// Open returns the full content of the source.
	Open() (io.ReadCloser, error)
}

// FileSource reads a file on disk.
type FileSource struct {
	path string
}

// File returns a Source for the file at path.
func File(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (f *FileSource) Name() string {
	return f.path
}

// Stat checks that the path names a regular file.
func (f *FileSource) Stat() error {
	info, err := os.Stat(f.path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return errors.New("is a directory")
	}

	return nil
}

// Open opens the file.
func (f *FileSource) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// TextSource holds its content in memory.
type TextSource struct {
	name    string
	content []byte
}

// Text returns a Source whose content is the given string.
func Text(name, content string) *TextSource {
	return &TextSource{name: name, content: []byte(content)}
}

// Bytes returns a Source whose content is the given byte slice.
func Bytes(name string, content []byte) *TextSource {
	return &TextSource{name: name, content: content}
}

func (t *TextSource) Name() string { return t.name }

func (t *TextSource) Stat() error { return nil }

func (t *TextSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(t.content)), nil
}

// CheckAll verifies every source exists, stopping at the first that does
// not. It never opens a source.
func CheckAll(srcs ...Source) error {
	for _, src := range srcs {
		if err := src.Stat(); err != nil {
			return fault.NotFound(src.Name(), err)
		}
	}

	return nil
}

// ReadAll returns the raw content of a source.
func ReadAll(src Source) ([]byte, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fault.NotFound(src.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fault.NotFound(src.Name(), errors.Wrap(err, "read failed"))
	}

	return data, nil
}

// ReadAllText checks every source, then reads each in order. Nothing is
// read unless all sources exist.
func ReadAllText(srcs ...Source) ([]string, error) {
	if err := CheckAll(srcs...); err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(srcs))
	for _, src := range srcs {
		data, err := ReadAll(src)
		if err != nil {
			return nil, err
		}

		texts = append(texts, string(data))
	}

	return texts, nil
}

// Lines splits text on \n. A trailing \r is left for the caller to trim.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
