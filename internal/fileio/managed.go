package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// trackedFile remembers whether Close has been called on it.
type trackedFile struct {
	afero.File
	closed bool
}

func (f *trackedFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.File.Close()
}

func (f *trackedFile) Closed() bool { return f.closed }

// WithFile opens name with the given flag, hands it to fn and closes it
// afterwards. An error from fn takes precedence over one from Close.
func WithFile(fs afero.Fs, name string, flag int, fn func(afero.File) error) (err error) {
	f, err := fs.OpenFile(name, flag, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

type ContextManagersResult struct {
	FileClosedInWith     bool   `json:"file_closed_in_with" yaml:"file_closed_in_with"`
	FileClosedAfterWith  bool   `json:"file_closed_after_with" yaml:"file_closed_after_with"`
	MultipleFilesWritten bool   `json:"multiple_files_written" yaml:"multiple_files_written"`
	CustomContextManager string `json:"custom_context_manager" yaml:"custom_context_manager"`
}

func ContextManagers(fs afero.Fs) (ContextManagersResult, error) {
	var r ContextManagersResult

	name, err := tempFile(fs, "tour-ctx-*.txt")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	raw, err := fs.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return r, err
	}
	f := &trackedFile{File: raw}
	func() {
		defer f.Close()
		_, err = f.WriteString("Content managed by context manager")
		r.FileClosedInWith = f.Closed()
	}()
	if err != nil {
		return r, err
	}
	r.FileClosedAfterWith = f.Closed()

	var paths []string
	for range 2 {
		p, err := tempFile(fs, "tour-ctx-*.txt")
		if err != nil {
			return r, err
		}
		defer fs.Remove(p)
		paths = append(paths, p)
	}
	err = WithFile(fs, paths[0], os.O_WRONLY|os.O_TRUNC, func(f1 afero.File) error {
		return WithFile(fs, paths[1], os.O_WRONLY|os.O_TRUNC, func(f2 afero.File) error {
			if _, err := f1.WriteString("File 1 content"); err != nil {
				return err
			}
			_, err := f2.WriteString("File 2 content")
			return err
		})
	})
	if err != nil {
		return r, err
	}
	r.MultipleFilesWritten = true

	err = WithFile(fs, name, os.O_RDONLY, func(f afero.File) error {
		buf := make([]byte, 20)
		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.ErrUnexpectedEOF {
			return err
		}
		r.CustomContextManager = string(buf[:n])
		return nil
	})
	return r, err
}

type InMemoryResult struct {
	StringIOContent string   `json:"stringio_content" yaml:"stringio_content"`
	StringIOLines   []string `json:"stringio_lines" yaml:"stringio_lines"`
	BytesIOContent  []byte   `json:"bytesio_content" yaml:"bytesio_content"`
	CSVInMemory     string   `json:"csv_in_memory" yaml:"csv_in_memory"`
}

// readLines splits r into lines, keeping the trailing newline on each.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

func InMemory() (InMemoryResult, error) {
	var r InMemoryResult

	var text strings.Builder
	text.WriteString("Hello, ")
	text.WriteString("World!")
	text.WriteString("\nPython StringIO")
	r.StringIOContent = text.String()

	lines, err := readLines(strings.NewReader(r.StringIOContent))
	if err != nil {
		return r, err
	}
	r.StringIOLines = lines

	var bin bytes.Buffer
	bin.WriteString("Binary ")
	bin.WriteString("Data")
	bin.Write([]byte{0x00, 0xff, 0x42})
	r.BytesIOContent = bin.Bytes()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}}); err != nil {
		return r, err
	}
	r.CSVInMemory = buf.String()

	return r, nil
}
