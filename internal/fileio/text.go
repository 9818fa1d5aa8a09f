// Package fileio covers reading and writing files in several formats. Every
// function takes an afero.Fs so it can run against the OS or memory, and
// removes whatever it created before returning.
package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

func tempFile(fs afero.Fs, pattern string) (string, error) {
	f, err := afero.TempFile(fs, "", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

func appendString(fs afero.Fs, name, s string) error {
	f, err := fs.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(s)
	return err
}

type PositionOps struct {
	First5Chars    string `json:"first_5_chars" yaml:"first_5_chars"`
	PositionAfter5 int64  `json:"position_after_5" yaml:"position_after_5"`
	FileSize       int64  `json:"file_size" yaml:"file_size"`
}

type TextFileResult struct {
	FileCreated bool        `json:"file_created" yaml:"file_created"`
	FullContent string      `json:"full_content" yaml:"full_content"`
	Lines       []string    `json:"lines" yaml:"lines"`
	AllLines    []string    `json:"all_lines" yaml:"all_lines"`
	AfterAppend string      `json:"after_append" yaml:"after_append"`
	PositionOps PositionOps `json:"position_ops" yaml:"position_ops"`
}

func TextFile(fs afero.Fs) (TextFileResult, error) {
	var r TextFileResult

	name, err := tempFile(fs, "tour-*.txt")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	body := "Hello, World!\nPython is awesome!\nFile operations are important.\n"
	if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
		return r, err
	}
	r.FileCreated = true

	content, err := afero.ReadFile(fs, name)
	if err != nil {
		return r, err
	}
	r.FullContent = string(content)

	if r.Lines, err = scanLines(fs, name); err != nil {
		return r, err
	}
	for _, line := range strings.SplitAfter(r.FullContent, "\n") {
		if line != "" {
			r.AllLines = append(r.AllLines, strings.TrimSpace(line))
		}
	}

	if err := appendString(fs, name, "Appended line 1\nAppended line 2\n"); err != nil {
		return r, err
	}
	updated, err := afero.ReadFile(fs, name)
	if err != nil {
		return r, err
	}
	r.AfterAppend = string(updated)

	r.PositionOps, err = positionOps(fs, name)
	return r, err
}

func scanLines(fs afero.Fs, name string) ([]string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	return lines, sc.Err()
}

func positionOps(fs afero.Fs, name string) (PositionOps, error) {
	var p PositionOps
	f, err := fs.Open(name)
	if err != nil {
		return p, err
	}
	defer f.Close()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return p, err
	}
	buf := make([]byte, 5)
	if _, err := io.ReadFull(f, buf); err != nil {
		return p, err
	}
	p.First5Chars = string(buf)

	if p.PositionAfter5, err = f.Seek(0, io.SeekCurrent); err != nil {
		return p, err
	}
	p.FileSize, err = f.Seek(0, io.SeekEnd)
	return p, err
}

// OpenModes maps Python-style mode strings to the os flags that implement
// them.
var OpenModes = map[string]struct {
	Description string
	Flag        int
}{
	"r":  {"Read (default)", os.O_RDONLY},
	"w":  {"Write (overwrites existing)", os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
	"a":  {"Append", os.O_WRONLY | os.O_CREATE | os.O_APPEND},
	"x":  {"Exclusive creation (fails if exists)", os.O_WRONLY | os.O_CREATE | os.O_EXCL},
	"r+": {"Read and write", os.O_RDWR},
	"w+": {"Write and read (overwrites)", os.O_RDWR | os.O_CREATE | os.O_TRUNC},
	"a+": {"Append and read", os.O_RDWR | os.O_CREATE | os.O_APPEND},
	"rb": {"Read binary", os.O_RDONLY},
	"wb": {"Write binary", os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
	"rt": {"Read text (default)", os.O_RDONLY},
	"wt": {"Write text", os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
}

type FileModesResult struct {
	Modes          map[string]string `json:"modes" yaml:"modes"`
	AfterWrite     string            `json:"after_write" yaml:"after_write"`
	FinalContent   string            `json:"final_content" yaml:"final_content"`
	ExclusiveFails bool              `json:"exclusive_fails" yaml:"exclusive_fails"`
}

func openMode(fs afero.Fs, name, mode string) (afero.File, error) {
	m, ok := OpenModes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return fs.OpenFile(name, m.Flag, 0o644)
}

func FileModes(fs afero.Fs) (FileModesResult, error) {
	r := FileModesResult{Modes: make(map[string]string, len(OpenModes))}
	for k, v := range OpenModes {
		r.Modes[k] = v.Description
	}

	name, err := tempFile(fs, "tour-modes-*")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	if err := writeMode(fs, name, "w", "Initial content"); err != nil {
		return r, err
	}
	after, err := afero.ReadFile(fs, name)
	if err != nil {
		return r, err
	}
	r.AfterWrite = string(after)

	if err := writeMode(fs, name, "a", "\nAppended content"); err != nil {
		return r, err
	}

	f, err := openMode(fs, name, "r+")
	if err != nil {
		return r, err
	}
	defer f.Close()
	if _, err := io.ReadAll(f); err != nil {
		return r, err
	}
	if _, err := f.WriteString("\nAdded with r+"); err != nil {
		return r, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return r, err
	}
	final, err := io.ReadAll(f)
	if err != nil {
		return r, err
	}
	r.FinalContent = string(final)

	if excl, err := openMode(fs, name, "x"); err != nil {
		r.ExclusiveFails = true
	} else {
		excl.Close()
	}
	return r, nil
}

func writeMode(fs afero.Fs, name, mode, s string) error {
	f, err := openMode(fs, name, mode)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(s)
	return err
}
