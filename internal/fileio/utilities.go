package fileio

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyFile copies src to dst and keeps the modification time.
func CopyFile(afs afero.Fs, src, dst string) error {
	in, err := afs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := afs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return afs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopyTree recursively copies the directory src to dst.
func CopyTree(afs afero.Fs, src, dst string) error {
	return afero.Walk(afs, src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return afs.MkdirAll(target, info.Mode().Perm())
		}
		return CopyFile(afs, path, target)
	})
}

type ExistsCheck struct {
	SourceExists bool `json:"source_exists" yaml:"source_exists"`
	IsFile       bool `json:"is_file" yaml:"is_file"`
	IsDir        bool `json:"is_dir" yaml:"is_dir"`
}

type WalkEntry struct {
	Root  string   `json:"root" yaml:"root"`
	Dirs  []string `json:"dirs" yaml:"dirs"`
	Files []string `json:"files" yaml:"files"`
}

type UtilitiesResult struct {
	FileCopied        bool        `json:"file_copied" yaml:"file_copied"`
	DirCopied         bool        `json:"dir_copied" yaml:"dir_copied"`
	FileMoved         bool        `json:"file_moved" yaml:"file_moved"`
	FileSize          int64       `json:"file_size" yaml:"file_size"`
	ExistsCheck       ExistsCheck `json:"exists_check" yaml:"exists_check"`
	NestedDirsCreated bool        `json:"nested_dirs_created" yaml:"nested_dirs_created"`
	DirectoryListing  []string    `json:"directory_listing" yaml:"directory_listing"`
	WalkTree          []WalkEntry `json:"walk_tree" yaml:"walk_tree"`
}

// WalkDirs visits directories top-down and lists each one's children.
func WalkDirs(afs afero.Fs, root string) ([]WalkEntry, error) {
	var out []WalkEntry
	err := afero.Walk(afs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		entries, err := afero.ReadDir(afs, path)
		if err != nil {
			return err
		}
		e := WalkEntry{Root: filepath.Base(path), Dirs: []string{}, Files: []string{}}
		for _, child := range entries {
			if child.IsDir() {
				e.Dirs = append(e.Dirs, child.Name())
			} else {
				e.Files = append(e.Files, child.Name())
			}
		}
		out = append(out, e)
		return nil
	})
	return out, err
}

func first[T any](s []T, n int) []T {
	return s[:min(n, len(s))]
}

func Utilities(afs afero.Fs) (UtilitiesResult, error) {
	var r UtilitiesResult

	dir, err := afero.TempDir(afs, "", "tour-utils-")
	if err != nil {
		return r, err
	}
	defer afs.RemoveAll(dir)

	source := filepath.Join(dir, "source.txt")
	if err := afero.WriteFile(afs, source, []byte("Source content"), 0o644); err != nil {
		return r, err
	}
	sourceDir := filepath.Join(dir, "source_dir")
	if err := afs.MkdirAll(sourceDir, 0o755); err != nil {
		return r, err
	}
	for name, content := range map[string]string{"file1.txt": "File 1", "file2.txt": "File 2"} {
		if err := afero.WriteFile(afs, filepath.Join(sourceDir, name), []byte(content), 0o644); err != nil {
			return r, err
		}
	}

	dest := filepath.Join(dir, "dest.txt")
	if err := CopyFile(afs, source, dest); err != nil {
		return r, err
	}
	r.FileCopied, _ = afero.Exists(afs, dest)

	destDir := filepath.Join(dir, "dest_dir")
	if err := CopyTree(afs, sourceDir, destDir); err != nil {
		return r, err
	}
	r.DirCopied, _ = afero.DirExists(afs, destDir)

	moved := filepath.Join(dir, "moved.txt")
	if err := afs.Rename(dest, moved); err != nil {
		return r, err
	}
	r.FileMoved, _ = afero.Exists(afs, moved)

	info, err := afs.Stat(source)
	if err != nil {
		return r, err
	}
	r.FileSize = info.Size()

	r.ExistsCheck.SourceExists, _ = afero.Exists(afs, source)
	r.ExistsCheck.IsFile = info.Mode().IsRegular()
	r.ExistsCheck.IsDir, _ = afero.IsDir(afs, sourceDir)

	deep := filepath.Join(dir, "new_directory", "nested", "deep")
	if err := afs.MkdirAll(deep, 0o755); err != nil {
		return r, err
	}
	r.NestedDirsCreated, _ = afero.DirExists(afs, deep)

	entries, err := afero.ReadDir(afs, dir)
	if err != nil {
		return r, err
	}
	for _, e := range first(entries, 5) {
		r.DirectoryListing = append(r.DirectoryListing, e.Name())
	}

	walk, err := WalkDirs(afs, dir)
	if err != nil {
		return r, err
	}
	for _, w := range first(walk, 3) {
		w.Dirs, w.Files = first(w.Dirs, 2), first(w.Files, 2)
		r.WalkTree = append(r.WalkTree, w)
	}

	return r, nil
}
