package fileio

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
)

type PathProperties struct {
	Name     string `json:"name" yaml:"name"`
	Stem     string `json:"stem" yaml:"stem"`
	Suffix   string `json:"suffix" yaml:"suffix"`
	Parent   string `json:"parent" yaml:"parent"`
	Absolute string `json:"absolute" yaml:"absolute"`
	Exists   bool   `json:"exists" yaml:"exists"`
	IsFile   bool   `json:"is_file" yaml:"is_file"`
	IsDir    bool   `json:"is_dir" yaml:"is_dir"`
}

type FileStats struct {
	Size     int64     `json:"size" yaml:"size"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

type PathsResult struct {
	CurrentDir      string         `json:"current_dir" yaml:"current_dir"`
	ConstructedPath string         `json:"constructed_path" yaml:"constructed_path"`
	PathProperties  PathProperties `json:"path_properties" yaml:"path_properties"`
	DirContents     []string       `json:"dir_contents" yaml:"dir_contents"`
	TxtFiles        []string       `json:"txt_files" yaml:"txt_files"`
	ReadContent     string         `json:"read_content" yaml:"read_content"`
	FileStats       FileStats      `json:"file_stats" yaml:"file_stats"`
}

// Properties describes path the way pathlib does.
func Properties(afs afero.Fs, path string) PathProperties {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	p := PathProperties{
		Name:     name,
		Stem:     strings.TrimSuffix(name, ext),
		Suffix:   ext,
		Parent:   filepath.Dir(path),
		Absolute: abs,
	}
	if info, err := afs.Stat(path); err == nil {
		p.Exists = true
		p.IsFile = info.Mode().IsRegular()
		p.IsDir = info.IsDir()
	}
	return p
}

// GlobRecursive matches pattern against the base name of every file below
// root, like "**/<pattern>".
func GlobRecursive(afs afero.Fs, root, pattern string) ([]string, error) {
	var out []string
	err := afero.Walk(afs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, info.Name())
		if err != nil {
			return err
		}
		if ok {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func Paths(afs afero.Fs) (PathsResult, error) {
	var r PathsResult

	wd, err := os.Getwd()
	if err != nil {
		return r, err
	}
	r.CurrentDir = wd
	r.ConstructedPath = filepath.Join("folder", "subfolder", "file.txt")

	dir, err := afero.TempDir(afs, "", "tour-paths-")
	if err != nil {
		return r, err
	}
	defer afs.RemoveAll(dir)

	for _, d := range []string{"subdir1", "subdir2", filepath.Join("subdir1", "nested")} {
		if err := afs.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return r, err
		}
	}
	files := map[string]string{
		"file1.txt":                           "Content 1",
		"file2.go":                            `fmt.Println("Hello")`,
		filepath.Join("subdir1", "file3.txt"): "Content 3",
	}
	for name, content := range files {
		if err := afero.WriteFile(afs, filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return r, err
		}
	}

	file1 := filepath.Join(dir, "file1.txt")
	r.PathProperties = Properties(afs, file1)

	entries, err := afero.ReadDir(afs, dir)
	if err != nil {
		return r, err
	}
	for _, e := range entries {
		r.DirContents = append(r.DirContents, e.Name())
	}

	matches, err := GlobRecursive(afs, dir, "*.txt")
	if err != nil {
		return r, err
	}
	for _, m := range matches {
		r.TxtFiles = append(r.TxtFiles, filepath.Base(m))
	}
	slices.Sort(r.TxtFiles)

	content, err := afero.ReadFile(afs, file1)
	if err != nil {
		return r, err
	}
	r.ReadContent = string(content)

	info, err := afs.Stat(file1)
	if err != nil {
		return r, err
	}
	r.FileStats = FileStats{Size: info.Size(), Modified: info.ModTime()}

	return r, nil
}
