// Package stdlib tours the commonly used parts of a standard library:
// processes, time, maths, randomness, text, hashing and numbers.
package stdlib

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

type PathOperations struct {
	Dirname  string    `json:"dirname" yaml:"dirname"`
	Basename string    `json:"basename" yaml:"basename"`
	Split    [2]string `json:"split" yaml:"split"`
	Splitext [2]string `json:"splitext" yaml:"splitext"`
	Join     string    `json:"join" yaml:"join"`
}

type SystemInfo struct {
	Platform          string `json:"platform" yaml:"platform"`
	Arch              string `json:"arch" yaml:"arch"`
	GoVersion         string `json:"go_version" yaml:"go_version"`
	PathSeparator     string `json:"path_separator" yaml:"path_separator"`
	LineSeparatorRepr string `json:"line_separator_repr" yaml:"line_separator_repr"`
}

type ProcessInfo struct {
	PID      int `json:"pid" yaml:"pid"`
	CPUCount int `json:"cpu_count" yaml:"cpu_count"`
}

type OSResult struct {
	GoPath         string         `json:"go_path" yaml:"go_path"`
	HomeDir        string         `json:"home_dir" yaml:"home_dir"`
	Cwd            string         `json:"cwd" yaml:"cwd"`
	PathOperations PathOperations `json:"path_operations" yaml:"path_operations"`
	SystemInfo     SystemInfo     `json:"system_info" yaml:"system_info"`
	ProcessInfo    ProcessInfo    `json:"process_info" yaml:"process_info"`
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// SplitExt splits path into a root and an extension that starts with a dot.
func SplitExt(path string) [2]string {
	ext := filepath.Ext(path)
	return [2]string{path[:len(path)-len(ext)], ext}
}

func OS() (OSResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return OSResult{}, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "Not found"
	}

	const path = "/home/user/documents/file.txt"
	dir, file := filepath.Split(path)

	lineSep := "\n"
	if runtime.GOOS == "windows" {
		lineSep = "\r\n"
	}

	return OSResult{
		GoPath:  getenv("GOPATH", "Not set"),
		HomeDir: home,
		Cwd:     cwd,
		PathOperations: PathOperations{
			Dirname:  filepath.Dir(path),
			Basename: filepath.Base(path),
			Split:    [2]string{filepath.Clean(dir), file},
			Splitext: SplitExt(path),
			Join:     filepath.Join("folder", "subfolder", "file.txt"),
		},
		SystemInfo: SystemInfo{
			Platform:          runtime.GOOS,
			Arch:              runtime.GOARCH,
			GoVersion:         runtime.Version(),
			PathSeparator:     string(os.PathListSeparator),
			LineSeparatorRepr: strconv.Quote(lineSep),
		},
		ProcessInfo: ProcessInfo{PID: os.Getpid(), CPUCount: runtime.NumCPU()},
	}, nil
}
