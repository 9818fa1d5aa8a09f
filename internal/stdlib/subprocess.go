package stdlib

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

type CommandResult struct {
	Stdout     string `json:"stdout" yaml:"stdout"`
	ReturnCode int    `json:"returncode" yaml:"returncode"`
}

type SubprocessResult struct {
	Echo             CommandResult `json:"echo" yaml:"echo"`
	ShellCommand     string        `json:"shell_command,omitempty" yaml:"shell_command,omitempty"`
	GoVersion        string        `json:"go_version" yaml:"go_version"`
	DirectoryListing []string      `json:"directory_listing" yaml:"directory_listing"`
}

// Run executes name with args and returns trimmed stdout and the exit code.
// A non-zero exit is not an error; failing to start the command is.
func Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return CommandResult{}, err
	}
	out := strings.TrimSpace(stdout.String())
	if out == "" {
		out = strings.TrimSpace(stderr.String())
	}
	return CommandResult{Stdout: out, ReturnCode: cmd.ProcessState.ExitCode()}, nil
}

func shell(ctx context.Context, script string) (CommandResult, error) {
	if runtime.GOOS == "windows" {
		return Run(ctx, "cmd", "/C", script)
	}
	return Run(ctx, "sh", "-c", script)
}

func Subprocess(ctx context.Context) (SubprocessResult, error) {
	var r SubprocessResult
	var err error

	if r.Echo, err = shell(ctx, "echo Hello from subprocess"); err != nil {
		return r, err
	}

	if runtime.GOOS != "windows" {
		home, err := shell(ctx, "echo $HOME")
		if err != nil {
			return r, err
		}
		r.ShellCommand = home.Stdout
	}

	goVersion, err := Run(ctx, "go", "version")
	if err != nil {
		r.GoVersion = "unavailable: " + err.Error()
	} else {
		r.GoVersion = goVersion.Stdout
	}

	listCmd := "ls"
	if runtime.GOOS == "windows" {
		listCmd = "dir"
	}
	ls, err := shell(ctx, listCmd)
	if err != nil {
		return r, err
	}
	lines := strings.Split(ls.Stdout, "\n")
	r.DirectoryListing = lines[:min(3, len(lines))]

	return r, nil
}
