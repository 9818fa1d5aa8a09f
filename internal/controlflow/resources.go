package controlflow

import (
	"strconv"
	"strings"
)

type ContextManagerResult struct {
	FileOpened    string   `json:"file_opened" yaml:"file_opened"`
	FileClosed    bool     `json:"file_closed" yaml:"file_closed"`
	DataWritten   string   `json:"data_written" yaml:"data_written"`
	MultipleFiles bool     `json:"multiple_files" yaml:"multiple_files"`
	CloseOrder    []string `json:"close_order" yaml:"close_order"`
}

type mockFile struct {
	name   string
	closed bool
	log    *ContextManagerResult
}

func openMock(name string, log *ContextManagerResult) *mockFile {
	if log.FileOpened == "" {
		log.FileOpened = name
	}
	return &mockFile{name: name, log: log}
}

func (f *mockFile) Write(data string) {
	f.log.DataWritten = data
}

func (f *mockFile) Close() error {
	f.closed = true
	f.log.FileClosed = true
	f.log.CloseOrder = append(f.log.CloseOrder, f.name)
	return nil
}

// ContextManagers releases resources with defer. Deferred calls run in
// reverse order of acquisition.
func ContextManagers() ContextManagerResult {
	var r ContextManagerResult

	func() {
		f := openMock("test.txt", &r)
		defer f.Close()
		f.Write("Hello, World!")
	}()

	func() {
		in := openMock("input.txt", &r)
		defer in.Close()
		out := openMock("output.txt", &r)
		defer out.Close()
		r.MultipleFiles = true
	}()

	return r
}

// ProcessCommand dispatches a small command language.
func ProcessCommand(command string) string {
	switch {
	case command == "quit":
		return "Exiting program"
	case command == "help":
		return "Available commands: quit, help, status"
	case strings.HasPrefix(command, "echo "):
		return "Echo: " + command[len("echo "):]
	case strings.HasPrefix(command, "calc "):
		return calc(strings.Fields(command[len("calc "):]))
	default:
		return "Unknown command"
	}
}

func calc(parts []string) string {
	if len(parts) != 3 {
		return "Invalid calculation format"
	}
	a, errA := strconv.ParseFloat(parts[0], 64)
	b, errB := strconv.ParseFloat(parts[2], 64)
	if errA != nil || errB != nil {
		return "Invalid calculation"
	}

	var v float64
	switch parts[1] {
	case "+":
		v = a + b
	case "-":
		v = a - b
	case "*":
		v = a * b
	case "/":
		if b == 0 {
			return "Invalid calculation"
		}
		v = a / b
	default:
		return "Invalid calculation format"
	}
	return "Result: " + FormatFloat(v)
}

// FormatFloat prints integral floats with a trailing ".0".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func MatchStatement() map[string]string {
	commands := []string{
		"quit",
		"help",
		"echo Hello World",
		"calc 10 + 5",
		"calc 20 / 4",
		"unknown",
	}

	out := make(map[string]string, len(commands))
	for _, c := range commands {
		out[c] = ProcessCommand(c)
	}
	return out
}
