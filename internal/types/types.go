package types

import (
	"fmt"
	"strings"
	"time"
)

// Result is the record produced by a single demonstration run.
type Result struct {
	Module  string        `json:"module" yaml:"module"`
	Demo    string        `json:"demo" yaml:"demo"`
	Value   any           `json:"value,omitempty" yaml:"value,omitempty"`
	Err     string        `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Name returns the qualified "module/demo" name.
func (r Result) Name() string {
	return r.Module + "/" + r.Demo
}

func (r Result) Failed() bool {
	return r.Err != ""
}

// State tells the engine whether a demonstration should run.
type State int

const (
	StateOn State = iota
	StateOff
)

func (s State) String() string {
	switch s {
	case StateOn:
		return "on"
	case StateOff:
		return "off"
	default:
		return "unknown"
	}
}

func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "on", "enabled":
		return StateOn, nil
	case "off", "disabled":
		return StateOff, nil
	default:
		return StateOn, fmt.Errorf("invalid demo state: %q", s)
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DemoConfig is the per-demonstration entry of the project file.
type DemoConfig struct {
	State State `yaml:"state" json:"state" mapstructure:"state"`
}
