package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// Script is a scripted input sequence for headless runs.
//
//	steps:
//	  - from: 0
//	    to: 120
//	    actions: [right]
//	  - from: 60
//	    actions: [jump]
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep holds actions over the inclusive frame range [From, To].
// A zero To means the single frame From.
type ScriptStep struct {
	From    int      `yaml:"from"`
	To      int      `yaml:"to"`
	Actions []string `yaml:"actions"`

	actions []core.Action
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: failed to read %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes a script and resolves its action names.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: failed to parse: %w", err)
	}

	for i := range s.Steps {
		step := &s.Steps[i]
		if step.To == 0 {
			step.To = step.From
		}
		if step.From < 0 || step.To < step.From {
			return nil, fmt.Errorf("script: step %d: bad frame range %d..%d", i, step.From, step.To)
		}
		for _, name := range step.Actions {
			a := core.ParseAction(strings.ToLower(strings.TrimSpace(name)))
			if a == core.ActionNone {
				return nil, fmt.Errorf("script: step %d: unknown action %q", i, name)
			}
			step.actions = append(step.actions, a)
		}
	}
	return &s, nil
}

// Frame returns the input held on the given frame.
func (s *Script) Frame(frame int) core.InputFrame {
	in := core.NewInputFrame()
	if s == nil {
		return in
	}
	for _, step := range s.Steps {
		if frame < step.From || frame > step.To {
			continue
		}
		for _, a := range step.actions {
			in.Set(a)
		}
	}
	return in
}
