// Package script parses firing scripts for the simulator.
//
// A script is a YAML document listing the interrupts to fire in order:
//
//	name: startup
//	steps:
//	  - irq: USART1
//	  - irq: ADC2
//	    repeat: 3
package script

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Script is a named sequence of interrupt firings.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step fires one interrupt, Repeat times. A zero Repeat fires once.
type Step struct {
	Irq    string `yaml:"irq"`
	Repeat int    `yaml:"repeat"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, step := range s.Steps {
		if step.Irq == "" {
			return fmt.Errorf("step %d: missing irq", i+1)
		}
		if step.Repeat < 0 {
			return fmt.Errorf("step %d: negative repeat %d", i+1, step.Repeat)
		}
	}
	return nil
}

// Sequence returns the interrupt names of all steps with repeats expanded.
func (s *Script) Sequence() []string {
	var names []string
	for _, step := range s.Steps {
		count := max(step.Repeat, 1)
		for range count {
			names = append(names, step.Irq)
		}
	}
	return names
}

// Resolve maps the expanded sequence to interrupts using the lookup function.
func Resolve[ID any](s *Script, lookup func(name string) (ID, error)) ([]ID, error) {
	names := s.Sequence()
	ids := make([]ID, 0, len(names))
	for _, name := range names {
		id, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("resolving script '%s': %w", s.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
