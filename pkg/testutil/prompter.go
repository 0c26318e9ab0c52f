package testutil

import (
	"fmt"

	"github.com/arthur-debert/easyfile/pkg/types"
)

type stepKind int

const (
	stepChoose stepKind = iota
	stepChooseIndex
	stepType
	stepCancel
)

// Step is one scripted answer
type Step struct {
	kind  stepKind
	label string
	index int
	value string
}

// Choose answers a Select with the first option whose label equals label
func Choose(label string) Step {
	return Step{kind: stepChoose, label: label}
}

// ChooseIndex answers a Select with the option at index
func ChooseIndex(index int) Step {
	return Step{kind: stepChooseIndex, index: index}
}

// Type answers an Input with value
func Type(value string) Step {
	return Step{kind: stepType, value: value}
}

// Cancel dismisses whichever prompt comes next
func Cancel() Step {
	return Step{kind: stepCancel}
}

// ScriptedPrompter implements types.Prompter by replaying steps in order.
// Every menu and input prompt it receives is recorded for assertions.
type ScriptedPrompter struct {
	steps []Step
	next  int

	// Menus holds the options of every Select call, in call order
	Menus [][]types.Option
	// Titles holds the title of every Select call
	Titles []string
	// Inputs holds the prompt of every Input call
	Inputs []string
}

// NewScriptedPrompter creates a prompter that answers with steps
func NewScriptedPrompter(steps ...Step) *ScriptedPrompter {
	return &ScriptedPrompter{steps: steps}
}

// Remaining returns how many steps have not been consumed
func (p *ScriptedPrompter) Remaining() int {
	return len(p.steps) - p.next
}

func (p *ScriptedPrompter) pop() (Step, error) {
	if p.next >= len(p.steps) {
		return Step{}, fmt.Errorf("prompter script exhausted after %d steps", len(p.steps))
	}
	step := p.steps[p.next]
	p.next++
	return step, nil
}

// Select implements types.Prompter
func (p *ScriptedPrompter) Select(title string, options []types.Option) (int, bool, error) {
	p.Titles = append(p.Titles, title)
	p.Menus = append(p.Menus, append([]types.Option(nil), options...))

	step, err := p.pop()
	if err != nil {
		return 0, false, err
	}

	switch step.kind {
	case stepCancel:
		return 0, false, nil
	case stepChooseIndex:
		if step.index < 0 || step.index >= len(options) {
			return 0, false, fmt.Errorf("scripted index %d out of range (%d options)", step.index, len(options))
		}
		return step.index, true, nil
	case stepChoose:
		for i, opt := range options {
			if opt.Label == step.label {
				return i, true, nil
			}
		}
		return 0, false, fmt.Errorf("no option labelled %q in %q", step.label, title)
	default:
		return 0, false, fmt.Errorf("step %d is an input answer but Select was called", p.next-1)
	}
}

// Input implements types.Prompter
func (p *ScriptedPrompter) Input(prompt, placeholder string) (string, bool, error) {
	p.Inputs = append(p.Inputs, prompt)

	step, err := p.pop()
	if err != nil {
		return "", false, err
	}

	switch step.kind {
	case stepCancel:
		return "", false, nil
	case stepType:
		return step.value, true, nil
	default:
		return "", false, fmt.Errorf("step %d is a menu answer but Input was called", p.next-1)
	}
}
