// Package prompt implements types.Prompter on top of pterm's interactive
// printers. Ctrl+C dismisses a prompt; that is reported as ok=false rather
// than terminating the process.
package prompt

import (
	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// DefaultMaxHeight is the number of menu rows shown at once
const DefaultMaxHeight = 15

// PtermPrompter asks questions in the terminal using pterm
type PtermPrompter struct {
	logger    zerolog.Logger
	maxHeight int
}

// NewPterm creates a prompter rendering DefaultMaxHeight rows per menu
func NewPterm() *PtermPrompter {
	return &PtermPrompter{
		logger:    logging.GetLogger("prompt"),
		maxHeight: DefaultMaxHeight,
	}
}

// Select shows options and returns the index of the first option whose
// display text matches the selection.
func (p *PtermPrompter) Select(title string, options []types.Option) (int, bool, error) {
	if len(options) == 0 {
		return 0, false, errors.New(errors.ErrPrompt, "nothing to select from")
	}

	labels := DisplayLabels(options)
	interrupted := false

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithDefaultText(title).
		WithMaxHeight(p.maxHeight).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return 0, false, errors.Wrap(err, errors.ErrPrompt, "selection prompt failed")
	}
	if interrupted {
		p.logger.Debug().Str("title", title).Msg("Selection dismissed")
		return 0, false, nil
	}

	index := IndexOf(labels, selected)
	if index < 0 {
		return 0, false, nil
	}
	return index, true, nil
}

// Input asks for one line of text. The placeholder is shown as a hint in
// the prompt, not pre-filled.
func (p *PtermPrompter) Input(prompt, placeholder string) (string, bool, error) {
	interrupted := false

	value, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(PromptText(prompt, placeholder)).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrPrompt, "text prompt failed")
	}
	if interrupted {
		p.logger.Debug().Str("prompt", prompt).Msg("Input dismissed")
		return "", false, nil
	}
	return value, true, nil
}
