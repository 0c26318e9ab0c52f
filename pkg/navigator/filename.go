package navigator

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/types"
)

// File name prompt text
const (
	FileNamePrompt      = "File name with extension"
	FileNamePlaceholder = "Component.vue"
)

// FileName is the outcome of AskFileName. Name is only meaningful when
// Cancelled is false.
type FileName struct {
	Name      string
	Cancelled bool
}

// AskFileName asks for the name of the file to create in dir. A dismissed
// prompt or a blank answer is reported as cancelled. Any other answer is
// used as typed.
func AskFileName(prompter types.Prompter, dir string) (FileName, error) {
	value, ok, err := prompter.Input(fmt.Sprintf("%s in %s (Ctrl+C to go back)", FileNamePrompt, dir), FileNamePlaceholder)
	if err != nil {
		return FileName{}, err
	}
	if !ok || strings.TrimSpace(value) == "" {
		return FileName{Cancelled: true}, nil
	}
	return FileName{Name: value}, nil
}
