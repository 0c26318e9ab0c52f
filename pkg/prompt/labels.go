package prompt

import (
	"fmt"

	"github.com/arthur-debert/easyfile/pkg/types"
)

// DisplayLabels renders options as single menu lines
func DisplayLabels(options []types.Option) []string {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = DisplayLabel(opt)
	}
	return labels
}

// DisplayLabel renders one option, appending its description when present
func DisplayLabel(opt types.Option) string {
	if opt.Description == "" {
		return opt.Label
	}
	return fmt.Sprintf("%s  (%s)", opt.Label, opt.Description)
}

// IndexOf returns the first index of label in labels, or -1
func IndexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}

// PromptText appends a placeholder hint to a prompt
func PromptText(prompt, placeholder string) string {
	if placeholder == "" {
		return prompt
	}
	return fmt.Sprintf("%s, e.g. %s", prompt, placeholder)
}
