package prompt

import (
	"testing"

	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDisplayLabels(t *testing.T) {
	labels := DisplayLabels([]types.Option{
		{Label: "✅ Use this folder", Description: "/work/src"},
		{Label: "📁 New folder"},
	})

	assert.Equal(t, []string{"✅ Use this folder  (/work/src)", "📁 New folder"}, labels)
}

func TestIndexOf(t *testing.T) {
	labels := []string{"a", "b", "a"}

	assert.Equal(t, 0, IndexOf(labels, "a"), "first match wins")
	assert.Equal(t, 1, IndexOf(labels, "b"))
	assert.Equal(t, -1, IndexOf(labels, "c"))
}

func TestPromptText(t *testing.T) {
	assert.Equal(t, "New folder name", PromptText("New folder name", ""))
	assert.Equal(t, "File name, e.g. Component.vue", PromptText("File name", "Component.vue"))
}
