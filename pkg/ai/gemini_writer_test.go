package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDraftPrompt(t *testing.T) {
	t.Run("known language", func(t *testing.T) {
		prompt := BuildDraftPrompt("house renovation costs", "en")
		assert.Contains(t, prompt, "in English")
		assert.Contains(t, prompt, "house renovation costs")
		assert.Contains(t, prompt, `"excerpt"`)
	})

	t.Run("unknown language falls back to russian", func(t *testing.T) {
		prompt := BuildDraftPrompt("тема", "de")
		assert.Contains(t, prompt, "in Russian")
	})
}
