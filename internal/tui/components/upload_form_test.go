package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/vocabulary"
	"github.com/stretchr/testify/assert"
)

func TestUploadForm_ProgressAndSuccess(t *testing.T) {
	f := NewUploadForm()
	f.SetSize(80, 40)
	f.SetValue(`[{"word":"a"}]`)

	f.Start()
	assert.True(t, f.IsUploading())
	f.SetProgress(domain.UploadProgress{Current: 50, Total: 120})
	assert.Contains(t, f.View(), "Uploading words... 50 / 120")

	f.Succeed("Successfully added 120 words!")
	assert.False(t, f.IsUploading())
	assert.Empty(t, f.Value())
	msg, isErr := f.Status()
	assert.Equal(t, "Successfully added 120 words!", msg)
	assert.False(t, isErr)
	assert.Contains(t, f.View(), "Successfully added 120 words!")
}

func TestUploadForm_FailureKeepsInput(t *testing.T) {
	f := NewUploadForm()
	f.SetSize(80, 40)
	f.SetValue(`{"word":"a"}`)

	f.Start()
	f.Fail("Input must be an array")

	assert.Equal(t, `{"word":"a"}`, f.Value())
	msg, isErr := f.Status()
	assert.Equal(t, "Input must be an array", msg)
	assert.True(t, isErr)
}

func TestUploadForm_Keys(t *testing.T) {
	f := NewUploadForm()
	f.SetSize(80, 40)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	assert.Equal(t, vocabulary.ExampleInput, f.Value())

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, f.Value())

	typeText(f, "[]")
	assert.Equal(t, "[]", f.Value())

	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.Focused())

	// Typing is ignored while blurred
	typeText(f, "x")
	assert.Equal(t, "[]", f.Value())

	f.Update(keyMsg("i"))
	assert.True(t, f.Focused())
}

func TestUploadForm_ShowsExample(t *testing.T) {
	f := NewUploadForm()
	f.SetSize(80, 40)
	view := f.View()
	assert.Contains(t, view, "Add multiple words to your vocabulary in JSON format")
	assert.Contains(t, view, "eloquent")
	assert.Contains(t, view, "ephemeral")
}
