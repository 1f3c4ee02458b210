package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/tui/styles"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

// Lines taken by everything on the page except the editor
const uploadFormChromeLines = 8

// UploadForm is the Add page: a JSON editor, a progress bar and a status line
type UploadForm struct {
	editor textarea.Model
	bar    progress.Model

	uploading bool
	progress  domain.UploadProgress

	status    string
	statusErr bool

	showExample bool

	width  int
	height int
}

// NewUploadForm creates an empty upload form
func NewUploadForm() *UploadForm {
	ta := textarea.New()
	ta.Placeholder = "Paste a JSON array of words..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0

	bar := progress.New(progress.WithSolidFill(string(styles.Indigo)))
	bar.ShowPercentage = false

	return &UploadForm{
		editor:      ta,
		bar:         bar,
		showExample: true,
	}
}

// Value returns the raw editor text
func (f *UploadForm) Value() string { return f.editor.Value() }

func (f *UploadForm) SetValue(s string) { f.editor.SetValue(s) }

func (f *UploadForm) Focus() tea.Cmd { return f.editor.Focus() }
func (f *UploadForm) Blur()          { f.editor.Blur() }
func (f *UploadForm) Focused() bool  { return f.editor.Focused() }

// InsertExample replaces the editor contents with the expected format
func (f *UploadForm) InsertExample() {
	f.editor.SetValue(vocabulary.ExampleInput)
}

// Start switches the form into the uploading state
func (f *UploadForm) Start() {
	f.uploading = true
	f.progress = domain.UploadProgress{}
	f.status = ""
	f.statusErr = false
}

func (f *UploadForm) IsUploading() bool { return f.uploading }

// SetProgress records the latest server-reported progress
func (f *UploadForm) SetProgress(p domain.UploadProgress) {
	f.progress = p
}

func (f *UploadForm) Progress() domain.UploadProgress { return f.progress }

// Succeed ends the upload, shows the message and clears the editor
func (f *UploadForm) Succeed(message string) {
	f.uploading = false
	f.status = message
	f.statusErr = false
	f.editor.Reset()
}

// Fail ends the upload and shows the error; the editor keeps its text
func (f *UploadForm) Fail(message string) {
	f.uploading = false
	f.status = message
	f.statusErr = true
}

// Status returns the last status message and whether it is an error
func (f *UploadForm) Status() (string, bool) { return f.status, f.statusErr }

func (f *UploadForm) ClearStatus() {
	f.status = ""
	f.statusErr = false
}

// Update routes keys to the editor. Submit is left to the caller.
func (f *UploadForm) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, UploadFormKeys.Example):
			if !f.uploading {
				f.InsertExample()
			}
			return nil
		case key.Matches(km, UploadFormKeys.Clear):
			if !f.uploading {
				f.editor.Reset()
				f.ClearStatus()
			}
			return nil
		case f.editor.Focused() && key.Matches(km, UploadFormKeys.Blur):
			f.editor.Blur()
			return nil
		case !f.editor.Focused() && key.Matches(km, UploadFormKeys.Focus):
			return f.editor.Focus()
		}
	}

	if f.uploading || !f.editor.Focused() {
		return nil
	}

	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(msg)
	return cmd
}

func (f *UploadForm) SetSize(width, height int) {
	f.width = width
	f.height = height

	f.editor.SetWidth(max(20, width))
	editorHeight := height - uploadFormChromeLines
	if f.showExample {
		editorHeight -= exampleLines()
	}
	f.editor.SetHeight(max(3, editorHeight))
	f.bar.Width = max(10, min(width, 60))
}

func exampleLines() int {
	// Example body plus its label
	return strings.Count(vocabulary.ExampleInput, "\n") + 2
}

func (f *UploadForm) View() string {
	lines := []string{
		styles.TitleStyle.Render("Add Words"),
		styles.SubtitleStyle.Render("Add multiple words to your vocabulary in JSON format"),
		"",
		f.editor.View(),
		"",
		f.renderStatus(),
		f.renderHints(),
	}

	if f.showExample {
		lines = append(lines, "", styles.DimStyle.Render("Expected format:"))
		for _, l := range strings.Split(vocabulary.ExampleInput, "\n") {
			lines = append(lines, styles.DimStyle.Render(l))
		}
	}

	return strings.Join(lines, "\n")
}

func (f *UploadForm) renderStatus() string {
	if f.uploading {
		return f.bar.ViewAs(f.progress.Percent()) + " " +
			styles.DimStyle.Render(fmt.Sprintf("Uploading words... %d / %d", f.progress.Current, f.progress.Total))
	}
	if f.status == "" {
		return ""
	}
	if f.statusErr {
		return styles.ErrorStyle.Render(f.status)
	}
	return styles.SuccessStyle.Render(f.status)
}

func (f *UploadForm) renderHints() string {
	if f.uploading {
		return ""
	}
	if !f.editor.Focused() {
		return styles.HelpHint("i", "edit", "C-s", "add words", "C-e", "insert example")
	}
	return styles.HelpHint("C-s", "add words", "C-e", "insert example", "C-l", "clear", "esc", "leave editor")
}
