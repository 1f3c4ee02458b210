package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/mmcdole/vocab/internal/speech"
	"github.com/mmcdole/vocab/internal/tui/components"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateAlert
)

// Page identifies one of the top-level tabs
type Page int

const (
	PageWords Page = iota
	PageGroups
	PageRandom
	PageTones
	PageAdd
	pageCount
)

var pageTitles = [pageCount]string{"All Words", "Groups", "Random", "Tones", "Add Words"}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return "unknown"
	}
	return pageTitles[p]
}

// Layout: tab bar, blank line, single footer line
const ChromeHeight = 3

const tickInterval = 100 * time.Millisecond

// Options configures the model
type Options struct {
	PageSize      int
	SearchMode    search.Mode
	ShowDetails   bool
	UploadTimeout time.Duration
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Svc      *vocabulary.Service
	Narrator *speech.Narrator
	opts     Options

	// Pages load the first time they are opened
	Page    Page
	mounted [pageCount]bool

	// UI Components
	Words  *components.WordList
	Groups *components.GroupList
	Random *components.WordList
	Tones  *components.WordList
	Upload *components.UploadForm

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
	Alert        string

	uploadCancel context.CancelFunc
}

// NewModel creates a new application model
func NewModel(svc *vocabulary.Service, narrator *speech.Narrator, opts Options) Model {
	if opts.PageSize < 1 {
		opts.PageSize = 50
	}
	if opts.UploadTimeout <= 0 {
		opts.UploadTimeout = 10 * time.Minute
	}

	m := Model{
		State:    StateBrowsing,
		Svc:      svc,
		Narrator: narrator,
		opts:     opts,
		Page:     PageWords,
		Words:    components.NewWordList(components.WordListAll, opts.SearchMode, opts.ShowDetails),
		Groups:   components.NewGroupList(),
		Random:   components.NewWordList(components.WordListRandom, opts.SearchMode, opts.ShowDetails),
		Tones:    components.NewWordList(components.WordListTones, opts.SearchMode, opts.ShowDetails),
		Upload:   components.NewUploadForm(),
	}
	m.mounted[PageWords] = true
	m.Words.SetLoading(true)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadWordsCmd(m.Svc, 1, m.opts.PageSize),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.Words.SetSpinnerFrame(m.SpinnerFrame)
		m.Groups.SetSpinnerFrame(m.SpinnerFrame)
		m.Random.SetSpinnerFrame(m.SpinnerFrame)
		m.Tones.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case WordsLoadedMsg:
		if msg.Append {
			m.Words.AppendPage(msg.Page)
		} else {
			m.Words.SetPage(msg.Page)
		}
		return m, nil

	case GroupsLoadedMsg:
		m.Groups.SetGroups(msg.Groups, msg.FromCache)
		return m, nil

	case RandomLoadedMsg:
		m.Random.SetEntries(msg.Entries)
		return m, nil

	case TonesLoadedMsg:
		m.Tones.SetEntries(msg.Entries)
		return m, nil

	case WordDeletedMsg:
		m.Words.Remove(msg.Word)
		m.StatusMsg = fmt.Sprintf("Deleted %q", msg.Word)
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case UploadProgressMsg:
		m.Upload.SetProgress(msg.Progress)
		return m, msg.NextCmd

	case UploadDoneMsg:
		if m.uploadCancel != nil {
			m.uploadCancel()
			m.uploadCancel = nil
		}
		if msg.Err != nil {
			slog.Error("bulk upload failed", "error", msg.Err)
			m.Upload.Fail(vocabulary.FailureMessage(msg.Err))
			return m, nil
		}
		m.Upload.Succeed(vocabulary.SuccessMessage(msg.Result))
		return m, nil

	case SpeechDoneMsg:
		// The narrator knows whether a newer utterance took over
		m.setSpeaking(m.Narrator.Speaking())
		if msg.Err != nil {
			m.StatusMsg = speech.AlertMessage(msg.Err)
			m.StatusIsErr = true
			return m, ClearStatusCmd(5 * time.Second)
		}
		return m, nil

	case ErrMsg:
		slog.Error("request failed", "context", msg.Context, "error", msg.Err)
		m.clearLoading(msg.Page)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Editor cursor blink and other component messages
	if m.Page == PageAdd {
		return m, m.Upload.Update(msg)
	}
	return m, nil
}

// switchPage shows p, loading it the first time it is opened
func (m *Model) switchPage(p Page) tea.Cmd {
	if p == m.Page && m.mounted[p] {
		return nil
	}
	if m.Page == PageAdd {
		m.Upload.Blur()
	}
	m.Page = p
	return m.mount(p)
}

func (m *Model) mount(p Page) tea.Cmd {
	if m.mounted[p] {
		if p == PageAdd {
			return m.Upload.Focus()
		}
		return nil
	}
	m.mounted[p] = true

	switch p {
	case PageWords:
		m.Words.SetLoading(true)
		return LoadWordsCmd(m.Svc, 1, m.opts.PageSize)
	case PageGroups:
		m.Groups.SetLoading(true)
		return LoadGroupsCmd(m.Svc)
	case PageRandom:
		m.Random.SetLoading(true)
		return LoadRandomCmd(m.Svc)
	case PageTones:
		m.Tones.SetLoading(true)
		return LoadTonesCmd(m.Svc)
	case PageAdd:
		return m.Upload.Focus()
	}
	return nil
}

// Mounted reports whether p has been opened
func (m Model) Mounted(p Page) bool { return m.mounted[p] }

func (m *Model) clearLoading(p Page) {
	switch p {
	case PageWords:
		m.Words.SetLoading(false)
		m.Words.SetLoadingMore(false)
	case PageGroups:
		m.Groups.SetLoading(false)
	case PageRandom:
		m.Random.SetLoading(false)
	case PageTones:
		m.Tones.SetLoading(false)
	}
}

// activeList returns the word list on the current page, if any
func (m Model) activeList() *components.WordList {
	switch m.Page {
	case PageWords:
		return m.Words
	case PageRandom:
		return m.Random
	case PageTones:
		return m.Tones
	}
	return nil
}

// loading reports whether the current page waits on the network
func (m Model) loading() bool {
	switch m.Page {
	case PageGroups:
		return m.Groups.IsLoading()
	case PageAdd:
		return m.Upload.IsUploading()
	}
	if l := m.activeList(); l != nil {
		return l.IsLoading() || l.IsLoadingMore()
	}
	return false
}

// speak pronounces word, interrupting whatever is playing
func (m *Model) speak(word string) tea.Cmd {
	done, err := m.Narrator.Speak(word)
	if err != nil {
		if errors.Is(err, speech.ErrAlreadySpeaking) {
			return nil
		}
		slog.Warn("speech unavailable", "error", err)
		m.Alert = speech.AlertMessage(err)
		m.State = StateAlert
		return nil
	}
	m.setSpeaking(word)
	return WaitForSpeechCmd(word, done)
}

func (m *Model) setSpeaking(word string) {
	m.Words.SetSpeaking(word)
	m.Groups.SetSpeaking(word)
	m.Random.SetSpeaking(word)
	m.Tones.SetSpeaking(word)
}

// submitUpload validates the editor text and starts the upload loop
func (m *Model) submitUpload() tea.Cmd {
	if m.Upload.IsUploading() {
		return nil
	}
	words, err := vocabulary.ParseUploadInput(m.Upload.Value())
	if err != nil {
		m.Upload.Fail(vocabulary.FailureMessage(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.opts.UploadTimeout)
	m.uploadCancel = cancel
	m.Upload.Start()
	m.Upload.SetProgress(domain.UploadProgress{Total: len(words)})
	return UploadCmd(ctx, m.Svc, words)
}

// cancelUpload stops a running upload; the loop reports the cancellation
func (m *Model) cancelUpload() {
	if m.uploadCancel != nil {
		m.uploadCancel()
	}
}

func (m *Model) updateLayout() {
	width := m.Width - 4 // page padding
	height := m.Height - ChromeHeight
	if width < 20 {
		width = 20
	}
	if height < 1 {
		height = 1
	}

	m.Words.SetSize(width, height)
	m.Groups.SetSize(width, height)
	m.Random.SetSize(width, height)
	m.Tones.SetSize(width, height)
	m.Upload.SetSize(width, height)
}
