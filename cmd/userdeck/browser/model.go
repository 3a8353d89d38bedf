// Package browser implements the interactive profile browser: a count field,
// a fetch action and a scrollable list of removable profile cards.
package browser

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"userdeck/cmd/userdeck/ui"
	"userdeck/internal/deck"
	"userdeck/internal/launcher"
	"userdeck/internal/logging"
	"userdeck/internal/randomuser"
)

// countCharLimit keeps any accepted input within int64 range.
const countCharLimit = 18

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options configures a Model.
type Options struct {
	Fetcher randomuser.Fetcher
	Opener  launcher.Opener
	Logger  *zap.Logger
	Styles  ui.Styles

	// Context bounds every fetch; cancelling it abandons requests in flight.
	Context context.Context

	// MaxCardWidth caps card width; zero means the terminal width.
	MaxCardWidth int
	ShowAvatar   bool

	// HelpStyle is the glamour style for the help panel. Empty follows the
	// theme.
	HelpStyle string
}

// Model is the bubbletea model for the profile browser.
type Model struct {
	deck     *deck.Deck
	fetcher  randomuser.Fetcher
	opener   launcher.Opener
	fetchLog *zap.Logger
	uiLog    *zap.Logger
	openLog  *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	input    textinput.Model
	list     viewport.Model
	help     help.Model
	keys     keyMap
	styles   ui.Styles
	focus    focusArea
	selected int

	maxCardWidth int
	showAvatar   bool

	showHelp     bool
	helpStyle    string
	helpRendered string

	// cardOffsets[i] is the first content line of card i in the list.
	cardOffsets []int
	cardHeights []int

	fetchSeq *int
	width    int
	height   int
}

// New creates a browser. Nothing is fetched until Init runs.
func New(opts Options) Model {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	opener := opts.Opener
	if opener == nil {
		opener = launcher.NewSystem(logging.Get(opts.Logger, logging.CategoryLaunch))
	}

	d := deck.New()

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = strconv.Itoa(deck.DefaultRequestedCount)
	input.CharLimit = countCharLimit
	input.Width = countCharLimit + 1
	input.SetValue(strconv.Itoa(d.RequestedCount()))
	input.Focus()

	helpStyle := opts.HelpStyle
	if helpStyle == "" {
		helpStyle = opts.Styles.Theme.GlamourStyle()
	}

	m := Model{
		deck:         d,
		fetcher:      opts.Fetcher,
		opener:       opener,
		fetchLog:     logging.Get(opts.Logger, logging.CategoryFetch),
		uiLog:        logging.Get(opts.Logger, logging.CategoryUI),
		openLog:      logging.Get(opts.Logger, logging.CategoryLaunch),
		ctx:          ctx,
		cancel:       cancel,
		input:        input,
		list:         viewport.New(80, 20),
		help:         help.New(),
		keys:         defaultKeyMap(),
		styles:       opts.Styles,
		focus:        focusInput,
		maxCardWidth: opts.MaxCardWidth,
		showAvatar:   opts.ShowAvatar,
		helpStyle:    helpStyle,
		fetchSeq:     new(int),
		width:        80,
		height:       24,
	}
	m.keys.setFocus(m.focus)
	m.refreshList()
	return m
}

// Init starts the cursor blinking and issues the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchProfiles())
}

// Profiles returns a copy of the accumulated profiles.
func (m Model) Profiles() []randomuser.Profile {
	return m.deck.Profiles()
}

// RequestedCount returns the count the next fetch will ask for.
func (m Model) RequestedCount() int {
	return m.deck.RequestedCount()
}

// Selected returns the index of the selected card, or -1 when the list is
// empty.
func (m Model) Selected() int {
	if m.deck.Len() == 0 {
		return -1
	}
	return m.selected
}

// Close abandons fetches still in flight.
func (m Model) Close() {
	m.cancel()
}

// SetSize updates the layout for a terminal of w x h cells.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = max(w-2, 0) // footer padding
	m.list.Width = w
	m.list.Height = max(h-chromeHeight, 1)
	m.helpRendered = ""
	m.refreshList()
	if m.showHelp {
		m.renderHelp()
	}
}
