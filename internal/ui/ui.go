// Package ui implements the terminal shell: home, setup flow, admin
// screens, the game loop and the results screen. All game state lives in
// the session; the UI renders snapshots and translates keys to actions.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/mimica-master/internal/apperrors"
	"github.com/palemoky/mimica-master/internal/config"
	"github.com/palemoky/mimica-master/internal/game/deck"
	"github.com/palemoky/mimica-master/internal/game/session"
	"github.com/palemoky/mimica-master/internal/game/team"
	"github.com/palemoky/mimica-master/internal/sound"
	"github.com/palemoky/mimica-master/internal/store"
)

// criticalSeconds is when the countdown switches to the alarm style and
// tick sounds start.
const criticalSeconds = 10

type screen int

const (
	screenHome screen = iota
	screenAdminPin
	screenAdminCategories
	screenAdminCards
	screenSetupCategory
	screenSetupPlayers
	screenSetupTeams
	screenSetupActors
	screenGame
	screenResults
)

// --- Tea messages ---

// categoriesMsg delivers the content store listing.
type categoriesMsg []deck.Category

// contentErrMsg reports a failed content fetch.
type contentErrMsg struct{ err error }

// tickMsg drives the turn countdown, one per second.
type tickMsg time.Time

// Model is the bubbletea model for the whole application.
type Model struct {
	cfg    *config.Config
	store  store.ContentStore
	sounds *sound.Manager

	screen   screen
	width    int
	height   int
	darkMode bool
	styles   Styles
	errText  string

	input textinput.Model

	// Setup state
	categories  []deck.Category
	catCursor   int
	category    deck.Category
	players     []team.Player
	teams       []*team.Team
	teamCursor  int
	renaming    bool
	actorsCount int

	// Admin state
	adminNewCategory bool
	adminNewCard     bool
	adminCatIdx      int
	adminCardIdx     int

	// Game state
	sess       *session.Session
	confirmEnd bool
}

// New builds the application model.
func New(cfg *config.Config, st store.ContentStore, sounds *sound.Manager) *Model {
	input := textinput.New()
	input.CharLimit = 40

	palette := lightPalette
	if cfg.UI.DarkMode {
		palette = darkPalette
	}

	return &Model{
		cfg:         cfg,
		store:       st,
		sounds:      sounds,
		screen:      screenHome,
		darkMode:    cfg.UI.DarkMode,
		styles:      newStyles(palette),
		input:       input,
		actorsCount: 1,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case categoriesMsg:
		m.categories = msg
		if len(m.categories) == 0 {
			m.errText = apperrors.ErrNoCategories.Message
			return m, nil
		}
		m.catCursor = 0
		if m.screen == screenHome {
			m.screen = screenSetupCategory
		}
		return m, nil

	case contentErrMsg:
		m.errText = apperrors.ErrContentUnavailable.Message
		return m, nil

	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		// Global keys first
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		}
		m.errText = ""
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) View() string {
	switch m.screen {
	case screenHome:
		return m.viewHome()
	case screenAdminPin, screenAdminCategories, screenAdminCards:
		return m.viewAdmin()
	case screenSetupCategory, screenSetupPlayers, screenSetupTeams, screenSetupActors:
		return m.viewSetup()
	case screenGame:
		return m.viewGame()
	case screenResults:
		return m.viewResults()
	}
	return ""
}

// handleKey routes a key press to the active screen.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		return m.updateHome(msg)
	case screenAdminPin, screenAdminCategories, screenAdminCards:
		return m.updateAdmin(msg)
	case screenSetupCategory, screenSetupPlayers, screenSetupTeams, screenSetupActors:
		return m.updateSetup(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	}
	return m, nil
}

// handleTick feeds one second into the session clock. The tick chain
// stops itself once the clock does; sound cues come from the tick hook.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sess == nil || !m.sess.CountdownRunning() {
		return m, nil
	}

	m.sess.Tick()
	if m.sess.CountdownRunning() {
		return m, tickCmd()
	}
	return m, nil
}

// tickSound plays the countdown cues: a tick during the critical final
// seconds, the buzzer when time runs out.
func (m *Model) tickSound(remaining int) {
	switch {
	case remaining == 0:
		m.sounds.Play(sound.Buzzer)
	case remaining <= criticalSeconds:
		m.sounds.Play(sound.Tick)
	}
}

func (m *Model) toggleTheme() {
	m.darkMode = !m.darkMode
	if m.darkMode {
		m.styles = newStyles(darkPalette)
	} else {
		m.styles = newStyles(lightPalette)
	}
}

// tickCmd schedules the next countdown second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCategoriesCmd fetches the category list off the update loop.
func (m *Model) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cats, err := m.store.ListCategories(ctx)
		if err != nil {
			return contentErrMsg{err: err}
		}
		return categoriesMsg(cats)
	}
}

// resetToHome discards all session and setup state.
func (m *Model) resetToHome() {
	m.sess = nil
	m.teams = nil
	m.players = nil
	m.category = deck.Category{}
	m.actorsCount = 1
	m.confirmEnd = false
	m.renaming = false
	m.input.Reset()
	m.input.Blur()
	m.screen = screenHome
}
