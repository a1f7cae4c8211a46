package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/mimica-master/internal/apperrors"
	"github.com/palemoky/mimica-master/internal/game/session"
	"github.com/palemoky/mimica-master/internal/game/team"
)

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenSetupCategory:
		return m.updateSetupCategory(msg)
	case screenSetupPlayers:
		return m.updateSetupPlayers(msg)
	case screenSetupTeams:
		return m.updateSetupTeams(msg)
	case screenSetupActors:
		return m.updateSetupActors(msg)
	}
	return m, nil
}

// --- Step 1: pick a category ---

func (m *Model) updateSetupCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
	case "enter":
		cat := m.categories[m.catCursor]
		// An empty category can never feed a session
		if len(cat.Cards) == 0 {
			m.errText = apperrors.ErrEmptyCategory.Message
			return m, nil
		}
		m.category = cat
		m.players = nil
		m.screen = screenSetupPlayers
		m.input.Reset()
		m.input.EchoMode = textinput.EchoNormal
		m.input.Placeholder = "player name"
		m.input.Focus()
	case "esc":
		m.resetToHome()
	}
	return m, nil
}

// --- Step 2: enter the roster ---

func (m *Model) updateSetupPlayers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name != "" {
			m.players = append(m.players, team.NewPlayer(name))
			m.input.Reset()
			return m, nil
		}
		// Empty entry continues, once the roster is big enough
		if len(m.players) < 2 {
			m.errText = apperrors.ErrTooFewPlayers.Message
			return m, nil
		}
		m.teams = nil
		m.screen = screenSetupTeams
		m.input.Blur()
		return m, nil
	case "ctrl+k":
		// Drop the last roster entry
		if len(m.players) > 0 {
			m.players = m.players[:len(m.players)-1]
		}
		return m, nil
	case "esc":
		m.screen = screenSetupCategory
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// --- Step 3: form (and rename) teams ---

func (m *Model) updateSetupTeams(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.renaming {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				m.teams[m.teamCursor].Rename(name)
			}
			m.renaming = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.renaming = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	key := msg.String()
	switch key {
	case "up", "k":
		if m.teamCursor > 0 {
			m.teamCursor--
		}
	case "down", "j":
		if len(m.teams) > 0 && m.teamCursor < len(m.teams)-1 {
			m.teamCursor++
		}
	case "r":
		if len(m.teams) > 0 {
			m.renaming = true
			m.input.Reset()
			m.input.Placeholder = m.teams[m.teamCursor].Name
			m.input.Focus()
		}
	case "enter":
		if len(m.teams) == 0 {
			return m, nil
		}
		m.actorsCount = 1
		m.screen = screenSetupActors
	case "esc":
		m.screen = screenSetupPlayers
		m.input.Reset()
		m.input.Placeholder = "player name"
		m.input.Focus()
	default:
		// Digit keys choose the team count; choices above the roster
		// size are not offered, so every team gets at least one player.
		if n, err := strconv.Atoi(key); err == nil && n >= 2 && n <= len(m.players) && n <= 9 {
			m.teams = team.FormTeams(m.players, n)
			m.teamCursor = 0
		}
	}
	return m, nil
}

// --- Step 4: actors per turn, then start ---

func (m *Model) updateSetupActors(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxActors := min(m.cfg.Game.MaxActors, team.MaxActorsPerTurn(m.teams))

	switch msg.String() {
	case "1", "2", "3":
		n, _ := strconv.Atoi(msg.String())
		if n <= maxActors {
			m.actorsCount = n
		}
	case "enter":
		sess, err := session.NewSession(m.teams, m.category, m.actorsCount, m.cfg.Game.TurnDuration)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		sess.SetTickHook(m.tickSound)
		m.sess = sess
		m.confirmEnd = false
		m.screen = screenGame
	case "esc":
		m.screen = screenSetupTeams
	}
	return m, nil
}

// --- Views ---

func (m *Model) viewSetup() string {
	switch m.screen {
	case screenSetupCategory:
		return m.viewSetupCategory()
	case screenSetupPlayers:
		return m.viewSetupPlayers()
	case screenSetupTeams:
		return m.viewSetupTeams()
	case screenSetupActors:
		return m.viewSetupActors()
	}
	return ""
}

func (m *Model) viewSetupCategory() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Pick a category"))
	sb.WriteString("\n\n")
	for i, cat := range m.categories {
		cursor := "  "
		line := fmt.Sprintf("%s (%d cards)", cat.Name, len(cat.Cards))
		if i == m.catCursor {
			cursor = "> "
			line = m.styles.Score.Render(line)
		}
		sb.WriteString(cursor + line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("↑/↓ move · enter select · esc home"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewSetupPlayers() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Who is playing?"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("at least 2 players"))
	sb.WriteString("\n\n")
	for i, p := range m.players {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, p.Name))
	}
	sb.WriteString("\n" + m.input.View() + "\n\n")
	sb.WriteString(m.styles.Help.Render("enter add · empty enter continue · ctrl+k remove last · esc back"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewSetupTeams() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Teams"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("press 2-%d to split %d players", min(len(m.players), 9), len(m.players))))
	sb.WriteString("\n\n")

	for i, t := range m.teams {
		names := make([]string, len(t.Players))
		for j, p := range t.Players {
			names[j] = p.Name
		}
		box := m.styles.Box
		if i == m.teamCursor {
			box = m.styles.ActiveBox
		}
		sb.WriteString(box.Render(fmt.Sprintf("%s\n%s", m.styles.Score.Render(t.Name), strings.Join(names, ", "))))
		sb.WriteString("\n")
	}

	if m.renaming {
		sb.WriteString("\nnew name: " + m.input.View() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("digits form teams · r rename · enter continue · esc back"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewSetupActors() string {
	maxActors := min(m.cfg.Game.MaxActors, team.MaxActorsPerTurn(m.teams))

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Actors per turn"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("maximum possible: %d", maxActors)))
	sb.WriteString("\n\n")
	for n := 1; n <= maxActors; n++ {
		marker := "  "
		if n == m.actorsCount {
			marker = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%d actor(s)\n", marker, n))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("1-3 choose · enter start game · esc back"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) appendError(sb *strings.Builder) {
	if m.errText != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Error.Render(m.errText))
	}
}
