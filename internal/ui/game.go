package ui

import (
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/mimica-master/internal/game/session"
	"github.com/palemoky/mimica-master/internal/sound"
)

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.sess.Snapshot()

	if m.confirmEnd {
		switch msg.String() {
		case "y":
			if err := m.sess.EndGame(); err == nil {
				m.confirmEnd = false
				m.screen = screenResults
			}
		case "n", "esc":
			m.confirmEnd = false
		}
		return m, nil
	}

	switch snap.Phase {
	case session.PhaseStandby:
		return m.updateStandby(msg)
	case session.PhaseCardReveal:
		if msg.String() == "enter" {
			_ = m.sess.ProceedToTimer()
		}
	case session.PhaseTimer:
		return m.updateTimer(msg)
	case session.PhaseScoreUpdate:
		if msg.String() == "enter" {
			_ = m.sess.NextTurn()
		}
	}
	return m, nil
}

func (m *Model) updateStandby(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Draw; an exhausted deck ends the session instead
		if err := m.sess.DrawCard(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		if m.sess.Ended() {
			m.screen = screenResults
		}
	case "e":
		m.confirmEnd = true
	}
	return m, nil
}

func (m *Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if err := m.sess.StartCountdown(); err == nil {
			return m, tickCmd()
		}
	case "s":
		if err := m.sess.MarkSuccess(); err == nil {
			m.sounds.Play(sound.Success)
		}
	case "f":
		_ = m.sess.MarkFail()
	}
	return m, nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// Rematch: same roster, fresh scores and deck
		if err := m.sess.ResetForReplay(); err == nil {
			m.screen = screenGame
		}
	case "h", "esc":
		m.resetToHome()
	}
	return m, nil
}

// --- Views ---

func (m *Model) viewGame() string {
	snap := m.sess.Snapshot()

	if m.confirmEnd {
		return m.center(m.styles.Box.Render(
			m.styles.Title.Render("End the game?") + "\n\n" +
				"the game will finish and you will see the results\n\n" +
				m.styles.Help.Render("y end game · n keep playing")))
	}

	switch snap.Phase {
	case session.PhaseStandby:
		return m.viewStandby(snap)
	case session.PhaseCardReveal:
		return m.viewCardReveal(snap)
	case session.PhaseTimer:
		return m.viewTimer(snap)
	case session.PhaseScoreUpdate:
		return m.viewScoreUpdate(snap)
	}
	return ""
}

func (m *Model) scoreboard(snap session.Snapshot) string {
	boxes := make([]string, len(snap.Teams))
	for i, t := range snap.Teams {
		box := m.styles.Box
		if i == snap.CurrentTeamIdx {
			box = m.styles.ActiveBox
		}
		boxes[i] = box.Render(fmt.Sprintf("%s\n%s", t.Name, m.styles.Score.Render(fmt.Sprintf("%d", t.Score))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// searchURL builds a web search link for the card text. Terminals make
// the plain URL clickable on their own.
func searchURL(text string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(text)
}

func actorNames(snap session.Snapshot) string {
	names := make([]string, len(snap.Actors))
	for i, p := range snap.Actors {
		names[i] = p.Name
	}
	return strings.Join(names, " and ")
}

func (m *Model) viewStandby(snap session.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(m.scoreboard(snap))
	sb.WriteString("\n\n")

	if snap.CardsLeft == 0 {
		sb.WriteString(m.styles.Title.Render("🃏 Deck is empty!"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtitle.Render("no cards left in this category"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("enter see final results"))
	} else {
		sb.WriteString(m.styles.Subtitle.Render("turn of"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Title.Render(snap.CurrentTeamName))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Box.Render("acting: " + actorNames(snap)))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("cards left: %d", snap.CardsLeft)))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("enter draw card · e end game"))
	}
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewCardReveal(snap session.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Subtitle.Render(snap.CategoryName))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Card.Render(snap.CardText))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Danger.Render("🤫 only the actors may look!"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("unsure what it is? look it up before the clock starts:"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(searchURL(snap.CardText)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Help.Render("enter go to timer"))

	return m.center(sb.String())
}

func (m *Model) viewTimer(snap session.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Subtitle.Render("turn: " + snap.CurrentTeamName))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("acting: " + actorNames(snap)))
	sb.WriteString("\n\n")

	clock := fmt.Sprintf("%d:%02d", snap.Remaining/60, snap.Remaining%60)
	style := m.styles.Countdown
	if snap.Remaining <= criticalSeconds {
		style = m.styles.Critical
	}
	sb.WriteString(style.Render(clock))
	sb.WriteString("\n\n")

	switch {
	case snap.Remaining == 0:
		sb.WriteString(m.styles.Critical.Render("TIME'S UP!"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("f next turn"))
	case snap.Running:
		sb.WriteString(m.styles.Help.Render("s guessed it! · f pass"))
	default:
		sb.WriteString(m.styles.Help.Render("enter action! · s guessed early · f pass"))
	}

	return m.center(sb.String())
}

func (m *Model) viewScoreUpdate(snap session.Snapshot) string {
	var sb strings.Builder

	if snap.Result == session.ResultSuccess {
		sb.WriteString(m.styles.Success.Render("🎉 POINT!"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtitle.Render("well done"))
	} else {
		sb.WriteString(m.styles.Muted.Render("⏰ no point this time"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtitle.Render("better luck next turn"))
	}
	sb.WriteString("\n\n")

	score := 0
	for i, t := range snap.Teams {
		if i == snap.CurrentTeamIdx {
			score = t.Score
		}
	}
	sb.WriteString(m.styles.Box.Render(fmt.Sprintf("%s\n%s pts", snap.CurrentTeamName, m.styles.Score.Render(fmt.Sprintf("%d", score)))))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Help.Render("enter continue"))

	return m.center(sb.String())
}

func (m *Model) viewResults() string {
	standings := m.sess.Standings()
	winners := m.sess.Winners()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Final results"))
	sb.WriteString("\n\n")

	if len(winners) > 1 {
		sb.WriteString(m.styles.Success.Render("🤝 It's a tie!"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Score.Render(strings.Join(winners, " and ")))
	} else {
		sb.WriteString(m.styles.Subtitle.Render("winner"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Success.Render("🏆 " + winners[0]))
	}
	sb.WriteString("\n\n")

	for _, st := range standings {
		sb.WriteString(fmt.Sprintf("  #%d  %-20s %s\n", st.Rank, st.Name, m.styles.Score.Render(fmt.Sprintf("%d", st.Score))))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("r rematch · h home"))

	return m.center(sb.String())
}
