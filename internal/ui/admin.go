package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/mimica-master/internal/apperrors"
	"github.com/palemoky/mimica-master/internal/logger"
)

// storeTimeout bounds every admin call into the content store.
const storeTimeout = 5 * time.Second

func (m *Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenAdminPin:
		return m.updateAdminPin(msg)
	case screenAdminCategories:
		return m.updateAdminCategories(msg)
	case screenAdminCards:
		return m.updateAdminCards(msg)
	}
	return m, nil
}

func (m *Model) updateAdminPin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.input.Value() != m.cfg.Admin.Pin {
			m.errText = apperrors.ErrBadPin.Message
			m.input.Reset()
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.refreshCategories()
		m.adminCatIdx = 0
		m.screen = screenAdminCategories
		return m, nil
	case "esc":
		m.resetToHome()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateAdminCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adminNewCategory {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				m.withStore(func(ctx context.Context) error {
					_, err := m.store.CreateCategory(ctx, name)
					return err
				})
				m.refreshCategories()
			}
			m.adminNewCategory = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.adminNewCategory = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.adminCatIdx > 0 {
			m.adminCatIdx--
		}
	case "down", "j":
		if m.adminCatIdx < len(m.categories)-1 {
			m.adminCatIdx++
		}
	case "n":
		m.adminNewCategory = true
		m.input.Reset()
		m.input.EchoMode = textinput.EchoNormal
		m.input.Placeholder = "category name"
		m.input.Focus()
	case "d":
		if len(m.categories) > 0 {
			id := m.categories[m.adminCatIdx].ID
			m.withStore(func(ctx context.Context) error {
				return m.store.DeleteCategory(ctx, id)
			})
			m.refreshCategories()
		}
	case "enter":
		if len(m.categories) > 0 {
			m.adminCardIdx = 0
			m.screen = screenAdminCards
		}
	case "esc":
		m.resetToHome()
	}
	return m, nil
}

func (m *Model) updateAdminCards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cat := &m.categories[m.adminCatIdx]

	if m.adminNewCard {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				id := cat.ID
				m.withStore(func(ctx context.Context) error {
					_, err := m.store.AddCard(ctx, id, text)
					return err
				})
				m.refreshCategories()
			}
			m.adminNewCard = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.adminNewCard = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.adminCardIdx > 0 {
			m.adminCardIdx--
		}
	case "down", "j":
		if m.adminCardIdx < len(cat.Cards)-1 {
			m.adminCardIdx++
		}
	case "a":
		m.adminNewCard = true
		m.input.Reset()
		m.input.EchoMode = textinput.EchoNormal
		m.input.Placeholder = "card text"
		m.input.Focus()
	case "d":
		if len(cat.Cards) > 0 {
			catID, cardID := cat.ID, cat.Cards[m.adminCardIdx].ID
			m.withStore(func(ctx context.Context) error {
				return m.store.DeleteCard(ctx, catID, cardID)
			})
			m.refreshCategories()
		}
	case "esc":
		m.screen = screenAdminCategories
	}
	return m, nil
}

// withStore runs one content-store call with a bounded context. Admin
// edits are rare and tiny, so they run inline on the update loop.
func (m *Model) withStore(fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		logger.LogError("admin store call failed: %v", err)
		m.errText = apperrors.ErrContentUnavailable.Message
	}
}

// refreshCategories reloads the category list after an admin edit. The
// cursors are re-clamped afterwards: with a shared backend (redis)
// another device may have removed entries between two refreshes.
func (m *Model) refreshCategories() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cats, err := m.store.ListCategories(ctx)
	if err != nil {
		logger.LogError("listing categories failed: %v", err)
		m.errText = apperrors.ErrContentUnavailable.Message
		return
	}
	m.categories = cats

	if m.adminCatIdx >= len(m.categories) {
		m.adminCatIdx = max(0, len(m.categories)-1)
	}
	if m.screen == screenAdminCards {
		if len(m.categories) == 0 {
			m.screen = screenAdminCategories
			return
		}
		if cards := m.categories[m.adminCatIdx].Cards; m.adminCardIdx >= len(cards) {
			m.adminCardIdx = max(0, len(cards)-1)
		}
	}
}

// --- Views ---

func (m *Model) viewAdmin() string {
	switch m.screen {
	case screenAdminPin:
		return m.viewAdminPin()
	case screenAdminCategories:
		return m.viewAdminCategories()
	case screenAdminCards:
		return m.viewAdminCards()
	}
	return ""
}

func (m *Model) viewAdminPin() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("🔒 Admin"))
	sb.WriteString("\n\n")
	sb.WriteString("PIN: " + m.input.View() + "\n\n")
	sb.WriteString(m.styles.Help.Render("enter confirm · esc back"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewAdminCategories() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Categories"))
	sb.WriteString("\n\n")
	if len(m.categories) == 0 {
		sb.WriteString(m.styles.Muted.Render("no categories yet"))
		sb.WriteString("\n")
	}
	for i, cat := range m.categories {
		cursor := "  "
		line := fmt.Sprintf("%s (%d cards)", cat.Name, len(cat.Cards))
		if i == m.adminCatIdx {
			cursor = "> "
			line = m.styles.Score.Render(line)
		}
		sb.WriteString(cursor + line + "\n")
	}

	if m.adminNewCategory {
		sb.WriteString("\nnew category: " + m.input.View() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("↑/↓ move · enter open · n new · d delete · esc home"))
	m.appendError(&sb)

	return m.center(sb.String())
}

func (m *Model) viewAdminCards() string {
	cat := m.categories[m.adminCatIdx]

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(cat.Name))
	sb.WriteString("\n\n")
	if len(cat.Cards) == 0 {
		sb.WriteString(m.styles.Muted.Render("no cards yet"))
		sb.WriteString("\n")
	}
	for i, card := range cat.Cards {
		cursor := "  "
		line := card.Text
		if i == m.adminCardIdx {
			cursor = "> "
			line = m.styles.Score.Render(line)
		}
		sb.WriteString(cursor + line + "\n")
	}

	if m.adminNewCard {
		sb.WriteString("\nnew card: " + m.input.View() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("↑/↓ move · a add · d delete · esc back"))
	m.appendError(&sb)

	return m.center(sb.String())
}
