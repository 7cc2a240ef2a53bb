package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the action menu of an authenticated session. Selecting an
// entry navigates to the page that collects the rest of the input.
type MenuModel struct {
	account string
	items   []string
	idx     int
	status  string
}

func NewMenuModel(account string) *MenuModel {
	return &MenuModel{
		account: account,
		items: []string{
			"Лайкнуть пост",
			"Снять лайк с поста",
			"Прокомментировать пост",
			"Комментарии к посту",
			"Пожаловаться на пост",
			"Удалить пост",
			"Сменить аккаунт",
			"Выход",
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(ActionDoneNotice); ok {
		m.status = notice.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, func() tea.Msg { return userQuitMsg{} }
	case key.Matches(keyMsg, keys.logout):
		return m, func() tea.Msg { return logoutMsg{} }
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		switch m.idx {
		case 0:
			return m, navigateToAction(actionLikePost)
		case 1:
			return m, navigateToAction(actionDislikePost)
		case 2:
			return m, navigateToAction(actionCommentPost)
		case 3:
			return m, navigateToAction(actionBrowseComments)
		case 4:
			return m, func() tea.Msg { return NavigateTo{Page: "complaint"} }
		case 5:
			return m, navigateToAction(actionDeletePost)
		case 6:
			return m, func() tea.Msg { return logoutMsg{} }
		case 7:
			return m, func() tea.Msg { return userQuitMsg{} }
		}
	}

	return m, nil
}

func navigateToAction(action actionKind) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: "action", Payload: ActionRequest{Action: action}}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.account != "" {
		b.WriteString("Аккаунт: ")
		b.WriteString(m.account)
		b.WriteString("\n\n")
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ ctrl+l: сменить аккаунт │ q: выход │ v: версия")
}
