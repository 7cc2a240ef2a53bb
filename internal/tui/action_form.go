package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	grustnogram "github.com/grustnolabs/go-grustnogram"
)

type actionKind int

const (
	actionLikePost actionKind = iota
	actionDislikePost
	actionCommentPost
	actionBrowseComments
	actionDeletePost
)

// ActionFormModel is the shared form page behind most menu entries. The
// menu configures it through an [ActionRequest]: every action needs a post
// ID, commenting needs a text on top, deletion asks for confirmation.
type ActionFormModel struct {
	ctx context.Context
	api grustnogram.API

	action     actionKind
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	confirming bool
	pendingID  int64
}

func NewActionFormModel(ctx context.Context, api grustnogram.API) *ActionFormModel {
	m := &ActionFormModel{ctx: ctx, api: api}
	m.configure(actionLikePost)
	return m
}

// configure rebuilds the inputs for the requested action. The form is
// reused across menu entries, so nothing of the previous state survives.
func (m *ActionFormModel) configure(action actionKind) {
	m.action = action
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	m.confirming = false
	m.pendingID = 0

	idInput := textinput.New()
	idInput.Placeholder = "ID поста"
	idInput.CharLimit = 20
	idInput.Width = 40
	idInput.Focus()

	m.inputs = []textinput.Model{idInput}

	if action == actionCommentPost {
		textInput := textinput.New()
		textInput.Placeholder = "текст комментария"
		textInput.CharLimit = 500
		textInput.Width = 40
		m.inputs = append(m.inputs, textInput)
	}
}

func (m *ActionFormModel) Init() tea.Cmd {
	m.configure(m.action)
	return textinput.Blink
}

func (m *ActionFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ActionRequest:
		m.configure(msg.Action)
		return m, textinput.Blink
	case ActionResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = apiErrorMessage(msg.Err)
			return m, nil
		}
		notice := msg.Notice
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: ActionDoneNotice{Text: notice}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && m.confirming {
		switch keyMsg.String() {
		case "y":
			m.confirming = false
			m.submitting = true
			return m, m.cmdDeletePost(m.pendingID)
		case "n", "esc":
			m.confirming = false
			m.pendingID = 0
		}
		return m, nil
	}

	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ActionFormModel) submit() (tea.Model, tea.Cmd) {
	id, err := strconv.ParseInt(strings.TrimSpace(m.inputs[0].Value()), 10, 64)
	if err != nil || id <= 0 {
		m.errMsg = "ID поста должен быть положительным числом"
		return m, nil
	}

	m.errMsg = ""

	switch m.action {
	case actionLikePost:
		m.submitting = true
		return m, m.cmdLikePost(id)
	case actionDislikePost:
		m.submitting = true
		return m, m.cmdDislikePost(id)
	case actionCommentPost:
		text := strings.TrimSpace(m.inputs[1].Value())
		if text == "" {
			m.errMsg = "Текст комментария обязателен"
			return m, nil
		}
		m.submitting = true
		return m, m.cmdCommentPost(id, text)
	case actionBrowseComments:
		return m, func() tea.Msg {
			return NavigateTo{Page: "comments", Payload: BrowseRequest{PostID: id}}
		}
	case actionDeletePost:
		m.confirming = true
		m.pendingID = id
	}

	return m, nil
}

func (m *ActionFormModel) View() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼────────────────────────────────────────\n")
	b.WriteString("ID поста  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if len(m.inputs) > 1 {
		b.WriteString("Текст     │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Отправляем...]\n")
	} else {
		b.WriteString("\n[Отправить]\n")
	}

	b.WriteString(renderError(m.errMsg))

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(renderConfirmOverlay(fmt.Sprintf("Удалить пост %d?", m.pendingID)))
		b.WriteString("\n")
	}

	hotKeys := "esc: назад │ enter: отправить"
	if len(m.inputs) > 1 {
		hotKeys = "esc: назад │ tab: след. поле │ enter: отправить"
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ActionFormModel) title() string {
	switch m.action {
	case actionLikePost:
		return "ЛАЙК ПОСТА"
	case actionDislikePost:
		return "СНЯТЬ ЛАЙК С ПОСТА"
	case actionCommentPost:
		return "НОВЫЙ КОММЕНТАРИЙ"
	case actionBrowseComments:
		return "КОММЕНТАРИИ К ПОСТУ"
	case actionDeletePost:
		return "УДАЛЕНИЕ ПОСТА"
	}
	return "ДЕЙСТВИЕ"
}

func (m *ActionFormModel) cmdLikePost(postID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.LikePost(ctx, postID)
		return ActionResult{Err: err, Notice: fmt.Sprintf("Пост %d лайкнут", postID)}
	}
}

func (m *ActionFormModel) cmdDislikePost(postID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.DislikePost(ctx, postID)
		return ActionResult{Err: err, Notice: fmt.Sprintf("Лайк с поста %d снят", postID)}
	}
}

func (m *ActionFormModel) cmdCommentPost(postID int64, text string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		created, err := api.CommentPost(ctx, postID, text)
		return ActionResult{Err: err, Notice: fmt.Sprintf("Комментарий %d опубликован", created.ID)}
	}
}

func (m *ActionFormModel) cmdDeletePost(postID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.DeletePost(ctx, postID)
		return ActionResult{Err: err, Notice: fmt.Sprintf("Пост %d удалён", postID)}
	}
}

func (m *ActionFormModel) focusNext() {
	if len(m.inputs) < 2 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ActionFormModel) focusPrev() {
	if len(m.inputs) < 2 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
