package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/models"
)

type complaintStage int

const (
	complaintStageID complaintStage = iota
	complaintStageReason
	complaintStageText
)

var complaintReasons = []models.ComplaintType{
	models.ComplaintUnacceptable,
	models.ComplaintInsult,
	models.ComplaintInsultsRussia,
}

// ComplaintModel walks the complaint in three stages: the post ID, one of
// the documented reasons, and an optional comment. esc steps one stage
// back; from the first stage it returns to the menu.
type ComplaintModel struct {
	ctx context.Context
	api grustnogram.API

	stage     complaintStage
	idInput   textinput.Model
	textInput textinput.Model
	reasonIdx int
	postID    int64

	submitting bool
	errMsg     string
}

func NewComplaintModel(ctx context.Context, api grustnogram.API) *ComplaintModel {
	m := &ComplaintModel{ctx: ctx, api: api}
	m.reset()
	return m
}

func (m *ComplaintModel) reset() {
	idInput := textinput.New()
	idInput.Placeholder = "ID поста"
	idInput.CharLimit = 20
	idInput.Width = 40
	idInput.Focus()

	textInput := textinput.New()
	textInput.Placeholder = "необязательный комментарий"
	textInput.CharLimit = 500
	textInput.Width = 40

	m.stage = complaintStageID
	m.idInput = idInput
	m.textInput = textInput
	m.reasonIdx = 0
	m.postID = 0
	m.submitting = false
	m.errMsg = ""
}

func (m *ComplaintModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *ComplaintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ActionResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = apiErrorMessage(result.Err)
			return m, nil
		}
		notice := result.Notice
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: ActionDoneNotice{Text: notice}}
		}
	}

	switch m.stage {
	case complaintStageID:
		return m.updateID(msg)
	case complaintStageReason:
		return m.updateReason(msg)
	case complaintStageText:
		return m.updateText(msg)
	}

	return m, nil
}

func (m *ComplaintModel) updateID(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			id, err := strconv.ParseInt(strings.TrimSpace(m.idInput.Value()), 10, 64)
			if err != nil || id <= 0 {
				m.errMsg = "ID поста должен быть положительным числом"
				return m, nil
			}
			m.postID = id
			m.errMsg = ""
			m.stage = complaintStageReason
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.idInput, cmd = m.idInput.Update(msg)
	return m, cmd
}

func (m *ComplaintModel) updateReason(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = complaintStageID
	case key.Matches(keyMsg, keys.up):
		if m.reasonIdx > 0 {
			m.reasonIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.reasonIdx < len(complaintReasons)-1 {
			m.reasonIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.stage = complaintStageText
		m.textInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *ComplaintModel) updateText(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.submitting {
				return m, nil
			}
			m.textInput.Blur()
			m.stage = complaintStageReason
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdComplain(m.postID, complaintReasons[m.reasonIdx], strings.TrimSpace(m.textInput.Value()))
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *ComplaintModel) cmdComplain(postID int64, reason models.ComplaintType, text string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.Complain(ctx, postID, reason, text)
		return ActionResult{Err: err, Notice: fmt.Sprintf("Жалоба на пост %d отправлена", postID)}
	}
}

func (m *ComplaintModel) View() string {
	var b strings.Builder

	switch m.stage {
	case complaintStageID:
		b.WriteString("ID поста │ [")
		b.WriteString(m.idInput.View())
		b.WriteString("]\n")
	case complaintStageReason:
		b.WriteString(fmt.Sprintf("Пост %d. Выберите причину жалобы:\n\n", m.postID))
		for i, reason := range complaintReasons {
			cursor := "  "
			if i == m.reasonIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(reasonLabel(reason))
			b.WriteString("\n")
		}
	case complaintStageText:
		b.WriteString(fmt.Sprintf("Пост %d. Причина: %s\n\n", m.postID, reasonLabel(complaintReasons[m.reasonIdx])))
		b.WriteString("Комментарий │ [")
		b.WriteString(m.textInput.View())
		b.WriteString("]\n")
		if m.submitting {
			b.WriteString("\n[Отправляем...]\n")
		} else {
			b.WriteString("\n[Отправить]\n")
		}
	}

	b.WriteString(renderError(m.errMsg))

	hotKeys := "esc: назад │ enter: далее"
	if m.stage == complaintStageReason {
		hotKeys = "esc: назад │ ↑/↓: выбор │ enter: далее"
	}
	if m.stage == complaintStageText {
		hotKeys = "esc: назад │ enter: отправить (пустой текст допустим)"
	}

	return renderPage("ЖАЛОБА", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func reasonLabel(t models.ComplaintType) string {
	switch t {
	case models.ComplaintUnacceptable:
		return "Неприемлемые материалы"
	case models.ComplaintInsult:
		return "Оскорбляет меня"
	case models.ComplaintInsultsRussia:
		return "Оскорбляет Россию"
	}
	return "Другое"
}
