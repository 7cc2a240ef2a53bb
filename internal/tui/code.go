// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CodeModel is the phone verification page of the registration flow. It
// receives the in-flight [registerFlow] from the register page, collects the
// dictated digits and feeds them back to the parked registration call.
type CodeModel struct {
	input      textinput.Model
	flow       *registerFlow
	submitting bool
	errMsg     string
}

func NewCodeModel() *CodeModel {
	input := textinput.New()
	input.Placeholder = "0000"
	input.CharLimit = 10
	input.Width = 20

	return &CodeModel{input: input}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *CodeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [codeRequestedMsg] — adopts the flow and resets the page.
//   - [LoginResult]      — only errors arrive here (the router finishes the
//     flow on success); a failed code leaves the whole registration dead, so
//     the user goes back and submits the form again.
//   - esc                — abandons the attempt and returns to the form.
//   - enter              — sends the digits to the waiting registration call.
func (m *CodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case codeRequestedMsg:
		m.flow = msg.flow
		m.submitting = false
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case LoginResult:
		m.submitting = false
		m.flow = nil
		if msg.Err != nil {
			m.errMsg = apiErrorMessage(msg.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.submitting {
				return m, nil
			}
			m.flow = nil
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		case "enter":
			if m.submitting || m.flow == nil {
				return m, nil
			}

			digits := strings.TrimSpace(m.input.Value())
			if digits == "" {
				m.errMsg = "Введите код"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			flow := m.flow
			return m, func() tea.Msg {
				flow.code <- digits
				return <-flow.done
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the code prompt with the single input,
// a submission indicator, and an optional error message.
func (m *CodeModel) View() string {
	var b strings.Builder
	b.WriteString("Вам поступит звонок-сброс.\n")
	b.WriteString("Введите последние 4 цифры входящего номера.\n\n")
	b.WriteString("Код │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Проверяем...]\n")
	} else {
		b.WriteString("\n[Подтвердить]\n")
	}

	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
		b.WriteString("Вернитесь назад и отправьте форму ещё раз.\n")
	}

	return renderPage("КОД ПОДТВЕРЖДЕНИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: подтвердить")
}
