package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/internal/utils"
	"github.com/grustnolabs/go-grustnogram/internal/validators"
	"github.com/grustnolabs/go-grustnogram/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders
// five text inputs (nickname, email, phone, password, password confirmation)
// and starts the three-step registration on form submission. When the API asks
// for the phone verification code, the model hands the in-flight [registerFlow]
// to the code page; the final [LoginResult] ends the flow.
type RegisterModel struct {
	ctx      context.Context
	api      grustnogram.API
	validate *validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// registerFlow bridges the blocking code callback of the registration call
// to the message loop. The API goroutine parks on ask/code while the UI
// keeps rendering; every channel is buffered so no send can block forever.
type registerFlow struct {
	ask  chan struct{}
	code chan string
	done chan LoginResult
}

// NewRegisterModel creates a [RegisterModel] with five pre-configured text
// inputs. The nickname field receives focus immediately; the password fields
// use masked echo.
func NewRegisterModel(ctx context.Context, api grustnogram.API, validate *validators.Validator) *RegisterModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "никнейм"
	fields[0].CharLimit = 32
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "+7XXXXXXXXXX"
	fields[2].CharLimit = 20
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "repeat password"
	fields[4].EchoMode = textinput.EchoPassword
	fields[4].EchoCharacter = '*'
	fields[4].Width = 40

	return &RegisterModel{
		ctx:      ctx,
		api:      api,
		validate: validate,
		inputs:   fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [codeRequestedMsg] — the verification call has been placed; navigates
//     to the code page carrying the in-flight flow.
//   - [LoginResult]      — only errors arrive here (the router finishes the
//     flow on success); populates errMsg.
//   - esc                — cancels and navigates back to the welcome page.
//   - tab / shift+tab    — moves focus between inputs.
//   - enter              — validates inputs and starts the registration.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case codeRequestedMsg:
		m.submitting = false
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "code", Payload: msg} }
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = apiErrorMessage(msg.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
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

			reg := models.Registration{
				Nickname: strings.TrimSpace(m.inputs[0].Value()),
				Email:    strings.TrimSpace(m.inputs[1].Value()),
				Phone:    utils.NormalizePhone(m.inputs[2].Value()),
				Password: m.inputs[3].Value(),
			}
			if reg.Password != m.inputs[4].Value() {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}
			if err := m.validate.Registration(reg); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdStartRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column
// table with all five input fields, a submission indicator, and an optional
// error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Никнейм        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email          │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Телефон        │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Пароль         │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Повтор пароля  │ [")
	b.WriteString(m.inputs[4].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	b.WriteString(renderError(m.errMsg))

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

// cmdStartRegister launches the registration call in its own goroutine and
// returns a command waiting for whichever comes first: the code request or
// the final result. Failures of the first two steps (taken email, taken
// nickname, dead server) finish without ever asking for a code.
func (m *RegisterModel) cmdStartRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	api := m.api

	flow := &registerFlow{
		ask:  make(chan struct{}, 1),
		code: make(chan string, 1),
		done: make(chan LoginResult, 1),
	}

	go func() {
		token, err := api.Register(ctx, reg, func(ctx context.Context) (string, error) {
			flow.ask <- struct{}{}
			select {
			case c := <-flow.code:
				return c, nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})

		flow.done <- LoginResult{
			Err: err,
			Session: models.Session{
				Email:       reg.Email,
				Nickname:    reg.Nickname,
				AccessToken: token,
			},
		}
	}()

	return func() tea.Msg {
		select {
		case <-flow.ask:
			return codeRequestedMsg{flow: flow}
		case res := <-flow.done:
			return res
		}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
