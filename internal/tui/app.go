package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grustnolabs/go-grustnogram/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	logout        bool
	resultSession models.Session
	buildInfo     models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isListPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	switch result := msg.(type) {
	// Finalize login/register flow on success.
	case LoginResult:
		if result.Err == nil {
			r.resultSession = result.Session
			return r, tea.Quit
		}
	case userQuitMsg:
		r.quitByUser = true
		return r, tea.Quit
	case logoutMsg:
		r.logout = true
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("GRUSTNOGRAM", "", ""))
	}
	return appStyle.Render(r.current.View())
}

// isListPage reports whether the active page is a plain list, where the
// "v" key is free to open the build info window. Pages with text inputs
// must receive "v" as a regular character.
func (r RootModel) isListPage() bool {
	switch r.current.(type) {
	case *WelcomeModel, *MenuModel:
		return true
	}
	return false
}
