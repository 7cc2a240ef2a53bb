package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/validators"
	"github.com/grustnolabs/go-grustnogram/models"
)

// ErrUserQuit reports that the user closed the sign-in flow without
// authenticating. The app treats it as a normal exit, not a failure.
var ErrUserQuit = errors.New("вышел из программы")

// TUI owns the two interactive flows of the client: sign-in and the main
// menu. Each flow runs its own Bubble Tea program in the alternate screen.
type TUI struct {
	api       grustnogram.API
	validate  *validators.Validator
	buildInfo models.AppBuildInfo
}

func New(api grustnogram.API, validate *validators.Validator, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{api: api, validate: validate, buildInfo: buildInfo}, nil
}

// LoginFlow walks the user through sign-in or registration and returns the
// opened session. Closing the program before authenticating returns
// [ErrUserQuit].
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"welcome":  NewWelcomeModel(),
		"login":    NewLoginModel(ctx, t.api, t.validate),
		"register": NewRegisterModel(ctx, t.api, t.validate),
		"code":     NewCodeModel(),
	}

	root := NewRootModel(pages, "welcome", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the action menu for an authenticated user until quit or
// logout. account is shown in the menu header and may be empty.
func (t *TUI) MainLoop(ctx context.Context, account string) (logout bool, err error) {
	pages := map[string]tea.Model{
		"menu":      NewMenuModel(account),
		"action":    NewActionFormModel(ctx, t.api),
		"complaint": NewComplaintModel(ctx, t.api),
		"comments":  NewCommentsModel(ctx, t.api),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, nil
}
