package client

import (
	"context"
	"errors"
	"fmt"

	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/session"
	"github.com/grustnolabs/go-grustnogram/internal/tui"
	"github.com/grustnolabs/go-grustnogram/models"
)

// App ties the pieces of the interactive client together. It owns no
// terminal state itself; the TUI flows do all the rendering.
type App struct {
	api    grustnogram.API
	store  session.Store
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(api grustnogram.API, store session.Store, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if api == nil || store == nil || ui == nil {
		return nil, errors.New("client app: nil dependency")
	}
	return &App{api: api, store: store, ui: ui, logger: log}, nil
}

// Run restores the saved session or walks the sign-in flow, then runs the
// action menu. A logout clears the stored session and starts over; closing
// the program from the sign-in flow is a normal exit.
func (a *App) Run() error {
	ctx := context.Background()

	sess, err := a.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		sess, err = a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		saved, saveErr := a.store.Save(ctx, sess)
		if saveErr != nil {
			// Без сохранённой сессии можно жить: просто спросим логин в
			// следующий раз.
			a.logger.Warn().Err(saveErr).Str("func", "*App.Run").Msg("session not persisted")
		} else {
			sess = saved
		}
	}

	a.api.SetToken(sess.AccessToken)

	logout, err := a.ui.MainLoop(ctx, accountLabel(sess))
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	if logout {
		a.api.SetToken("")
		if err = a.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return a.Run()
	}

	return nil
}

func accountLabel(sess models.Session) string {
	if sess.Nickname != "" {
		return sess.Nickname
	}
	return sess.Email
}
