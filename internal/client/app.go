package client

import (
	"context"
	"errors"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a UI")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run implements [Client]. It loops through login flow and feed browser until
// the user quits; logging out returns to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, guest, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user, guest)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.services.AuthService.Logout()
		a.logger.Info().Msg("user logged out, returning to login flow")
	}
}
