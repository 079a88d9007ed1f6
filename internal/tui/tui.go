package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the entry screens (menu, login, register) until the user
// authenticates, chooses to browse as a guest, or quits. Returns the
// authenticated account (zero value for guests).
func (t *TUI) LoginFlow(ctx context.Context) (user models.UserInfo, guest bool, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserInfo{}, false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserInfo{}, false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.UserInfo{}, false, ErrUserQuit
	}

	return result.resultUser, result.resultGuest, nil
}

// MainLoop runs the feed browser until the user logs out or quits.
func (t *TUI) MainLoop(ctx context.Context, user models.UserInfo, guest bool) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user, guest)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
