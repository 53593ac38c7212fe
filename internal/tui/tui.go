package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/models"
)

type TUI struct {
	services  *service.ClientServices
	images    catalog.Images
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, images catalog.Images, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, images: images, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the program exits. It opens the home page first and lets
// the route guard send an anonymous user to the menu.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageHome, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageHome:     NewHomeModel(ctx, t.services.Guard, t.services.AuthService, t.services.CatalogService, t.images),
	}
}
