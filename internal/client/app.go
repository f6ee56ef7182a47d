// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/internal/tui"
)

type App struct {
	services *service.Services
	storages *store.Storages
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, storages *store.Storages, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || storages == nil || ui == nil {
		return nil, errors.New("client app: nil dependency")
	}
	return &App{services: services, storages: storages, tui: ui, logger: log}, nil
}

// Run drives the whole client session. The cached catalog is loaded before
// anything touches the network so the gallery opens even when offline.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.Gallery.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("restore cached catalog")
	}

	step, err := a.services.Auth.RestoreSession(ctx)
	switch {
	case err == nil && step == service.StepProfileSetup:
		if err = a.tui.ProfileFlow(ctx); err != nil {
			return a.exitErr(err)
		}
	case err != nil:
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Info().Err(err).Msg("cached session rejected")
		}
		if err = a.tui.LoginFlow(ctx); err != nil {
			return a.exitErr(err)
		}
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return fmt.Errorf("gallery loop: %w", err)
	}
	if logout {
		return a.Run()
	}
	return nil
}

func (a *App) exitErr(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
