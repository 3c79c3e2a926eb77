//go:build !windows
// +build !windows

package tray

import (
	"context"
	"errors"
)

// Run is not supported on this platform
func (a *App) Run(ctx context.Context) error {
	return errors.New("system tray is only supported on Windows")
}
