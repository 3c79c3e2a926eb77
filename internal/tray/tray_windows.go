//go:build windows
// +build windows

package tray

import (
	"context"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONERROR       = 0x00000010
	MB_ICONINFORMATION = 0x00000040
)

// Run shows the tray icon and blocks until Quit is clicked or ctx is done
func (a *App) Run(ctx context.Context) error {
	systray.Run(func() { a.onReady(ctx) }, a.onExit)
	return nil
}

func (a *App) onReady(ctx context.Context) {
	if icon, err := clockIcon(); err != nil {
		a.logger.Warn("Failed to build tray icon, using title only", zap.Error(err))
	} else {
		systray.SetIcon(icon)
	}
	systray.SetTitle("SS")
	systray.SetTooltip(a.Tooltip())

	mThisMonth := systray.AddMenuItem("Generate this month", "Generate the sheet of the current month")
	mNextMonth := systray.AddMenuItem("Generate next month", "Generate the sheet of the next month")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	go func() {
		for {
			select {
			case <-mThisMonth.ClickedCh:
				a.logger.Info("Generate this month clicked from tray")
				go a.generateAndReport(ctx, 0)
			case <-mNextMonth.ClickedCh:
				a.logger.Info("Generate next month clicked from tray")
				go a.generateAndReport(ctx, 1)
			case <-mQuit.ClickedCh:
				a.logger.Info("Quit clicked from tray")
				systray.Quit()
				return
			case <-ctx.Done():
				systray.Quit()
				return
			}
		}
	}()
}

func (a *App) onExit() {
	a.logger.Info("System tray exited")
}

func (a *App) generateAndReport(ctx context.Context, offset int) {
	res, err := a.GenerateMonth(ctx, offset)
	if err != nil {
		a.logger.Error("Tray generation failed", zap.Int("offset", offset), zap.Error(err))
	}
	systray.SetTooltip(a.Tooltip())

	title, message, failed := resultMessage(res, err)
	showMessageBox(title, message, failed)
}

func showMessageBox(title, message string, failed bool) {
	icon := uintptr(MB_ICONINFORMATION)
	if failed {
		icon = MB_ICONERROR
	}

	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK)|icon,
	)
}
