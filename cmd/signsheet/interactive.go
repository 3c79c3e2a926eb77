package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/signsheet/internal/form"
	"github.com/username/signsheet/internal/tray"
)

func formCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in the sheet parameters in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gen, err := newGenerator(cfg.Holidays.File)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			logger.Info("Starting form", zap.Int("month", month), zap.Int("year", year))
			return form.Run(ctx, gen, form.Options{
				Defaults:     cfg.Params(month, year),
				YearMin:      cfg.Form.YearMin,
				YearMax:      cfg.Form.YearMax,
				DocumentsDir: cfg.OutputDir(),
				Theme:        form.FindTheme(cfg.Form.ThemeFile, logger),
			})
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Initially selected month")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Initially selected year")

	return cmd
}

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Run from the system tray (Windows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gen, err := newGenerator(cfg.Holidays.File)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			logger.Info("Starting system tray", zap.String("output_dir", cfg.OutputDir()))
			return tray.New(cfg, gen, logger).Run(ctx)
		},
	}
}
