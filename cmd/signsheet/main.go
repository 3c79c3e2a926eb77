package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/signsheet/internal/calendar"
	"github.com/username/signsheet/internal/config"
	"github.com/username/signsheet/internal/generator"
	"github.com/username/signsheet/internal/render"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "signsheet",
		Short: "Monthly attendance sheet generator",
		Long:  "Generate printable monthly sign-in sheets with weekends, holidays and notes marked",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(os.ExpandEnv(cfg.Log.File), cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
				return
			}

			// Full screen and tray modes keep the terminal free of log output
			if cmd.Name() == "form" || cmd.Name() == "tray" {
				logger = zap.NewNop()
				return
			}

			level := "info"
			if err == nil {
				level = cfg.Log.Level
			}
			initLogger(level)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.signsheet, /etc/signsheet)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(formCmd())
	rootCmd.AddCommand(trayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration with environment references expanded
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	return cfg, nil
}

// newGenerator wires the XLSX renderer and, when holidayFile is set, the
// holiday file calendar
func newGenerator(holidayFile string) (*generator.Generator, error) {
	var sources []calendar.Source
	if holidayFile != "" {
		fileCal := calendar.NewFileCalendar(holidayFile, logger)
		if err := fileCal.Load(); err != nil {
			return nil, err
		}
		sources = append(sources, fileCal)
	}

	return generator.New(render.NewXLSX(render.DefaultPalette()), logger, sources...), nil
}

// signalContext is canceled on interrupt or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
