package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/codefionn/taschenrechner/internal/config"
	"github.com/codefionn/taschenrechner/internal/consts"
	"github.com/codefionn/taschenrechner/internal/logger"
	"github.com/codefionn/taschenrechner/internal/tui"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	flags := flag.NewFlagSet(consts.AppName, flag.ContinueOnError)
	showVersion := flags.Bool("version", false, "print version and exit")
	configPath := flags.String("config", "", "path to config file")
	theme := flags.String("theme", "", "color theme (dark, light)")
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error, none)")
	logPath := flags.String("log-path", "", "log file path")
	noMouse := flags.Bool("no-mouse", false, "disable mouse support")
	noTape := flags.Bool("no-tape", false, "start with the tape panel hidden")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	if *showVersion {
		fmt.Printf("%s %s\n", consts.AppName, consts.Version)
		return nil
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = strings.TrimSpace(os.Getenv(consts.EnvConfigPath))
	}
	if cfgPath == "" {
		cfgPath = config.GetConfigPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment overrides config file values, flags override both.
	if envLevel := strings.TrimSpace(os.Getenv(consts.EnvLogLevel)); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv(consts.EnvLogPath)); envPath != "" {
		cfg.LogPath = envPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *noMouse {
		cfg.EnableMouse = false
	}
	if *noTape {
		cfg.ShowTape = false
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err != nil {
			logger.Error("fatal error: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()
	logger.Info("%s %s starting", consts.AppName, consts.Version)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required")
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(tui.New(cfg), opts...)

	// Live config reload: the watcher feeds changes into the update loop.
	// The calculator keeps working without it.
	watcher, err := config.Watch(cfgPath, func(c *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: c})
	})
	if err != nil {
		logger.Warn("config watching disabled: %v", err)
		err = nil
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("shutdown")
	return nil
}
