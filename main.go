package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runTUI starts the reader on source with the style panel closed and the
// default style committed.
func runTUI(cfg Config, source string) error {
	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := newModel(cfg, source, logger)
	defer m.panel.Unmount()

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		// A clean terminal canvas to work with
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("starting", "source", source, "mouse", cfg.Mouse)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
