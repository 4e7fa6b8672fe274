package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/internal/cli"
	"github.com/pluqqy/pagetabs/internal/logx"
	"github.com/pluqqy/pagetabs/pkg/files"
	"github.com/pluqqy/pagetabs/pkg/tui"
)

type tuiOptions struct {
	LogFile string
	NoMouse bool
}

// runTUI launches the interactive page bar. The terminal belongs to
// bubbletea while it runs, so logs go to a file or nowhere.
func runTUI(cmd *cobra.Command, opts *GlobalOptions, tuiOpts *tuiOptions) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cc := cli.NewCommandContext(opts.ConfigPath, pslog.Ctx(ctx))
	settings := cc.LoadSettingsWithDefault()

	logPath := settings.Logging.File
	if tuiOpts.LogFile != "" {
		logPath = tuiOpts.LogFile
	}
	log, closer, err := logx.NewFileLogger(logPath, settings.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	defer closer.Close()

	if tuiOpts.NoMouse {
		settings.UI.Mouse = false
	}

	appOpts := []tui.AppOption{tui.WithLogger(log)}
	watcher, err := files.NewSettingsWatcher(cc.SettingsPath, log)
	if err != nil {
		log.Warn("settings hot reload disabled", "err", err)
	} else {
		go watcher.Run(ctx)
		appOpts = append(appOpts, tui.WithSettingsUpdates(watcher.Updates()))
	}

	app := tui.NewApp(*settings, appOpts...)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if settings.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	log.Info("page bar started", "settings", cc.SettingsPath, "pages", len(settings.Pages))
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	log.Info("page bar stopped", "pages", app.Navigator().Store.Len())
	return nil
}
