package cli

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamegrid/internal/eventbus"
	"gamegrid/internal/logging"
	"gamegrid/internal/ui"
	"gamegrid/internal/ui/coordinator"
)

// uiEvents are the bus events the terminal browser shows in its status line
var uiEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventError,
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	a, err := bootstrap(v)
	if err != nil {
		return err
	}
	defer a.bus.Close()

	// The terminal belongs to the UI, so logs go to a file
	level, levelErr := logging.ParseLevel(a.cfg.Log.Level)
	closeLog, err := logging.SetupFile(a.cfg.LogFile(), level)
	if err != nil {
		return err
	}
	defer closeLog()
	if levelErr != nil {
		slog.Warn("invalid log level, using info", "error", levelErr)
	}
	logEvents(a.bus)

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	coord := coordinator.New(a.store, a.opts, a.bus)
	model := ui.NewModel(coord, a.bus, a.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward selected events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, eventType := range uiEvents {
		unsubscribe := a.bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				slog.Warn("event channel full, dropping event", "event", e.Type())
			}
		})
		defer unsubscribe()
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	a.catalogLoaded()
	a.bus.Publish(eventbus.AppReadyEvent{Mode: "tui"})

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("terminal browser interrupted")
			return nil
		}
		return fmt.Errorf("run terminal browser: %w", err)
	}
	return nil
}
