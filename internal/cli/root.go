// Package cli wires configuration, the catalog and the render adapters into the gamegrid command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"gamegrid/internal/catalog"
	"gamegrid/internal/config"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/logging"
	"gamegrid/internal/logic"
	"gamegrid/internal/ui/state"
)

// Version is set at build time with -ldflags
var Version = "dev"

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Flags bind through a private viper instance
// so GAMEGRID_* environment variables override config file values.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GAMEGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "gamegrid",
		Short: "Browse a game catalog in the terminal or the browser",
		Long: `gamegrid is a searchable, filterable and paginated game catalog.

Run without a subcommand to open the terminal browser, or use "serve"
to browse the same catalog from a web page.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	addPersistentFlags(root, v)

	root.AddCommand(
		newServeCmd(v),
		newListCmd(v),
		newGenresCmd(v),
		newConfigCmd(v),
	)
	return root
}

func addPersistentFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: "+config.FileName+" in the gamegrid config dir)")
	flags.String("catalog", "", "Path to a TOML, YAML or JSON catalog (default: built-in catalog)")
	flags.Int("page-size", 0, "Initial page size; must be one of the configured page sizes")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-file", "", "Log file for the terminal browser")

	for _, name := range []string{"config", "catalog", "page-size", "debug", "log-file"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}
}

// app is everything a subcommand needs once flags, config and catalog are resolved
type app struct {
	cfg     *config.Config
	cfgPath string
	catalog *catalog.Catalog
	store   *logic.MemoryCatalogStore
	opts    state.Options
	bus     eventbus.EventBus
}

// loadConfig reads the config file and applies flag and environment overrides
func loadConfig(v *viper.Viper, bus eventbus.EventBus) (*config.Config, string, error) {
	path := v.GetString("config")
	explicit := path != ""

	svc := config.NewConfigServiceWithBus(bus, path)

	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = svc.LoadFromPath(path)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}

	if v.IsSet("catalog") {
		cfg.Catalog = v.GetString("catalog")
	}
	if v.IsSet("page-size") {
		cfg.UISettings.DefaultPageSize = v.GetInt("page-size")
	}
	if v.IsSet("log-file") {
		cfg.Log.File = v.GetString("log-file")
	}
	if v.GetBool("debug") {
		cfg.Log.Level = "debug"
	}
	if v.IsSet("addr") {
		cfg.Server.Addr = v.GetString("addr")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, svc.Path(), nil
}

// bootstrap resolves config and catalog. The caller closes the bus.
func bootstrap(v *viper.Viper) (*app, error) {
	bus := eventbus.New()

	cfg, cfgPath, err := loadConfig(v, bus)
	if err != nil {
		bus.Close()
		return nil, err
	}

	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &app{
		cfg:     cfg,
		cfgPath: cfgPath,
		catalog: cat,
		store:   logic.NewMemoryCatalogStore(cat),
		opts: state.Options{
			PageSizes:       cfg.UISettings.PageSizes,
			DefaultPageSize: cfg.UISettings.DefaultPageSize,
			MaxVisiblePages: cfg.UISettings.MaxVisiblePages,
		},
		bus: bus,
	}, nil
}

// catalogLoaded announces the catalog on the bus
func (a *app) catalogLoaded() {
	a.bus.Publish(eventbus.CatalogLoadedEvent{
		Source: a.catalog.Source,
		Games:  a.store.Count(),
		Genres: len(a.store.Genres()),
	})
}

// setupStderrLogging logs to w, in colour when w is a terminal
func setupStderrLogging(w io.Writer, cfg *config.Config) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	logging.Setup(w, level, color)
	if err != nil {
		slog.Warn("invalid log level, using info", "error", err)
	}
}

// logEvents mirrors bus traffic into the log
func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CatalogLoadedEvent)
		slog.Info("catalog loaded", "source", ev.Source, "games", ev.Games, "genres", ev.Genres)
	})
	bus.Subscribe(eventbus.EventPageSizeRejected, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.PageSizeRejectedEvent)
		slog.Info("page size rejected", "requested", ev.Requested, "current", ev.Current)
	})
	bus.Subscribe(eventbus.EventViewChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ViewChangedEvent)
		slog.Debug("view changed", "trigger", ev.Trigger, "query", ev.Query, "genre", ev.Genre,
			"page", ev.Page, "size", ev.PageSize, "matches", ev.FilteredCount)
	})
	bus.Subscribe(eventbus.EventSessionOpened, func(e eventbus.DomainEvent) {
		slog.Info("session opened", "remote", e.(eventbus.SessionOpenedEvent).RemoteAddr)
	})
	bus.Subscribe(eventbus.EventSessionClosed, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SessionClosedEvent)
		slog.Info("session closed", "remote", ev.RemoteAddr, "events", ev.Events)
	})
	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		slog.Info("ready", "mode", e.(eventbus.AppReadyEvent).Mode)
	})
}
