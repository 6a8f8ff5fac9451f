package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamegrid/internal/config"
	"gamegrid/internal/domain"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/ui/coordinator"
	uilogic "gamegrid/internal/ui/logic"
	"gamegrid/internal/ui/state"
	"gamegrid/internal/web"
)

// ErrConfigExists is returned by config init when the file is already there
var ErrConfigExists = errors.New("config file already exists")

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a web page",
		Long: `Serve the catalog over HTTP.

GET / renders the catalog page, /api/games and /api/genres return JSON,
and /ws keeps a live session that re-renders on every interaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(v)
			if err != nil {
				return err
			}
			defer a.bus.Close()

			setupStderrLogging(cmd.ErrOrStderr(), a.cfg)
			logEvents(a.bus)

			h, err := web.NewHandler(a.store, a.opts, a.bus)
			if err != nil {
				return err
			}
			srv, err := web.NewServer(a.cfg.Server.Addr, h)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			a.catalogLoaded()
			a.bus.Publish(eventbus.AppReadyEvent{Mode: "serve"})
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %d games on http://%s\n", a.store.Count(), displayAddr(srv.Addr()))

			return srv.Serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	if err := v.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
		panic(fmt.Sprintf("failed to bind addr flag: %v", err))
	}
	return cmd
}

// displayAddr turns a wildcard listen address into something a browser can open
func displayAddr(addr string) string {
	for _, wildcard := range []string{"[::]:", "0.0.0.0:", ":"} {
		if strings.HasPrefix(addr, wildcard) {
			return "localhost:" + strings.TrimPrefix(addr, wildcard)
		}
	}
	return addr
}

type listOptions struct {
	query  string
	genre  string
	page   int
	size   int
	asJSON bool
}

func newListCmd(v *viper.Viper) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Long: `Print one page of the catalog after applying a search query, a genre
filter and a page size, the same way the terminal browser does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(v)
			if err != nil {
				return err
			}
			defer a.bus.Close()
			setupStderrLogging(cmd.ErrOrStderr(), a.cfg)

			frame, err := listFrame(a, opts)
			if err != nil {
				return err
			}

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(frame)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderList(frame))
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Search text matched against titles and descriptions")
	cmd.Flags().StringVarP(&opts.genre, "genre", "g", domain.AllGenres, "Genre filter")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number; out of range pages are clamped")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "Page size (default from config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the page as JSON")
	return cmd
}

// listFrame applies the list flags in the same order as the web adapter
func listFrame(a *app, opts listOptions) (state.Frame, error) {
	c := coordinator.New(a.store, a.opts, a.bus)

	events := []coordinator.Event{
		coordinator.QueryChanged{Text: opts.query},
		coordinator.GenreSelected{Label: opts.genre},
	}
	if opts.size != 0 {
		events = append(events, coordinator.PageSizeChanged{Size: opts.size})
	}
	events = append(events, coordinator.PageSelected{Page: opts.page})

	for _, e := range events {
		if _, err := c.Dispatch(e); err != nil {
			return state.Frame{}, err
		}
	}
	return c.Frame(), nil
}

func renderList(frame state.Frame) string {
	var b strings.Builder

	b.WriteString(frame.Summary())
	if frame.Empty {
		b.WriteString("\nTry another search term or genre.\n")
		return b.String()
	}
	fmt.Fprintf(&b, " · page %d of %d\n", frame.CurrentPage, frame.TotalPages)

	rows := make([][]string, 0, len(frame.Items))
	for i, game := range frame.Items {
		rows = append(rows, []string{
			strconv.Itoa(frame.StartIndex + i),
			game.Title,
			fmt.Sprintf("%.1f", game.Rating),
			strconv.Itoa(game.ReleaseYear),
			strings.Join(game.Genre, ", "),
			game.Developer,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Title", "Rating", "Year", "Genres", "Developer").
		Rows(rows...)
	b.WriteString(t.String())
	b.WriteString("\n")

	if frame.TotalPages > 1 {
		b.WriteString(pageLine(frame))
		b.WriteString("\n")
	}
	return b.String()
}

// pageLine renders the page window as plain text, current page in brackets
func pageLine(frame state.Frame) string {
	parts := make([]string, 0, len(frame.Window.Pages)+2)
	if frame.Window.PrevEnabled {
		parts = append(parts, "‹ Prev")
	}
	for _, p := range frame.Window.Pages {
		if p == frame.CurrentPage {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, strconv.Itoa(p))
		}
	}
	if frame.Window.NextEnabled {
		parts = append(parts, "Next ›")
	}
	return strings.Join(parts, "  ")
}

func newGenresCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the catalog's genres",
		Long:  "List every genre label in the catalog with the number of entries carrying it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(v)
			if err != nil {
				return err
			}
			defer a.bus.Close()
			setupStderrLogging(cmd.ErrOrStderr(), a.cfg)

			games := a.store.All()
			out := cmd.OutOrStdout()
			for _, label := range domain.GenreLabels(a.store.Genres()) {
				count := len(uilogic.Filter(games, "", label))
				if _, err := fmt.Fprintf(out, "%-16s %d\n", label, count); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gamegrid config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  "Write the default config file to the --config path, or to the gamegrid config dir.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigServiceWithBus(nil, v.GetString("config"))
			path := svc.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
