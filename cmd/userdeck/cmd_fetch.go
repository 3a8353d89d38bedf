package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"userdeck/cmd/userdeck/ui"
	"userdeck/internal/deck"
	"userdeck/internal/logging"
	"userdeck/internal/randomuser"
)

var (
	fetchCount   int
	fetchBatches int
	fetchFormat  string
)

// fetchCmd runs the fetch-and-accumulate flow without the terminal UI.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch profiles and print them",
	Long: `Fetches profiles without starting the browser and prints them.

Batches run concurrently; each successful batch is appended in the order it
arrives. Failed batches are logged and skipped. The command fails only when
every batch fails.

Examples:
  userdeck fetch
  userdeck fetch --count 3 --batches 4 --format json`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVarP(&fetchCount, "count", "n", deck.DefaultRequestedCount, "Profiles to request per batch (sent as-is)")
	fetchCmd.Flags().IntVarP(&fetchBatches, "batches", "b", 1, "Number of concurrent requests")
	fetchCmd.Flags().StringVarP(&fetchFormat, "format", "f", "table", "Output format: table, json or markdown")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetchBatches < 1 {
		return fmt.Errorf("--batches must be at least 1, got %d", fetchBatches)
	}
	switch fetchFormat {
	case "table", "json", "markdown":
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, markdown)", fetchFormat)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newClient()
	defer client.Close()

	d, err := collectBatches(ctx, client, fetchCount, fetchBatches, logging.Get(logger, logging.CategoryFetch))
	if err != nil {
		return err
	}
	return writeProfiles(cmd.OutOrStdout(), d.Profiles(), fetchFormat)
}

// collectBatches issues batches concurrent fetches of count profiles and
// appends every successful result to one deck in arrival order. It returns
// an error only when no batch succeeded.
func collectBatches(ctx context.Context, f randomuser.Fetcher, count, batches int, log *zap.Logger) (*deck.Deck, error) {
	d := deck.New()

	results := make(chan []randomuser.Profile)
	var failed atomic.Int32

	// A failed batch must not cancel its siblings, so no shared context.
	var g errgroup.Group
	for i := 0; i < batches; i++ {
		batch := i
		g.Go(func() error {
			profiles, err := f.FetchProfiles(ctx, count)
			if err != nil {
				failed.Add(1)
				fields := []zap.Field{zap.Int("batch", batch), zap.Int("count", count), zap.Error(err)}
				var fe *randomuser.FetchError
				if errors.As(err, &fe) {
					fields = append(fields, zap.String("request_id", fe.RequestID), zap.Stringer("kind", fe.Kind))
				}
				log.Error("fetch failed", fields...)
				return err
			}
			results <- profiles
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	for profiles := range results {
		d.Append(profiles)
		log.Debug("batch appended", zap.Int("received", len(profiles)), zap.Int("total", d.Len()))
	}
	firstErr := <-done

	if n := int(failed.Load()); n == batches {
		return nil, fmt.Errorf("all %d batches failed: %w", batches, firstErr)
	}
	return d, nil
}

// writeProfiles prints profiles in the requested format.
func writeProfiles(w io.Writer, profiles []randomuser.Profile, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profiles); err != nil {
			return fmt.Errorf("encode profiles: %w", err)
		}
		return nil

	case "markdown":
		out, err := ui.RenderMarkdown(ui.ProfilesMarkdown(profiles), markdownStyle(cfg.UI.Theme), cfg.UI.MaxCardWidth)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	default:
		title := fmt.Sprintf("Results: %d", len(profiles))
		view := ui.ProfileTable(title, profiles).View(ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme)))
		if view == "" {
			view = title + "\n"
		}
		_, err := io.WriteString(w, view)
		return err
	}
}

// markdownStyle picks the glamour style for headless output. "auto" lets
// glamour fall back to plain text when stdout is not a terminal.
func markdownStyle(theme string) string {
	switch theme {
	case "light", "dark":
		return theme
	}
	return "auto"
}
