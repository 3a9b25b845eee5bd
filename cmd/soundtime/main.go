package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ysys/soundtime/internal/archive"
	"github.com/ysys/soundtime/internal/config"
	"github.com/ysys/soundtime/internal/export"
	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/probe"
	"github.com/ysys/soundtime/internal/store"
	"github.com/ysys/soundtime/internal/timeparse"
	"github.com/ysys/soundtime/internal/tui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// deps is the shared wiring for every subcommand.
type deps struct {
	cfg  config.Config
	st   *store.Store
	led  *ledger.Ledger
	arch *archive.Repo
	prb  probe.FFProbe
}

func setup() (deps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return deps{}, nil, fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return deps{}, nil, fmt.Errorf("mkdir data dir: %w", err)
	}

	st := store.New(cfg.Storage.Dir)
	led := ledger.New(st, st.LoadEntries())

	// the archive is best effort: the app runs without it
	cleanup := func() {}
	var repo *archive.Repo
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.ArchivePath), 0o755); err == nil {
		if db, err := archive.Open(cfg.Storage.ArchivePath); err == nil {
			repo = archive.NewRepo(db)
			cleanup = func() { db.Close() }
		} else {
			log.Printf("warn: settlement archive unavailable: %v", err)
		}
	}

	prb := probe.FFProbe{Binary: cfg.Probe.Binary, Timeout: cfg.Probe.Timeout}
	return deps{cfg: cfg, st: st, led: led, arch: repo, prb: prb}, cleanup, nil
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "soundtime",
		Short: "Audio production time tracking and settlement",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			app := tui.New(cmd.Context(), d.cfg, d.st, d.led, d.arch, d.prb)
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}
	root.AddCommand(exportCmd(), probeCmd(), historyCmd())
	return root
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current settlement ledger as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			w := export.Writer{Currency: d.cfg.UI.CurrencySymbol}
			if out == "" || out == "-" {
				return w.WriteCSV(os.Stdout, d.led.Entries())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := w.WriteCSV(f, d.led.Entries()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>...",
		Short: "Report audio durations for the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			results := probe.ProbeAll(cmd.Context(), d.prb, args)
			var total float64
			for _, r := range results {
				if !r.OK {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t(unreadable)\n", r.Path)
					continue
				}
				total += r.Seconds
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Path, timeparse.FormatDuration(r.Seconds))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total\t%s\n", timeparse.FormatDuration(total))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List archived settlement batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			if d.arch == nil {
				return fmt.Errorf("settlement archive unavailable")
			}
			entries, err := d.arch.List(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no archived settlements")
				return nil
			}
			batch := ""
			for _, e := range entries {
				if e.BatchID != batch {
					batch = e.BatchID
					fmt.Fprintf(cmd.OutOrStdout(), "batch %s (%s)\n", batch, e.ArchivedAt.Format(d.cfg.UI.DateFormat))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %-16s %s %s%.2f\n",
					e.ProjectName, e.Producer, timeparse.FormatDuration(e.DurationSeconds),
					d.cfg.UI.CurrencySymbol, e.Amount)
			}
			return nil
		},
	}
}
