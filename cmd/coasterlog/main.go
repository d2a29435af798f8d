// Command coasterlog is a terminal roller coaster log: browse parks, mark
// coasters ridden, rate them. Running it with no subcommand opens the TUI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awray/coasterlog/internal/app"
	"github.com/awray/coasterlog/internal/catalog"
	"github.com/awray/coasterlog/internal/config"
	"github.com/awray/coasterlog/internal/log"
	"github.com/awray/coasterlog/internal/persist"
	"github.com/awray/coasterlog/internal/store"
	"github.com/awray/coasterlog/internal/tui"
)

var (
	configFlag  string
	dataDirFlag string
	storeFlag   string
	verboseFlag bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "coasterlog",
		Short:        "Browse theme parks and log the roller coasters you have ridden",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI()
		},
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config)")
	root.PersistentFlags().StringVar(&storeFlag, "store", "", "store backend: file, sqlite or memory (overrides config)")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")

	root.AddCommand(parksCmd(), exportCmd())
	return root
}

// loadSettings resolves the settings file and applies flag overrides.
func loadSettings() (*config.Settings, error) {
	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataDirFlag != "" {
		settings.DataDir = dataDirFlag
	}
	if storeFlag != "" {
		settings.StoreBackend = storeFlag
	}
	if verboseFlag {
		settings.Verbose = true
	}
	return settings, nil
}

// buildApp wires the catalog, store, persistence and controller together.
func buildApp() (*app.App, *config.Settings, store.Store, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := log.New(settings.LogFile, settings.Verbose)

	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.Open(settings.StoreBackend, settings.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := persist.New(st, logger)
	a := app.New(context.Background(), cat, svc, logger)
	logger.Info("started",
		zap.String("store", settings.StoreBackend),
		zap.Int("parks", len(cat.Parks())),
		zap.Int("coasters", cat.CoasterCount()))

	return a, settings, st, nil
}

func runTUI() error {
	a, settings, st, err := buildApp()
	if err != nil {
		return err
	}
	defer st.Close()
	defer a.Close()

	return tui.Run(a, settings.Mode())
}

// parksCmd prints the catalog with ridden progress, one park per line.
func parksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parks",
		Short: "List all parks with ridden progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, st, err := buildApp()
			if err != nil {
				return err
			}
			defer st.Close()
			defer a.Close()

			for _, park := range a.VisibleParks() {
				ridden, total := a.ParkProgress(park)
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-28s %-18s %2d/%2d ridden\n",
					park.ID, park.Name, park.Location, ridden, total)
			}
			return nil
		},
	}
}

// exportCmd dumps the persisted user state as JSON, for backups.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write ridden flags and ratings as JSON to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, st, err := buildApp()
			if err != nil {
				return err
			}
			defer st.Close()
			defer a.Close()

			out := struct {
				Ridden  any `json:"ridden"`
				Ratings any `json:"ratings"`
			}{a.RiddenMap(), a.RatingMap()}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
