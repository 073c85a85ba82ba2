package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/services"
	"github.com/kubev2v/panorama-mock/internal/sink"
	"github.com/kubev2v/panorama-mock/internal/store"
	"github.com/kubev2v/panorama-mock/pkg/scheduler"
)

func newLoadCommand(cfg *config.Configuration) *cobra.Command {
	var fromGenerated string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load fact rows into the DuckDB store",
		Long: `Load fact rows into the DuckDB store, either from a tree written by "generate"
or by generating a dataset into a temporary directory. Loading a customer replaces
its previous rows.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (fromGenerated == "") == (cfg.Generator.DatasetFile == "") {
				return errors.New("exactly one of --from-generated and --dataset is required")
			}

			st, err := openStore(cmd, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			var customers []string
			if fromGenerated != "" {
				customers, err = loadGenerated(cmd, st, fromGenerated)
			} else {
				customers, err = loadFromDataSet(cmd, st, cfg)
			}
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(os.Stdout, "loaded %d customers into %s\n", len(customers), cfg.Store.Path)
			return nil
		},
	}

	registerStoreFlags(cmd.Flags(), &cfg.Store)
	cmd.Flags().StringVar(&fromGenerated, "from-generated", "", "output directory of a previous generate run")
	cmd.Flags().StringVar(&cfg.Generator.DatasetFile, "dataset", cfg.Generator.DatasetFile, "YAML or JSON dataset to generate and load")
	cmd.Flags().IntVar(&cfg.Generator.NumWorkers, "workers", cfg.Generator.NumWorkers, "customers generated in parallel")

	return cmd
}

// loadGenerated loads the facts file of every customer directory under root.
func loadGenerated(cmd *cobra.Command, st *store.Store, root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var customers []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		facts, err := sink.ReadFacts(filepath.Join(root, e.Name()))
		if errors.Is(err, fs.ErrNotExist) {
			zap.S().Named("load").Debugw("skipping directory without facts", "dir", e.Name())
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := st.Loader().Load(cmd.Context(), facts); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", e.Name(), err)
		}
		customers = append(customers, e.Name())
	}

	if len(customers) == 0 {
		return nil, fmt.Errorf("no generated customers under %s", root)
	}
	return customers, nil
}

func loadFromDataSet(cmd *cobra.Command, st *store.Store, cfg *config.Configuration) ([]string, error) {
	ds, err := loadDataSet(cfg.Generator.DatasetFile)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "panorama-load-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	sched := scheduler.NewScheduler(cfg.Generator.NumWorkers)
	defer sched.Close()

	status, err := services.NewGenerationService(sched, st, nil, dir, services.SystemClock{}).Run(cmd.Context(), ds)
	if err != nil {
		return nil, err
	}
	return status.Customers, nil
}
