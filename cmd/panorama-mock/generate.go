package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/generator"
	"github.com/kubev2v/panorama-mock/internal/models"
	"github.com/kubev2v/panorama-mock/internal/services"
	"github.com/kubev2v/panorama-mock/pkg/scheduler"
)

func newGenerateCommand(cfg *config.Configuration) *cobra.Command {
	var upload bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a dataset into per-customer collection documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if upload && cfg.Upload.Target == "" {
				return errors.New("--upload needs --target")
			}

			ds, err := loadDataSet(cfg.Generator.DatasetFile)
			if err != nil {
				return err
			}

			var upCfg config.Upload
			if upload {
				upCfg = cfg.Upload
			}
			uploader, err := newUploader(upCfg)
			if err != nil {
				return err
			}

			sched := scheduler.NewScheduler(cfg.Generator.NumWorkers)
			defer sched.Close()

			generation := services.NewGenerationService(sched, nil, uploader, cfg.Generator.OutputDir, services.SystemClock{})
			status, err := generation.Run(cmd.Context(), ds)
			if err != nil {
				return err
			}

			printStatus(status)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Generator.DatasetFile, "dataset", cfg.Generator.DatasetFile, "YAML or JSON dataset, the built-in dataset when empty")
	cmd.Flags().StringVar(&cfg.Generator.OutputDir, "output", cfg.Generator.OutputDir, "root directory of the generated customers")
	cmd.Flags().IntVar(&cfg.Generator.NumWorkers, "workers", cfg.Generator.NumWorkers, "customers generated in parallel")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the output directory once generated")
	registerUploadFlags(cmd.Flags(), &cfg.Upload)

	return cmd
}

func loadDataSet(path string) (generator.DataSet, error) {
	if path == "" {
		return generator.DefaultDataSet(), nil
	}
	return generator.LoadDataSet(path)
}

func printStatus(status models.GeneratorStatus) {
	bold := color.New(color.Bold)
	bold.Fprintf(os.Stdout, "%s ", status.State)
	fmt.Fprintf(os.Stdout, "run %s: %d customers, %d documents in %s\n", status.RunID, len(status.Customers), status.Documents, status.OutputDir)
	for _, c := range status.Customers {
		color.New(color.FgCyan).Fprintf(os.Stdout, "  %s\n", c)
	}
}
