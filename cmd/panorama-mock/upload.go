package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/panorama-mock/internal/config"
)

func newUploadCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a generated tree to a remote collector",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Upload.Target == "" {
				return errors.New("--target is required")
			}
			uploader, err := newUploader(cfg.Upload)
			if err != nil {
				return err
			}
			if err := uploader.Upload(cmd.Context(), cfg.Generator.OutputDir); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(os.Stdout, "uploaded %s\n", cfg.Generator.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Generator.OutputDir, "dir", cfg.Generator.OutputDir, "generated tree to upload")
	registerUploadFlags(cmd.Flags(), &cfg.Upload)

	return cmd
}
