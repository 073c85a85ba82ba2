package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/kubev2v/panorama-mock/api/v1"
	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/handlers"
	"github.com/kubev2v/panorama-mock/internal/server"
	"github.com/kubev2v/panorama-mock/internal/services"
	"github.com/kubev2v/panorama-mock/pkg/scheduler"
)

func newServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API over a fact store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := zap.S().Named("serve")
			log.Infow("configuration", "config", cfg.DebugMap())

			st, err := openStore(cmd, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			uploader, err := newUploader(cfg.Upload)
			if err != nil {
				return err
			}

			sched := scheduler.NewScheduler(cfg.Generator.NumWorkers)
			defer sched.Close()

			clock := services.SystemClock{}
			generation := services.NewGenerationService(sched, st, uploader, cfg.Generator.OutputDir, clock)
			defer generation.Stop()
			if err := generation.Restore(cmd.Context()); err != nil {
				return err
			}

			h := handlers.New(
				services.NewVolumeService(st, clock),
				services.NewSnapshotService(st, clock),
				services.NewCloneService(st, clock),
				services.NewApplicationService(st),
				services.NewInventoryService(st, clock),
				generation,
			)

			srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}

			g, gCtx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return srv.Start(gCtx)
			})
			g.Go(func() error {
				<-gCtx.Done()
				ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				return srv.Stop(ctx)
			})

			return g.Wait()
		},
	}

	registerStoreFlags(cmd.Flags(), &cfg.Store)
	cmd.Flags().IntVar(&cfg.Server.HTTPPort, "port", cfg.Server.HTTPPort, "HTTP listen port")
	cmd.Flags().StringVar(&cfg.Server.ServerMode, "mode", cfg.Server.ServerMode, "server mode: dev or prod")
	cmd.Flags().DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", cfg.Server.ShutdownTimeout, "grace period of in-flight requests")
	cmd.Flags().StringVar(&cfg.Generator.OutputDir, "output", cfg.Generator.OutputDir, "output directory of POST /generator runs")
	cmd.Flags().IntVar(&cfg.Generator.NumWorkers, "workers", cfg.Generator.NumWorkers, "customers generated in parallel")
	cmd.Flags().BoolVar(&cfg.Auth.Enabled, "auth", cfg.Auth.Enabled, "require a bearer JWT on /api/v1")
	registerAuthFlags(cmd.Flags(), &cfg.Auth)
	registerUploadFlags(cmd.Flags(), &cfg.Upload)

	return cmd
}
