package main

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/store"
	"github.com/kubev2v/panorama-mock/pkg/transport"
)

const envPrefix = "PANORAMA"

func newRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	var configFile string

	root := &cobra.Command{
		Use:           "panorama-mock",
		Short:         "Generate, load and serve synthetic storage telemetry",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags win over PANORAMA_* variables, which win over the config file.
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			applyConfigFile(&configFile),
			func(*cobra.Command, []string) error { return setupLogging(cfg) },
		),
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML file holding flag values keyed by flag name")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newGenerateCommand(cfg),
		newLoadCommand(cfg),
		newServeCommand(cfg),
		newReportCommand(cfg),
		newUploadCommand(cfg),
		newTokenCommand(cfg),
	)

	return root
}

func applyConfigFile(path *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if *path == "" {
			return nil
		}

		v := viper.New()
		v.SetConfigFile(*path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", *path, err)
		}

		var errs error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed || !v.IsSet(f.Name) {
				return
			}
			if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
				errs = errors.Join(errs, fmt.Errorf("config file key %s: %w", f.Name, err))
			}
		})
		return errs
	}
}

func setupLogging(cfg *config.Configuration) error {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	var zc zap.Config
	switch cfg.LogFormat {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func registerStoreFlags(fs *pflag.FlagSet, cfg *config.Store) {
	fs.StringVar(&cfg.Path, "db", cfg.Path, `DuckDB file holding the facts, ":memory:" for a throwaway store`)
}

func registerUploadFlags(fs *pflag.FlagSet, cfg *config.Upload) {
	fs.StringVar(&cfg.Target, "target", cfg.Target, "upload target: sftp://user@host:22/path or https://host/path")
	fs.StringVar(&cfg.Password, "sftp-password", cfg.Password, "SFTP password")
	fs.StringVar(&cfg.KeyFile, "sftp-key-file", cfg.KeyFile, "SFTP private key file")
	fs.StringVar(&cfg.Token, "upload-token", cfg.Token, "bearer token of the HTTP collector")
	fs.UintVar(&cfg.MaxTries, "upload-max-tries", cfg.MaxTries, "attempts per file")
	fs.DurationVar(&cfg.Timeout, "upload-timeout", cfg.Timeout, "bound of a single upload attempt")
}

func registerAuthFlags(fs *pflag.FlagSet, cfg *config.Authentication) {
	fs.StringVar(&cfg.Secret, "auth-secret", cfg.Secret, "HMAC key of the bearer tokens")
	fs.StringVar(&cfg.Issuer, "auth-issuer", cfg.Issuer, "issuer of the bearer tokens")
}

func openStore(cmd *cobra.Command, cfg config.Store) (*store.Store, error) {
	db, err := store.NewDB(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Path, err)
	}

	st := store.NewStore(db)
	if err := st.Migrate(cmd.Context()); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", cfg.Path, err)
	}
	return st, nil
}

// newUploader returns nil when no target is configured.
func newUploader(cfg config.Upload) (transport.Uploader, error) {
	if cfg.Target == "" {
		return nil, nil
	}
	return transport.New(cfg.Target, transport.Options{
		Password: cfg.Password,
		KeyFile:  cfg.KeyFile,
		Token:    cfg.Token,
		MaxTries: cfg.MaxTries,
		Timeout:  cfg.Timeout,
	})
}
