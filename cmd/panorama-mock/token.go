package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/server"
)

func newTokenCommand(cfg *config.Configuration) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token accepted by serve --auth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Auth.Secret == "" {
				return errors.New("--auth-secret is required")
			}

			token, err := server.NewToken([]byte(cfg.Auth.Secret), cfg.Auth.Issuer, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}

	registerAuthFlags(cmd.Flags(), &cfg.Auth)
	cmd.Flags().StringVar(&subject, "subject", "panorama-client", "sub claim of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "lifetime of the token")

	return cmd
}
