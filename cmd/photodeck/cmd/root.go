// Package cmd wires the photodeck subcommands. Every command talks to the
// backend through one shared Connection and session Manager, built once
// before the command runs.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/photodeck/photodeck-go/api/client"
	"github.com/photodeck/photodeck-go/credstore"
	"github.com/photodeck/photodeck-go/internal/config"
	"github.com/photodeck/photodeck-go/sessions"
)

var (
	cfg     *config.Config
	session *sessions.Manager
	conn    *client.Connection
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "photodeck",
	Short: "Terminal front end for the PhotoDeck platform",
	Long: `photodeck is the terminal front end of the PhotoDeck photo-processing
platform: sign in, pick a tenant, upload images, trigger processing and
follow task status.

Environment Variables:
  PHOTODECK_API_BASE_URL   Backend API URL (default: http://127.0.0.1:8001/api)
  PHOTODECK_TENANT_SLUG    Fixed tenant slug override
  PHOTODECK_ROOT_DOMAIN    Platform root domain for tenant resolution
  PHOTODECK_APP_SUBDOMAIN  Reserved app host label (default: app)
  PHOTODECK_API_SUBDOMAIN  Reserved api host label (default: api)
  PHOTODECK_HOSTNAME       Host used for tenant resolution (default: API base URL host)
  PHOTODECK_CONFIG_DIR     Credential directory (default: ~/.photodeck)
  PHOTODECK_LOG_LEVEL      Log level (default: info)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initDependencies()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		figure.NewFigure("PhotoDeck", "cybermedium", true).Print()
		fmt.Println()
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initDependencies() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	tokens := credstore.NewTokenStore(cfg.ConfigDir)
	tenantIDs := credstore.NewTenantStore(cfg.ConfigDir)
	session = sessions.NewManager(tokens, tenantIDs)
	conn = client.NewConnection(cfg, session)
	conn.SetUnauthorizedHook(func() {
		fmt.Fprintln(os.Stderr, "session expired; run `photodeck login` to sign in again")
	})
	return nil
}
