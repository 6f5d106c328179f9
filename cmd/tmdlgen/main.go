// Package main provides the CLI entry point for tmdlgen.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/OrryLee/mission-scheduling-system/internal/config"
	"github.com/OrryLee/mission-scheduling-system/internal/logging"
	"github.com/OrryLee/mission-scheduling-system/pkg/tmdl"
	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tmdlgen",
		Short: "Generate the Mission Scheduling semantic model",
		Long: `tmdlgen writes a TMDL semantic model definition for the Mission Scheduling
SharePoint lists: tables, columns, partitions, a date table, relationships
and measures.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Config file (YAML)")
	flags.String("site-url", config.DefaultSiteURL, "SharePoint site the partitions read from")
	flags.StringP("output", "o", config.DefaultOutput, "Output file path")
	flags.String("schema", "", "Schema file replacing the built-in Mission Scheduling schema")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadGenerator(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	schema := tmdl.DefaultSchema()
	if cfg.Schema != "" {
		if schema, err = tmdl.LoadSchema(cfg.Schema); err != nil {
			return fmt.Errorf("load schema: %w", err)
		}
		log.Debug().Str("schema", cfg.Schema).Msg("schema loaded")
	}

	content, err := tmdl.Generate(schema, cfg.SiteURL)
	if err != nil {
		return fmt.Errorf("generate model: %w", err)
	}

	if err := tmdl.WriteFile(cfg.Output, content); err != nil {
		return err
	}
	log.Info().
		Str("output", cfg.Output).
		Int("tables", len(schema.Tables)).
		Int("bytes", len(content)).
		Msg("model written")

	writeSummary(cmd.OutOrStdout(), summary{
		Output:    cfg.Output,
		Model:     schema.Model.Name,
		SiteURL:   cfg.SiteURL,
		Generated: now(),
	})
	return nil
}
