// Package main provides the CLI entry point for analyze-excel.
package main

import (
	"os"

	"github.com/OrryLee/mission-scheduling-system/internal/config"
	"github.com/OrryLee/mission-scheduling-system/internal/logging"
	"github.com/OrryLee/mission-scheduling-system/pkg/inspect"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze-excel [input.xlsx]",
		Short: "Print the structure of an Excel workbook",
		Long: `analyze-excel prints sheet names, dimensions, column names, inferred
column types, the first rows and sample values of every sheet in a workbook.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Config file (YAML)")
	flags.String("file", config.DefaultWorkbook, "Workbook to analyze")
	flags.Int("preview-rows", 5, "Number of data rows shown per sheet")
	flags.Int("samples", 3, "Number of sample values shown per column")
	flags.String("mode", string(inspect.ModeStandard), "Inspection mode: light, standard, verbose")
	flags.Bool("json", false, "Print the report as JSON")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadInspector(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.File = args[0]
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	mode, _ := inspect.ParseMode(cfg.Mode)
	opts := inspect.Options{
		Mode:         mode,
		PreviewRows:  cfg.PreviewRows,
		SampleValues: cfg.Samples,
		Logger:       log,
	}

	// A workbook that cannot be analyzed is reported, not returned.
	outcome := inspect.Analyze(cfg.File, opts)
	if !outcome.OK() {
		log.Error().Err(outcome.Err).Str("file", cfg.File).Msg("analysis failed")
	}

	if cfg.JSON {
		return outcome.RenderJSON(cmd.OutOrStdout(), true)
	}
	outcome.Render(cmd.OutOrStdout())
	return nil
}
