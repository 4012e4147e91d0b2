// Package main provides the CLI entry point for locnorm.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/locnorm-go/pkg/locnorm"
)

var (
	inPlace    bool
	check      bool
	explain    bool
	xlsxOutput string
	exitCode   int
)

func main() {
	setupLogging()

	if err := newRootCmd().Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func setupLogging() {
	if os.Getenv("LOCNORM_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if os.Getenv("LOCNORM_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.WarnLevel)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "locnorm [locations.json]",
		Short: "Normalize absolute map locations based on era",
		Long: `locnorm regenerates the "All Eras" map locations of every leaf
location from its era-relative map locations.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Modify file in-place (overwrites file)")
	rootCmd.Flags().BoolVarP(&check, "check", "k", false, "Return non-zero exit if needs updates")
	rootCmd.Flags().BoolVarP(&explain, "explain", "x", false, "Explain updates to be made")

	exportCmd := &cobra.Command{
		Use:   "export [locations.json]",
		Short: "Write normalized coordinates to an xlsx workbook, one sheet per map",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&xlsxOutput, "output", "o", "locations.xlsx", "Output workbook path")

	checkJSONCmd := &cobra.Command{
		Use:   "checkjson [dir]",
		Short: "Check that every JSON file under dir is loadable",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheckJSON,
	}

	rootCmd.AddCommand(exportCmd, checkJSONCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := locnorm.Options{
		InPlace: inPlace,
		Check:   check,
		Explain: explain,
	}

	result, err := locnorm.Run(inputPath, opts, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}
	exitCode = result.ExitCode()
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := locnorm.Export(args[0], xlsxOutput); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", xlsxOutput)
	return nil
}

func runCheckJSON(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return locnorm.CheckJSON(root)
}
