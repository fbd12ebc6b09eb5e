package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/permclean/internal/cmd/globals"
	"github.com/agentstation/permclean/internal/cmd/output"
	"github.com/agentstation/permclean/pkg/pipeline"
)

var (
	runInput   string
	runOutput  string
	runNoCache bool
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean the disclosure files and write the dataset artifacts",
	Long: `Run reads every disclosure spreadsheet in the input directory whose
name carries a fiscal year (for example PERM_Disclosure_Data_FY17.xlsx),
keeps the certified cases, deduplicates repeat filings to the latest
fiscal year, and normalizes states, postal codes, wages, and pay units.

It writes the cleaned dataset (perm), per-year status counts
(status_counts), and column availability tables (availability,
availability1) to the output directory, each as both a binary blob and a
CSV file. Values that resisted normalization are collected into
bad_values.yaml with their occurrence counts.`,
	Example: `  permclean run --input ./data
  permclean run -i ./data --out ./clean
  permclean run -i ./data --no-cache`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Directory holding the raw .xlsx disclosure files")
	runCmd.Flags().StringVar(&runOutput, "out", "", "Directory for the artifacts (default: input directory)")
	runCmd.Flags().BoolVar(&runNoCache, "no-cache", false, "Skip the serialized raw-table cache")

	if err := viper.BindPFlag("input", runCmd.Flags().Lookup("input")); err != nil {
		panic(fmt.Sprintf("Failed to bind input flag: %v", err))
	}
	if err := viper.BindPFlag("out", runCmd.Flags().Lookup("out")); err != nil {
		panic(fmt.Sprintf("Failed to bind out flag: %v", err))
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	input := runInput
	if input == "" {
		input = viper.GetString("input")
	}
	if input == "" {
		return fmt.Errorf("no input directory: pass --input or set input in the config file")
	}
	out := runOutput
	if out == "" {
		out = viper.GetString("out")
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		InputDir:  input,
		OutputDir: out,
		Cache:     !runNoCache,
	})
	if err != nil {
		return err
	}

	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	summary := struct {
		FilesRead    int `json:"files_read"`
		FilesSkipped int `json:"files_skipped"`
		RowsKept     int `json:"rows_kept"`
		Cases        int `json:"cases"`
		BadValues    int `json:"bad_values"`
	}{
		FilesRead:    result.FilesRead,
		FilesSkipped: result.FilesSkipped,
		RowsKept:     result.RowsKept,
		Cases:        result.Cases,
		BadValues:    result.BadValues.Total(),
	}
	return output.NewFormatter(format).Format(os.Stdout, summary)
}
