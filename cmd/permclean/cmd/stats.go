package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/agentstation/permclean/internal/cmd/globals"
	"github.com/agentstation/permclean/internal/cmd/output"
	"github.com/agentstation/permclean/pkg/constants"
	"github.com/agentstation/permclean/pkg/pipeline"
	"github.com/agentstation/permclean/pkg/schema"
)

var statsDir string

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats [statuses|availability|availability1|bad-values]",
	Short: "Show statistics from a previous run",
	Long: `Stats renders one of the statistics artifacts written by run:

  statuses       case counts per fiscal year and certification status
  availability   per-column non-missing ratios per source file
  availability1  per-column non-missing ratios of the cleaned dataset
  bad-values     values that resisted normalization, with counts`,
	Example: `  permclean stats statuses --dir ./clean
  permclean stats availability1 --dir ./clean -o yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"statuses", "availability", "availability1", "bad-values"},
	RunE:      runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDir, "dir", "d", ".", "Directory holding the artifacts")
}

func runStats(cmd *cobra.Command, args []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	switch args[0] {
	case "statuses":
		return renderStatuses(formatter, format)
	case "availability":
		return renderAvailability(formatter, format, constants.AvailabilityName)
	case "availability1":
		return renderAvailability(formatter, format, constants.Availability1Name)
	case "bad-values":
		return renderBadValues(formatter, format)
	default:
		return fmt.Errorf("unknown artifact %q", args[0])
	}
}

func renderStatuses(formatter output.Formatter, format output.Format) error {
	counts, err := pipeline.LoadStatusCounts(statsDir)
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return formatter.Format(os.Stdout, counts)
	}

	statuses := counts.Statuses(schema.Default().AcceptedStatuses())
	data := output.Data{
		Headers:         append([]string{"fiscal year"}, statuses...),
		ColumnAlignment: rightAligned(len(statuses) + 1),
	}
	for _, year := range counts.Years() {
		row := []string{strconv.Itoa(year)}
		for _, status := range statuses {
			row = append(row, strconv.Itoa(counts[year][status]))
		}
		data.Rows = append(data.Rows, row)
	}
	return formatter.Format(os.Stdout, data)
}

func renderAvailability(formatter output.Formatter, format output.Format, name string) error {
	avail, err := pipeline.LoadAvailability(statsDir, name)
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return formatter.Format(os.Stdout, avail)
	}

	// One row per column reads better than the 30-odd column CSV layout.
	years := avail.Years()
	header := []string{"column"}
	for _, year := range years {
		header = append(header, strconv.Itoa(year))
	}
	data := output.Data{Headers: header, ColumnAlignment: rightAligned(len(header))}
	data.ColumnAlignment[0] = tw.AlignLeft
	for _, field := range schema.Fields() {
		row := []string{field.String()}
		present := false
		for _, year := range years {
			ratio, ok := avail[year][field]
			if !ok {
				row = append(row, "")
				continue
			}
			present = true
			row = append(row, strconv.FormatFloat(ratio, 'f', 3, 64))
		}
		if present {
			data.Rows = append(data.Rows, row)
		}
	}
	return formatter.Format(os.Stdout, data)
}

func renderBadValues(formatter output.Formatter, format output.Format) error {
	report, err := pipeline.LoadBadValues(statsDir)
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return formatter.Format(os.Stdout, report)
	}

	data := output.Data{
		Headers:         []string{"column", "value", "count"},
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight},
	}
	for _, field := range pipeline.BadValueColumns(report) {
		freq := report[field]
		values := make([]string, 0, len(freq))
		for value := range freq {
			values = append(values, value)
		}
		// Most frequent first, ties by value.
		sort.Slice(values, func(i, j int) bool {
			if freq[values[i]] != freq[values[j]] {
				return freq[values[i]] > freq[values[j]]
			}
			return values[i] < values[j]
		})
		for _, value := range values {
			data.Rows = append(data.Rows, []string{
				field.String(), value, strconv.Itoa(freq[value]),
			})
		}
	}
	return formatter.Format(os.Stdout, data)
}

func rightAligned(n int) []tw.Align {
	aligns := make([]tw.Align, n)
	for i := range aligns {
		aligns[i] = tw.AlignRight
	}
	return aligns
}
