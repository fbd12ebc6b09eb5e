package pipeline

import (
	"encoding/csv"
	"encoding/gob"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/permclean/pkg/constants"
	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/normalize"
	"github.com/agentstation/permclean/pkg/schema"
)

// Each statistics artifact is written twice: a gob blob for fast reload by
// the stats command, and a CSV rendering for spreadsheet users.

// SaveStatusCounts writes the per-year status counts artifact. The CSV has
// one row per fiscal year with the accepted statuses first, then every other
// observed status sorted.
func SaveStatusCounts(dir string, s dataset.StatusCounts, accepted []string) error {
	if err := writeGob(filepath.Join(dir, constants.StatusCountsName+constants.GobExt), s); err != nil {
		return err
	}

	statuses := s.Statuses(accepted)
	header := append([]string{"fiscal_year"}, statuses...)
	records := [][]string{header}
	for _, year := range s.Years() {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(year))
		for _, status := range statuses {
			row = append(row, strconv.Itoa(s[year][status]))
		}
		records = append(records, row)
	}
	return writeCSV(filepath.Join(dir, constants.StatusCountsName+constants.CSVExt), records)
}

// LoadStatusCounts reads a status counts artifact written by SaveStatusCounts.
func LoadStatusCounts(dir string) (dataset.StatusCounts, error) {
	var s dataset.StatusCounts
	if err := readGob(filepath.Join(dir, constants.StatusCountsName+constants.GobExt), &s); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveAvailability writes an availability artifact under the given name. The
// CSV has one row per fiscal year and one column per canonical field; a cell
// is empty when the field was absent from that year's data.
func SaveAvailability(dir, name string, a dataset.AvailabilityTable) error {
	if err := writeGob(filepath.Join(dir, name+constants.GobExt), a); err != nil {
		return err
	}

	fields := schema.Fields()
	header := make([]string, 0, len(fields)+1)
	header = append(header, "fiscal_year")
	for _, f := range fields {
		header = append(header, f.String())
	}
	records := [][]string{header}
	for _, year := range a.Years() {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(year))
		for _, f := range fields {
			ratio, ok := a[year][f]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(ratio, 'f', -1, 64))
		}
		records = append(records, row)
	}
	return writeCSV(filepath.Join(dir, name+constants.CSVExt), records)
}

// LoadAvailability reads an availability artifact written by SaveAvailability.
func LoadAvailability(dir, name string) (dataset.AvailabilityTable, error) {
	var a dataset.AvailabilityTable
	if err := readGob(filepath.Join(dir, name+constants.GobExt), &a); err != nil {
		return nil, err
	}
	return a, nil
}

// SaveTable writes the cleaned dataset artifact. The CSV columns follow the
// table's field order; missing values render as empty cells.
func SaveTable(dir string, t *dataset.Table) error {
	if err := writeGob(filepath.Join(dir, constants.PermName+constants.GobExt), t); err != nil {
		return err
	}

	header := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		header = append(header, f.String())
	}
	records := make([][]string, 0, t.Len()+1)
	records = append(records, header)
	for _, r := range t.Rows {
		row := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			row = append(row, r.Get(f).String())
		}
		records = append(records, row)
	}
	return writeCSV(filepath.Join(dir, constants.PermName+constants.CSVExt), records)
}

// LoadTable reads a dataset artifact written by SaveTable.
func LoadTable(dir string) (*dataset.Table, error) {
	var t dataset.Table
	if err := readGob(filepath.Join(dir, constants.PermName+constants.GobExt), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveBadValues writes the unnormalizable-value report as YAML, one block
// per column mapping each raw value to its occurrence count. Nothing is
// written when the report is empty.
func SaveBadValues(dir string, report normalize.Report) error {
	if report.Total() == 0 {
		return nil
	}

	out := make(map[string]map[string]int, len(report))
	for field, freq := range report {
		values := make(map[string]int, len(freq))
		for value, n := range freq {
			values[value] = n
		}
		out[field.String()] = values
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapIO("encode", constants.BadValuesName, err)
	}
	path := filepath.Join(dir, constants.BadValuesName)
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// LoadBadValues reads a report written by SaveBadValues.
func LoadBadValues(dir string) (normalize.Report, error) {
	path := filepath.Join(dir, constants.BadValuesName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var raw map[string]map[string]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	report := make(normalize.Report, len(raw))
	for field, freq := range raw {
		report[schema.Field(field)] = freq
	}
	return report, nil
}

// BadValueColumns returns the report's columns sorted by name, for stable
// rendering.
func BadValueColumns(report normalize.Report) []schema.Field {
	fields := make([]schema.Field, 0, len(report))
	for f := range report {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

func writeCSV(path string, records [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func writeGob(path string, v any) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return errors.WrapIO("encode", path, err)
	}
	return nil
}

func readGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return errors.WrapParse("gob", path, err)
	}
	return nil
}
