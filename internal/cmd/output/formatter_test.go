package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: "  "}

	err := f.Format(&buf, map[string]int{"cases": 42})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"cases": 42`)
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, Data{
		Headers: []string{"fiscal year", "certified"},
		Rows:    [][]string{{"2019", "72345"}, {"2020", "58112"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "72345")
}

func TestTableFormatterStructSlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	rows := []struct {
		CaseNumber string `json:"case_number"`
		Year       int    `json:"fiscal_year"`
	}{
		{"A-100", 2021},
	}

	err := f.Format(&buf, rows)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Case Number", "headers derive from json tags")
	assert.Contains(t, out, "A-100")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, map[string]string{"key": "value"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), `"key"`))
}
