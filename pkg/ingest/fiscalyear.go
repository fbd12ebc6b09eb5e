package ingest

import (
	"regexp"
	"strconv"
)

// fyPattern matches the fiscal year embedded in source file names,
// e.g. PERM_FY2021.xlsx or PERM_FY14.xlsx.
var fyPattern = regexp.MustCompile(`FY(\d+)`)

// FiscalYearFromFilename extracts the fiscal year from a file name.
// Two-digit years are interpreted as 20xx (14 means 2014). The second
// return is false when the name carries no fiscal year; callers skip
// such files rather than treating them as an error.
func FiscalYearFromFilename(filename string) (int, bool) {
	m := fyPattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if year < 2000 {
		year += 2000
	}
	return year, true
}
