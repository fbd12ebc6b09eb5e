package dataset

import (
	"strings"
	"testing"

	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/schema"
)

func TestDeduplicateKeepsLatestYear(t *testing.T) {
	tbl := NewTable(schema.FieldCaseNumber, schema.FieldFiscalYear, schema.FieldJobState)
	tbl.Append(row("A100", 2019, Record{schema.FieldJobState: String("CA")}))
	tbl.Append(row("A100", 2021, Record{schema.FieldJobState: String("TX")}))
	tbl.Append(row("B200", 2020, nil))

	out, err := tbl.Deduplicate()
	if err != nil {
		t.Fatalf("Deduplicate() error: %v", err)
	}

	if out.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", out.Len())
	}
	var a100 Record
	for _, r := range out.Rows {
		if r.CaseNumber() == "A100" {
			a100 = r
		}
	}
	if a100 == nil {
		t.Fatal("A100 missing from deduplicated table")
	}
	if a100.FiscalYear() != 2021 {
		t.Errorf("surviving A100 year = %d, want 2021", a100.FiscalYear())
	}
	if got := a100.Get(schema.FieldJobState).String(); got != "TX" {
		t.Errorf("surviving A100 job_state = %q, want TX", got)
	}

	// The input table is not modified.
	if tbl.Len() != 3 {
		t.Errorf("input table mutated, Len() = %d", tbl.Len())
	}
}

func TestDeduplicateRejectsDuplicateCaseYear(t *testing.T) {
	tbl := NewTable(schema.FieldCaseNumber, schema.FieldFiscalYear)
	tbl.Append(row("A100", 2019, nil))
	tbl.Append(row("A100", 2019, nil))

	_, err := tbl.Deduplicate()
	if err == nil {
		t.Fatal("expected integrity error for duplicate (case, year) pair")
	}
	if !errors.IsIntegrityError(err) {
		t.Errorf("expected IntegrityError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "A100") {
		t.Errorf("error should name the offending case: %v", err)
	}
}

func TestValidateUniqueCaseYearOK(t *testing.T) {
	tbl := NewTable(schema.FieldCaseNumber, schema.FieldFiscalYear)
	tbl.Append(row("A100", 2019, nil))
	tbl.Append(row("A100", 2020, nil))
	tbl.Append(row("B200", 2019, nil))

	if err := tbl.ValidateUniqueCaseYear(); err != nil {
		t.Errorf("ValidateUniqueCaseYear() = %v, want nil", err)
	}
}

func TestStatusCounts(t *testing.T) {
	s := make(StatusCounts)
	s.Add(2019, "certified", 10)
	s.Add(2019, "denied", 3)
	s.Add(2020, "certified", 7)
	s.Add(2019, "certified", 5)

	if s[2019]["certified"] != 15 {
		t.Errorf("2019 certified = %d, want 15", s[2019]["certified"])
	}
	if got := s.Years(); len(got) != 2 || got[0] != 2019 || got[1] != 2020 {
		t.Errorf("Years() = %v", got)
	}

	columns := s.Statuses([]string{"certified", "certified-expired"})
	want := []string{"certified", "certified-expired", "denied"}
	if len(columns) != len(want) {
		t.Fatalf("Statuses() = %v, want %v", columns, want)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Errorf("Statuses()[%d] = %q, want %q", i, columns[i], want[i])
		}
	}
}

func TestStatusCountsMerge(t *testing.T) {
	a := make(StatusCounts)
	a.Add(2019, "certified", 1)
	b := make(StatusCounts)
	b.Add(2019, "certified", 2)
	b.Add(2021, "withdrawn", 1)

	a.Merge(b)
	if a[2019]["certified"] != 3 {
		t.Errorf("merged 2019 certified = %d, want 3", a[2019]["certified"])
	}
	if a[2021]["withdrawn"] != 1 {
		t.Errorf("merged 2021 withdrawn = %d, want 1", a[2021]["withdrawn"])
	}
}
