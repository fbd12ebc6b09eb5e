package normalize

import (
	"testing"

	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/schema"
)

func TestStateNormalizer(t *testing.T) {
	n := NewStateNormalizer()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"California", "CA", true},
		{"CALIFORNIA", "CA", true},
		{"CA", "CA", true},
		{"tx 1234", "TX", true},
		{"New York City", "NY", true},
		{"West Virginia", "WV", true},
		{"Virgin Islands", "VI", true},
		{"U.S. Virgin Islands", "VI", true},
		{"District of Columbia", "DC", true},
		{"  Texas  ", "TX", true},
		{"Unknownstan", "", false},
		{"12345", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := n.Normalize(dataset.String(tt.in))
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if tt.ok && got.String() != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
			if !tt.ok && !got.IsMissing() {
				t.Errorf("Normalize(%q) should be missing, got %q", tt.in, got.String())
			}
		})
	}
}

func TestStateNormalizerLongestPrefixWins(t *testing.T) {
	n := NewStateNormalizer()

	// "West Virginia" must not match the shorter "Virginia".
	got, ok := n.Normalize(dataset.String("West Virginia 26101"))
	if !ok || got.String() != "WV" {
		t.Errorf("Normalize(West Virginia 26101) = (%q, %v), want (WV, true)", got.String(), ok)
	}
}

func TestStateNormalizerMissingPassthrough(t *testing.T) {
	n := NewStateNormalizer()
	got, ok := n.Normalize(dataset.None)
	if !ok || !got.IsMissing() {
		t.Error("missing input should pass through as missing without failing")
	}
}

func TestPostalNormalizer(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"90210-1234", "90210", true},
		{"90210", "90210", true},
		{"7", "00007", true},
		{"zip 123", "00123", true},
		{"123456789", "12345", true},
		{"abc", "", false},
		{"-", "", false},
	}

	n := Postal{}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := n.Normalize(dataset.String(tt.in))
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if tt.ok && got.String() != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestWageNormalizer(t *testing.T) {
	n := Wage{}

	tests := []struct {
		name string
		in   dataset.Value
		want float64
		ok   bool
	}{
		{"comma separated", dataset.String("45,000"), 45000, true},
		{"decimal", dataset.String("60000.50"), 60000.50, true},
		{"already numeric", dataset.Number(60000), 60000, true},
		{"not a number", dataset.String("N/A"), 0, false},
		{"empty after strip", dataset.String(","), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if tt.ok {
				if f, _ := got.Float(); f != tt.want {
					t.Errorf("Normalize() = %v, want %v", f, tt.want)
				}
			} else if !got.IsMissing() {
				t.Error("failed normalization should yield missing")
			}
		})
	}
}

func TestPayUnitNormalizer(t *testing.T) {
	n := NewPayUnitNormalizer()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Year", "YR", true},
		{"Yearly", "YR", true},
		{"yr", "YR", true},
		{"Month", "MTH", true},
		{"Bi-Weekly", "BI", true},
		{"biweekly", "BI", true},
		{"Week", "WK", true},
		{"Weekly", "WK", true},
		{"Hour", "HR", true},
		{"hourly", "HR", true},
		{"lump sum", "", false},
		{"per diem", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := n.Normalize(dataset.String(tt.in))
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if tt.ok && got.String() != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestNumericNormalizer(t *testing.T) {
	n := Numeric{}

	if got, ok := n.Normalize(dataset.String("2014")); !ok || got.Kind != dataset.KindNumber {
		t.Errorf("Normalize(2014) = (%v, %v)", got, ok)
	}
	if got, ok := n.Normalize(dataset.String("n/a")); ok || !got.IsMissing() {
		t.Errorf("Normalize(n/a) = (%v, %v), want missing failure", got, ok)
	}
	if got, ok := n.Normalize(dataset.Number(12)); !ok || got.Num != 12 {
		t.Errorf("numeric passthrough = (%v, %v)", got, ok)
	}
}

func TestUpperTextNormalizer(t *testing.T) {
	n := UpperText{}

	if got, _ := n.Normalize(dataset.String("Software Engineer")); got.String() != "SOFTWARE ENGINEER" {
		t.Errorf("Normalize() = %q", got.String())
	}
	if got, ok := n.Normalize(dataset.None); !ok || !got.IsMissing() {
		t.Error("missing should pass through")
	}
}

func TestIdempotence(t *testing.T) {
	normalizers := map[string]struct {
		n      Normalizer
		inputs []dataset.Value
	}{
		"state":   {NewStateNormalizer(), []dataset.Value{dataset.String("California"), dataset.String("tx 1234"), dataset.String("Unknownstan")}},
		"postal":  {Postal{}, []dataset.Value{dataset.String("90210-1234"), dataset.String("7"), dataset.String("abc")}},
		"wage":    {Wage{}, []dataset.Value{dataset.String("45,000"), dataset.Number(60000), dataset.String("N/A")}},
		"payunit": {NewPayUnitNormalizer(), []dataset.Value{dataset.String("Yearly"), dataset.String("biweekly"), dataset.String("lump sum")}},
		"numeric": {Numeric{}, []dataset.Value{dataset.String("2014"), dataset.String("bad")}},
		"upper":   {UpperText{}, []dataset.Value{dataset.String("Austin"), dataset.Number(3)}},
	}

	for name, tc := range normalizers {
		t.Run(name, func(t *testing.T) {
			for _, in := range tc.inputs {
				once, _ := tc.n.Normalize(in)
				twice, ok := tc.n.Normalize(once)
				if !once.Equal(twice) {
					t.Errorf("not idempotent for %q: first %v, second %v", in.String(), once, twice)
				}
				if !ok && !once.IsMissing() {
					t.Errorf("re-normalizing canonical %v reported failure", once)
				}
			}
		})
	}
}

func TestApplyCollectsBadValues(t *testing.T) {
	tbl := dataset.NewTable(schema.FieldJobState)
	for _, s := range []string{"California", "Unknownstan", "Unknownstan", "tx"} {
		tbl.Append(dataset.Record{schema.FieldJobState: dataset.String(s)})
	}
	tbl.Append(dataset.Record{schema.FieldJobState: dataset.None})

	report := Apply(tbl, schema.StateFields(), NewStateNormalizer())

	if got := report[schema.FieldJobState]["Unknownstan"]; got != 2 {
		t.Errorf("bad count for Unknownstan = %d, want 2", got)
	}
	if len(report[schema.FieldJobState]) != 1 {
		t.Errorf("unexpected bad values: %v", report[schema.FieldJobState])
	}
	if report.Total() != 2 {
		t.Errorf("Total() = %d, want 2", report.Total())
	}

	// Good and bad rows alike end up canonical or missing.
	if got := tbl.Rows[0].Get(schema.FieldJobState).String(); got != "CA" {
		t.Errorf("row 0 = %q, want CA", got)
	}
	if !tbl.Rows[1].Get(schema.FieldJobState).IsMissing() {
		t.Error("bad value should be replaced by the missing marker")
	}
}

func TestApplySkipsAbsentColumns(t *testing.T) {
	tbl := dataset.NewTable(schema.FieldCaseNumber)
	tbl.Append(dataset.Record{schema.FieldCaseNumber: dataset.String("A-1")})

	report := Apply(tbl, schema.StateFields(), NewStateNormalizer())
	if len(report) != 0 {
		t.Errorf("absent columns should produce no report entries: %v", report)
	}
}

func TestCanonicalize(t *testing.T) {
	tbl := dataset.NewTable(
		schema.FieldCaseNumber,
		schema.FieldFiscalYear,
		schema.FieldJobState,
		schema.FieldJobPostalCode,
		schema.FieldPrevailingWage,
		schema.FieldPrevailingWageUnit,
		schema.FieldJobTitle,
	)
	tbl.Append(dataset.Record{
		schema.FieldCaseNumber:         dataset.String("a-100"),
		schema.FieldFiscalYear:         dataset.Number(2021),
		schema.FieldJobState:           dataset.String("California"),
		schema.FieldJobPostalCode:      dataset.String("90210-1234"),
		schema.FieldPrevailingWage:     dataset.String("45,000"),
		schema.FieldPrevailingWageUnit: dataset.String("Yearly"),
		schema.FieldJobTitle:           dataset.String("Software Engineer"),
	})
	tbl.Append(dataset.Record{
		schema.FieldCaseNumber:         dataset.String("b-200"),
		schema.FieldFiscalYear:         dataset.Number(2021),
		schema.FieldJobState:           dataset.String("Unknownstan"),
		schema.FieldJobPostalCode:      dataset.String("abc"),
		schema.FieldPrevailingWage:     dataset.String("N/A"),
		schema.FieldPrevailingWageUnit: dataset.String("lump sum"),
		schema.FieldJobTitle:           dataset.None,
	})

	report := Canonicalize(tbl)

	good := tbl.Rows[0]
	if got := good.Get(schema.FieldJobState).String(); got != "CA" {
		t.Errorf("job_state = %q, want CA", got)
	}
	if got := good.Get(schema.FieldJobPostalCode).String(); got != "90210" {
		t.Errorf("job_postal_code = %q, want 90210", got)
	}
	if f, _ := good.Get(schema.FieldPrevailingWage).Float(); f != 45000 {
		t.Errorf("prevailing_wage = %v, want 45000", f)
	}
	if got := good.Get(schema.FieldPrevailingWageUnit).String(); got != "YR" {
		t.Errorf("prevailing_wage_unit_of_pay = %q, want YR", got)
	}
	if got := good.Get(schema.FieldJobTitle).String(); got != "SOFTWARE ENGINEER" {
		t.Errorf("job_title = %q, want uppercase", got)
	}
	if got := good.Get(schema.FieldCaseNumber).String(); got != "A-100" {
		t.Errorf("case_number = %q, want A-100", got)
	}

	bad := tbl.Rows[1]
	for _, f := range []schema.Field{
		schema.FieldJobState,
		schema.FieldJobPostalCode,
		schema.FieldPrevailingWage,
		schema.FieldPrevailingWageUnit,
	} {
		if !bad.Get(f).IsMissing() {
			t.Errorf("%s should be missing after failed normalization", f)
		}
	}

	for f, want := range map[schema.Field]string{
		schema.FieldJobState:           "Unknownstan",
		schema.FieldJobPostalCode:      "abc",
		schema.FieldPrevailingWage:     "N/A",
		schema.FieldPrevailingWageUnit: "lump sum",
	} {
		if report[f][want] != 1 {
			t.Errorf("report[%s][%q] = %d, want 1", f, want, report[f][want])
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	tbl := dataset.NewTable(
		schema.FieldCaseNumber,
		schema.FieldFiscalYear,
		schema.FieldJobState,
		schema.FieldPrevailingWage,
		schema.FieldPrevailingWageUnit,
	)
	tbl.Append(dataset.Record{
		schema.FieldCaseNumber:         dataset.String("A-100"),
		schema.FieldFiscalYear:         dataset.Number(2021),
		schema.FieldJobState:           dataset.String("California"),
		schema.FieldPrevailingWage:     dataset.String("45,000"),
		schema.FieldPrevailingWageUnit: dataset.String("hourly"),
	})

	Canonicalize(tbl)
	snapshot := tbl.Clone()
	report := Canonicalize(tbl)

	if report.Total() != 0 {
		t.Errorf("second pass reported %d bad values", report.Total())
	}
	for _, f := range tbl.Fields {
		a := tbl.Rows[0].Get(f)
		b := snapshot.Rows[0].Get(f)
		if !a.Equal(b) {
			t.Errorf("%s changed on second pass: %v -> %v", f, b, a)
		}
	}
}
