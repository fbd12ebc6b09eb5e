package schema

import "testing"

func TestResolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		raw   string
		field Field
		ok    bool
	}{
		{"case_number", FieldCaseNumber, true},
		{"CASE_NO", FieldCaseNumber, true},
		{"Case No", FieldCaseNumber, true},
		{" employer_state ", FieldEmployerState, true},
		{"EMPLOYER_STATE_PROVINCE", FieldEmployerState, true},
		{"pw_amount_9089", FieldPrevailingWage, true},
		{"pw_wage", FieldPrevailingWage, true},
		{"country_of_citzenship", FieldWorkerCitizenship, true}, // sic, as in the raw data
		{"wage_offered_to_9089", FieldJobWageOfferTo, true},
		{"decision_date", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			field, ok := reg.Resolve(tt.raw)
			if ok != tt.ok || field != tt.field {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.raw, field, ok, tt.field, tt.ok)
			}
		})
	}
}

func TestResolveIsCaseAndSpaceInsensitive(t *testing.T) {
	reg := Default()

	for _, raw := range []string{"JOB_INFO_WORK_STATE", "job info work state", "Job_Info_Work_State"} {
		field, ok := reg.Resolve(raw)
		if !ok || field != FieldJobState {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, true)", raw, field, ok, FieldJobState)
		}
	}
}

func TestFieldsClosedSet(t *testing.T) {
	reg := Default()

	fields := reg.Fields()
	if len(fields) != len(Fields()) {
		t.Fatalf("registry has %d fields, canonical order has %d", len(fields), len(Fields()))
	}
	for _, f := range fields {
		if !IsCanonical(f) {
			t.Errorf("registry field %q is not canonical", f)
		}
	}

	// Fiscal year has no aliases; it comes from the file name.
	if aliases := reg.Aliases(FieldFiscalYear); len(aliases) != 0 {
		t.Errorf("fiscal_year should have no aliases, got %v", aliases)
	}
}

func TestStatusHandling(t *testing.T) {
	reg := Default()

	if !reg.ResolveStatus("CASE_STATUS") {
		t.Error("CASE_STATUS should resolve to the status column")
	}
	if reg.ResolveStatus("case_number") {
		t.Error("case_number is not the status column")
	}

	tests := []struct {
		raw      string
		accepted bool
	}{
		{"Certified", true},
		{"certified", true},
		{"Certified-Expired", true},
		{"  certified  ", true},
		{"Denied", false},
		{"Withdrawn", false},
		{"", false},
	}
	for _, tt := range tests {
		status := NormalizeStatus(tt.raw)
		if got := reg.AcceptedStatus(status); got != tt.accepted {
			t.Errorf("AcceptedStatus(NormalizeStatus(%q)) = %v, want %v", tt.raw, got, tt.accepted)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Certified", "certified"},
		{"CERTIFIED EXPIRED", "certified_expired"},
		{" Denied ", "denied"},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldGroups(t *testing.T) {
	for _, group := range [][]Field{StateFields(), PostalFields(), WageFields(), PayUnitFields(), NumericFields()} {
		for _, f := range group {
			if !IsCanonical(f) {
				t.Errorf("group field %q is not canonical", f)
			}
		}
	}
}
