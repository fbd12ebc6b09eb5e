package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/agentstation/permclean/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("artifact", "perm.gob")

	if !errors.IsNotFound(err) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !strings.Contains(err.Error(), "perm.gob") {
		t.Errorf("Error message should contain the ID, got: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
		want    string
	}{
		{
			name:    "with field",
			field:   "case_number",
			message: "must not be empty",
			want:    "validation failed for field case_number: must not be empty",
		},
		{
			name:    "without field",
			field:   "",
			message: "bad row",
			want:    "validation failed: bad row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.NewValidationError(tt.field, nil, tt.message)
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
			if !errors.IsValidationError(err) {
				t.Error("ValidationError should match ErrInvalidInput")
			}
		})
	}
}

func TestIntegrityError(t *testing.T) {
	err := errors.NewIntegrityError("unique (case_number, fiscal_year)",
		[]string{"A-100", "A-200"})

	if !errors.IsIntegrityError(err) {
		t.Error("IntegrityError should match ErrIntegrity")
	}
	msg := err.Error()
	if !strings.Contains(msg, "A-100") || !strings.Contains(msg, "2 case(s)") {
		t.Errorf("unexpected message: %s", msg)
	}

	// Long case lists are truncated to a sample.
	many := errors.NewIntegrityError("unique", []string{"a", "b", "c", "d", "e", "f", "g"})
	if strings.Contains(many.Error(), "g") {
		t.Errorf("expected truncated sample, got: %s", many.Error())
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := errors.NewParseError("xlsx", "PERM_FY20.xlsx", "truncated sheet", cause)

	if !stderrors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "PERM_FY20.xlsx") {
		t.Errorf("Error message should contain file name, got: %s", err.Error())
	}
}

func TestIOErrorWrapping(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.WrapIO("write", "/out/perm.csv", cause)

	if !stderrors.Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}

	var ioErr *errors.IOError
	if !stderrors.As(err, &ioErr) {
		t.Fatal("expected *IOError")
	}
	if ioErr.Operation != "write" || ioErr.Path != "/out/perm.csv" {
		t.Errorf("unexpected fields: %+v", ioErr)
	}
}

func TestWrapHelpersNil(t *testing.T) {
	if errors.WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if errors.WrapParse("csv", "x", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if errors.WrapValidation("f", nil) != nil {
		t.Error("WrapValidation(nil) should be nil")
	}
}
