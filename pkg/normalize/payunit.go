package normalize

import (
	"strings"

	"github.com/agentstation/permclean/pkg/dataset"
)

// PayUnit canonicalizes pay-period units to the five short codes
// YR, MTH, BI, WK, HR. The value is uppercased and its leading keyword
// replaced; the remainder ("LY" in "YEARLY") is discarded. Values already
// in short form pass through. Anything else becomes missing.
type PayUnit struct {
	// keywords sorted by descending length so BI-WEEKLY wins over WEEK.
	keywords []payKeyword
	codes    map[string]struct{}
}

type payKeyword struct {
	long  string
	short string
}

// NewPayUnitNormalizer builds the PayUnit normalizer.
func NewPayUnitNormalizer() *PayUnit {
	keywords := []payKeyword{
		{"BI-WEEKLY", "BI"},
		{"BIWEEKLY", "BI"},
		{"MONTH", "MTH"},
		{"YEAR", "YR"},
		{"WEEK", "WK"},
		{"HOUR", "HR"},
	}
	codes := make(map[string]struct{})
	for _, kw := range keywords {
		codes[kw.short] = struct{}{}
	}
	return &PayUnit{keywords: keywords, codes: codes}
}

// Normalize implements Normalizer.
func (n *PayUnit) Normalize(v dataset.Value) (dataset.Value, bool) {
	if v.IsMissing() {
		return dataset.None, true
	}

	s := strings.ToUpper(strings.TrimSpace(v.String()))
	for _, kw := range n.keywords {
		if strings.HasPrefix(s, kw.long) {
			return dataset.String(kw.short), true
		}
	}
	if _, ok := n.codes[s]; ok {
		return dataset.String(s), true
	}
	return dataset.None, false
}
