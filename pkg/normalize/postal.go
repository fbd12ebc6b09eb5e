package normalize

import (
	"strings"

	"github.com/agentstation/permclean/pkg/dataset"
)

// Postal canonicalizes postal codes to exactly five digits: the first run
// of one to five digits found anywhere in the value, zero-padded on the
// left. Values without any digit become missing.
type Postal struct{}

// Normalize implements Normalizer.
func (Postal) Normalize(v dataset.Value) (dataset.Value, bool) {
	if v.IsMissing() {
		return dataset.None, true
	}

	s := v.String()
	start := -1
	end := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
			if end-start == 5 {
				break
			}
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		return dataset.None, false
	}

	digits := s[start:end]
	if len(digits) < 5 {
		digits = strings.Repeat("0", 5-len(digits)) + digits
	}
	return dataset.String(digits), true
}
