package normalize

import (
	"sort"
	"strings"

	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/geo"
)

// State canonicalizes U.S. state and territory entries to uppercase postal
// abbreviations. Input may already be an abbreviation, a full name, or a
// full name with trailing noise ("New York City", "tx 1234").
type State struct {
	// prefixes holds (full name, code) pairs sorted by descending name
	// length, so the longest matching prefix always wins.
	prefixes []statePrefix
}

type statePrefix struct {
	name string // uppercased full name
	code string
}

// NewStateNormalizer builds a State normalizer from the standard state
// table plus the Department of Labor's historical aliases.
func NewStateNormalizer() *State {
	var prefixes []statePrefix
	for code, name := range geo.USStates() {
		prefixes = append(prefixes, statePrefix{name: strings.ToUpper(name), code: code})
	}
	for name, code := range geo.Aliases() {
		prefixes = append(prefixes, statePrefix{name: strings.ToUpper(name), code: code})
	}
	// Longest name first; ties broken lexically for determinism.
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i].name) != len(prefixes[j].name) {
			return len(prefixes[i].name) > len(prefixes[j].name)
		}
		return prefixes[i].name < prefixes[j].name
	})
	return &State{prefixes: prefixes}
}

// Normalize implements Normalizer.
func (n *State) Normalize(v dataset.Value) (dataset.Value, bool) {
	if v.IsMissing() {
		return dataset.None, true
	}

	s := strings.Trim(v.String(), " 0123456789")
	upper := strings.ToUpper(s)

	for _, p := range n.prefixes {
		if strings.HasPrefix(upper, p.name) {
			upper = p.code + upper[len(p.name):]
			break
		}
	}

	token := firstToken(upper)
	if geo.ValidCode(token) {
		return dataset.String(token), true
	}
	return dataset.None, false
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
