package geo

// StateValues maps 2-letter postal codes to a numeric value per state.
// It is the boundary consumed by map renderers: one number per region,
// with a default for regions the dataset has no value for.
type StateValues struct {
	values map[string]float64
	def    float64
	defSet bool
}

// NewStateValues creates a StateValues mapping from the given values.
// The map is copied; later mutation of values does not affect the result.
func NewStateValues(values map[string]float64) *StateValues {
	sv := &StateValues{values: make(map[string]float64, len(values))}
	for code, v := range values {
		sv.values[code] = v
	}
	return sv
}

// WithDefault sets the value returned for codes not present in the mapping.
func (sv *StateValues) WithDefault(def float64) *StateValues {
	sv.def = def
	sv.defSet = true
	return sv
}

// Get returns the value for code, falling back to the default.
// The second return reports whether the code was present.
func (sv *StateValues) Get(code string) (float64, bool) {
	if v, ok := sv.values[code]; ok {
		return v, true
	}
	return sv.def, false
}

// HasDefault reports whether a default value was configured.
func (sv *StateValues) HasDefault() bool {
	return sv.defSet
}

// Len returns the number of codes with explicit values.
func (sv *StateValues) Len() int {
	return len(sv.values)
}
