package idf

import (
	"fmt"
	"math"
	"strconv"
)

// Parameters is an insertion-ordered mapping from variable name to a scalar
// value (float, int, string or bool) describing one design point.
// Setting an existing name overwrites its value but keeps its position.
type Parameters struct {
	names  []string
	values map[string]any
}

// NewParameters returns an empty mapping.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]any)}
}

// ParametersFrom builds a mapping from parallel name/value slices.
// Panics if the slices differ in length.
func ParametersFrom(names []string, values []any) *Parameters {
	if len(names) != len(values) {
		panic(fmt.Sprintf("idf: ParametersFrom(%d names, %d values)", len(names), len(values)))
	}
	p := NewParameters()
	for i, name := range names {
		p.Set(name, values[i])
	}
	return p
}

// Set stores v under name. The zero Parameters is ready to use.
func (p *Parameters) Set(name string, v any) *Parameters {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = v
	return p
}

// Get returns the value stored under name.
func (p *Parameters) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether name is present.
func (p *Parameters) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Names returns the parameter names in insertion order.
func (p *Parameters) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return len(p.names)
}

// Float returns the numeric value stored under name.
// Errors: ErrMissingDependency when absent, ErrBadValue when not numeric.
func (p *Parameters) Float(name string) (float64, error) {
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", name, ErrMissingDependency)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("parameter %q=%v: not numeric: %w", name, v, ErrBadValue)
	}
	return f, nil
}

// toFloat converts numeric scalars, and strings holding a number, to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// FormatValue renders a parameter value the way it is written into the
// document: shortest round-trip decimal for floats, base-10 for integers,
// true/false for booleans and verbatim text for strings.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatFloat(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
