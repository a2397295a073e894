package sampling

import "fmt"

// Method is the generation tag of a variable. The set is closed.
type Method string

const (
	// MethodDiscrete draws uniformly, with replacement, from Values.
	MethodDiscrete Method = "discrete"
	// MethodCategorical is a discrete choice over unordered labels.
	MethodCategorical Method = "categorical"
	// MethodBool is a discrete choice over {false,true} (or Values if given).
	MethodBool Method = "bool"
	// MethodConstant repeats a single value.
	MethodConstant Method = "constant"
	// MethodInt spans the integer range [min(Values), max(Values)].
	MethodInt Method = "int"
	// MethodFloat spans the continuous range [min(Values), max(Values)].
	MethodFloat Method = "float"
	// MethodNormal draws from N(Mu, Sigma²).
	MethodNormal Method = "normal"
	// MethodSkew draws from a skew-normal with mean Mu, scale Sigma, shape Skew.
	MethodSkew Method = "skew"
	// MethodUniform draws from U[Range[0], Range[1]] (or [Min, Max]).
	MethodUniform Method = "uniform"
)

// Methods lists every valid tag.
var Methods = []Method{
	MethodDiscrete, MethodCategorical, MethodBool, MethodConstant,
	MethodInt, MethodFloat, MethodNormal, MethodSkew, MethodUniform,
}

// Valid reports whether m belongs to the closed tag set.
func (m Method) Valid() bool {
	for _, v := range Methods {
		if m == v {
			return true
		}
	}
	return false
}

// Continuous reports whether m generates values from a continuous
// distribution with no explicit value set.
func (m Method) Continuous() bool {
	return m == MethodNormal || m == MethodSkew || m == MethodUniform
}

// Variable is one entry of a Spec: a tag plus the payload
// that tag needs.
//
//   - Values — explicit candidates (discrete/categorical/bool/constant) or the
//     range endpoints sampled as min/max (int/float).
//   - Value  — single constant value; takes precedence over Values[0].
//   - Range, Min, Max — bounds for uniform.
//   - Mu, Sigma, Skew — distribution parameters for normal/skew.
type Variable struct {
	Name   string
	Method Method
	Values []any
	Value  any
	Range  []float64
	Min    *float64
	Max    *float64
	Mu     float64
	Sigma  float64
	Skew   float64
}

// Spec is an ordered Variable Specification. Column order of every design
// table follows Variables.
type Spec struct {
	Variables []Variable
}

// NewSpec returns a Spec over vars in the given order.
func NewSpec(vars ...Variable) Spec {
	return Spec{Variables: vars}
}

// Names returns the variable names in declared order.
func (s Spec) Names() []string {
	out := make([]string, len(s.Variables))
	for i, v := range s.Variables {
		out[i] = v.Name
	}
	return out
}

// Len returns the number of variables.
func (s Spec) Len() int {
	return len(s.Variables)
}

// Validate checks names are non-empty and unique and every tag is known.
// Payloads are validated by the strategy that consumes them.
func (s Spec) Validate() error {
	seen := make(map[string]struct{}, len(s.Variables))
	for i, v := range s.Variables {
		if v.Name == "" {
			return fmt.Errorf("Spec: variable #%d: %w", i, ErrDuplicateVariable)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("Spec: %s: %w", v.Name, ErrDuplicateVariable)
		}
		seen[v.Name] = struct{}{}
		if !v.Method.Valid() {
			return fmt.Errorf("Spec: %s: method %q: %w", v.Name, v.Method, ErrUnknownMethod)
		}
	}
	return nil
}
