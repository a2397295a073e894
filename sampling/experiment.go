// SPDX-License-Identifier: MIT
// Package: idfsweep/sampling
//
// experiment.go — YAML experiment files and strategy dispatch.
//
// File layout:
//
//	strategy: lhs            # statistical | lhs | random | factorial
//	samples: 200             # ignored by factorial
//	seed: 42                 # 0 → default seed
//	max_rows: 5000           # optional guardrail, 0 = none
//	lhs: {type: classic, criterion: maximin, iterations: 1000}
//	variables:               # ordered; order = column order
//	  wwr:       {type: float, values: [0.1, 0.6]}
//	  u_windows: {method: discrete, values: [1.2, 1.8, 2.8]}
//	  ach_50:    {method: skew, mu: 5, sigma: 2, skew: 3}

package sampling

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Strategy selects one of the four sampling strategies.
type Strategy string

const (
	StrategyStatistical    Strategy = "statistical"
	StrategyLatinHypercube Strategy = "lhs"
	StrategyRandom         Strategy = "random"
	StrategyFullFactorial  Strategy = "factorial"
)

// LHSConfig carries the Latin-hypercube settings of an experiment file.
// Zero values mean the package defaults.
type LHSConfig struct {
	Type       LHSType   `yaml:"type"`
	Criterion  Criterion `yaml:"criterion"`
	Iterations int       `yaml:"iterations"`
}

// Experiment is a complete, declarative sampling run.
type Experiment struct {
	Strategy  Strategy  `yaml:"strategy"`
	Samples   int       `yaml:"samples"`
	Seed      int64     `yaml:"seed"`
	MaxRows   int       `yaml:"max_rows"`
	LHS       LHSConfig `yaml:"lhs"`
	Variables Spec      `yaml:"variables"`
}

// LoadExperiment decodes and validates a YAML experiment. Unknown top-level
// keys are rejected.
func LoadExperiment(r io.Reader) (*Experiment, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var e Experiment
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("LoadExperiment: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// DecodeSpec decodes a bare YAML variables mapping.
func DecodeSpec(r io.Reader) (Spec, error) {
	var s Spec
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("DecodeSpec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate checks the strategy, sizes and LHS settings, then the variables.
func (e *Experiment) Validate() error {
	switch e.Strategy {
	case StrategyStatistical, StrategyLatinHypercube, StrategyRandom:
		if e.Samples < 1 {
			return fmt.Errorf("Experiment: samples=%d: %w", e.Samples, ErrBadSize)
		}
	case StrategyFullFactorial:
	default:
		return fmt.Errorf("Experiment: strategy %q: %w", e.Strategy, ErrBadStrategy)
	}
	if e.MaxRows < 0 {
		return fmt.Errorf("Experiment: max_rows=%d: %w", e.MaxRows, ErrBadStrategy)
	}
	if e.LHS.Type != "" && !e.LHS.Type.Valid() {
		return fmt.Errorf("Experiment: lhs type %q: %w", e.LHS.Type, ErrBadStrategy)
	}
	if e.LHS.Criterion != "" && !e.LHS.Criterion.Valid() {
		return fmt.Errorf("Experiment: lhs criterion %q: %w", e.LHS.Criterion, ErrBadStrategy)
	}
	if e.LHS.Iterations < 0 {
		return fmt.Errorf("Experiment: lhs iterations=%d: %w", e.LHS.Iterations, ErrBadStrategy)
	}
	return e.Variables.Validate()
}

// Options translates the experiment settings into sampling options.
// Call Validate first; invalid settings panic in the option constructors.
func (e *Experiment) Options() []Option {
	opts := []Option{WithSeed(e.Seed), WithMaxRows(e.MaxRows)}
	if e.LHS.Type != "" {
		opts = append(opts, WithLHSType(e.LHS.Type))
	}
	if e.LHS.Criterion != "" {
		opts = append(opts, WithCriterion(e.LHS.Criterion))
	}
	if e.LHS.Iterations > 0 {
		opts = append(opts, WithIterations(e.LHS.Iterations))
	}
	return opts
}

// Rows returns the row count Generate will produce.
func (e *Experiment) Rows() (int, error) {
	if e.Strategy == StrategyFullFactorial {
		return FactorialSize(e.Variables)
	}
	return e.Samples, nil
}

// Generate validates e and runs its strategy. extra options are applied after
// the experiment's own, so they win. A sample count above MaxRows fails with
// ErrTooManyRows for every strategy.
func (e *Experiment) Generate(extra ...Option) (*Table, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	opts := append(e.Options(), extra...)

	if e.Strategy != StrategyFullFactorial && e.MaxRows > 0 && e.Samples > e.MaxRows {
		return nil, fmt.Errorf("Experiment: samples %d exceed max_rows %d: %w", e.Samples, e.MaxRows, ErrTooManyRows)
	}

	switch e.Strategy {
	case StrategyStatistical:
		return Statistical(e.Variables, e.Samples, opts...)
	case StrategyLatinHypercube:
		return LatinHypercube(e.Variables, e.Samples, opts...)
	case StrategyRandom:
		return Random(e.Variables, e.Samples, opts...)
	default:
		return FullFactorial(e.Variables, opts...)
	}
}

// variableDoc is the YAML shape of one variable. values may be a list or a
// single scalar (constant shorthand).
type variableDoc struct {
	Method string    `yaml:"method"`
	Type   string    `yaml:"type"`
	Values yaml.Node `yaml:"values"`
	Value  any       `yaml:"value"`
	Range  []float64 `yaml:"range"`
	Min    *float64  `yaml:"min"`
	Max    *float64  `yaml:"max"`
	Mu     float64   `yaml:"mu"`
	Sigma  float64   `yaml:"sigma"`
	Skew   float64   `yaml:"skew"`
}

// UnmarshalYAML decodes an ordered mapping of variable name → payload,
// keeping the document order.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variables must be a mapping: %w", node.Line, ErrBadParameter)
	}
	vars := make([]Variable, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, body := node.Content[i], node.Content[i+1]
		v, err := decodeVariable(key.Value, body)
		if err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		vars = append(vars, v)
	}
	s.Variables = vars
	return nil
}

// variableFields lists the keys variableDoc accepts. Node.Decode does not
// inherit the decoder's KnownFields setting, so keys are checked here.
var variableFields = map[string]struct{}{
	"method": {}, "type": {}, "values": {}, "value": {}, "range": {},
	"min": {}, "max": {}, "mu": {}, "sigma": {}, "skew": {},
}

func decodeVariable(name string, body *yaml.Node) (Variable, error) {
	if body.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(body.Content); i += 2 {
			key := body.Content[i]
			if _, ok := variableFields[key.Value]; !ok {
				return Variable{}, fmt.Errorf("%s: line %d: unknown field %q: %w", name, key.Line, key.Value, ErrBadParameter)
			}
		}
	}

	var doc variableDoc
	if err := body.Decode(&doc); err != nil {
		return Variable{}, fmt.Errorf("%s: %w", name, err)
	}

	tag := doc.Method
	if tag == "" {
		tag = doc.Type
	} else if doc.Type != "" && doc.Type != doc.Method {
		return Variable{}, fmt.Errorf("%s: method %q and type %q disagree: %w", name, doc.Method, doc.Type, ErrBadParameter)
	}
	m := Method(tag)
	if !m.Valid() {
		return Variable{}, fmt.Errorf("%s: method %q: %w", name, tag, ErrUnknownMethod)
	}

	v := Variable{
		Name:   name,
		Method: m,
		Value:  doc.Value,
		Range:  doc.Range,
		Min:    doc.Min,
		Max:    doc.Max,
		Mu:     doc.Mu,
		Sigma:  doc.Sigma,
		Skew:   doc.Skew,
	}
	switch doc.Values.Kind {
	case 0:
	case yaml.SequenceNode:
		if err := doc.Values.Decode(&v.Values); err != nil {
			return Variable{}, fmt.Errorf("%s: values: %w", name, err)
		}
	case yaml.ScalarNode:
		var scalar any
		if err := doc.Values.Decode(&scalar); err != nil {
			return Variable{}, fmt.Errorf("%s: values: %w", name, err)
		}
		v.Values = []any{scalar}
	default:
		return Variable{}, fmt.Errorf("%s: values must be a list or scalar: %w", name, ErrBadParameter)
	}
	return v, nil
}
