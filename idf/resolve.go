// SPDX-License-Identifier: MIT
// Package: idfsweep/idf
//
// resolve.go — Classify (validation boundary), Render (substitution) and
// Resolve (both).
//
// Contract:
//   • Classify is the only place sibling parameters are looked up.
//   • Render never fails on unknown or missing tokens; it fails only if a
//     derived computation rejects its inputs.
//   • Substitution order follows the Parameters insertion order.

package idf

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/idfsweep/geometry"
	"github.com/katalvlaran/idfsweep/infiltration"
)

const (
	methodClassify = "Classify"
	methodRender   = "Render"
)

// Classify turns params into a Plan. Entries named wwr and ach_50 become
// derived variants and require numeric height, length and width siblings.
// The daylighting point is planned whenever length and width are both
// present.
//
// Errors: ErrMissingDependency, ErrBadValue, geometry.ErrInvalidRatio,
// geometry.ErrInvalidDimension, infiltration.ErrBadInput.
// Complexity: O(P) for P parameters.
func Classify(params *Parameters) (Plan, error) {
	var plan Plan
	if params == nil {
		return plan, nil
	}

	plan.Entries = make([]Entry, 0, params.Len())
	for _, name := range params.names {
		value := params.values[name]

		switch name {
		case ParamWWR:
			wwr, err := params.Float(name)
			if err != nil {
				return Plan{}, fmt.Errorf("%s: %w", methodClassify, err)
			}
			b, err := buildingFrom(params, name)
			if err != nil {
				return Plan{}, err
			}
			if err = geometry.ValidateRatio(wwr); err != nil {
				return Plan{}, fmt.Errorf("%s: %w", methodClassify, err)
			}
			plan.Entries = append(plan.Entries, GeometryDerived{WWR: wwr, Building: b})

		case ParamACH50:
			ach, err := params.Float(name)
			if err != nil {
				return Plan{}, fmt.Errorf("%s: %w", methodClassify, err)
			}
			if ach < 0 {
				return Plan{}, fmt.Errorf("%s: ach_50=%g: %w", methodClassify, ach, infiltration.ErrBadInput)
			}
			b, err := buildingFrom(params, name)
			if err != nil {
				return Plan{}, err
			}
			plan.Entries = append(plan.Entries, InfiltrationDerived{ACH50: ach, Building: b})

		default:
			plan.Entries = append(plan.Entries, Direct{Name: name, Value: value})
		}
	}

	if params.Has(ParamLength) && params.Has(ParamWidth) {
		length, err := params.Float(ParamLength)
		if err != nil {
			return Plan{}, fmt.Errorf("%s: daylight: %w", methodClassify, err)
		}
		width, err := params.Float(ParamWidth)
		if err != nil {
			return Plan{}, fmt.Errorf("%s: daylight: %w", methodClassify, err)
		}
		p := geometry.DaylightPoint(geometry.Building{Width: width, Length: length})
		plan.Daylight = &p
	}

	return plan, nil
}

// buildingFrom reads the height/length/width siblings required by owner.
func buildingFrom(params *Parameters, owner string) (geometry.Building, error) {
	var (
		b   geometry.Building
		err error
	)
	if b.Height, err = params.Float(ParamHeight); err != nil {
		return b, fmt.Errorf("%s: %s requires %s: %w", methodClassify, owner, ParamHeight, err)
	}
	if b.Length, err = params.Float(ParamLength); err != nil {
		return b, fmt.Errorf("%s: %s requires %s: %w", methodClassify, owner, ParamLength, err)
	}
	if b.Width, err = params.Float(ParamWidth); err != nil {
		return b, fmt.Errorf("%s: %s requires %s: %w", methodClassify, owner, ParamWidth, err)
	}
	if err = b.Validate(); err != nil {
		return b, fmt.Errorf("%s: %s: %w", methodClassify, owner, err)
	}
	return b, nil
}

// Render applies plan to template and returns the resolved document.
//
// Complexity: O(E·L) for E substitutions over a document of length L.
func Render(template string, plan Plan, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	doc := template

	for _, e := range plan.Entries {
		var err error
		switch v := e.(type) {
		case Direct:
			doc = replace(doc, v.Name, FormatValue(v.Value))
		case GeometryDerived:
			doc, err = renderGeometry(doc, v, cfg)
		case InfiltrationDerived:
			doc, err = renderInfiltration(doc, v, cfg)
		default:
			err = fmt.Errorf("unsupported entry %T: %w", e, ErrBadValue)
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", methodRender, err)
		}
	}

	if plan.Daylight != nil {
		doc = replace(doc, TokenDaylightX, formatFloat(plan.Daylight.X))
		doc = replace(doc, TokenDaylightY, formatFloat(plan.Daylight.Y))
	}

	return doc, nil
}

// Resolve classifies params and renders template in one call.
func Resolve(template string, params *Parameters, opts ...Option) (string, error) {
	plan, err := Classify(params)
	if err != nil {
		return "", err
	}
	return Render(template, plan, opts...)
}

func renderGeometry(doc string, g GeometryDerived, cfg config) (string, error) {
	facade, err := geometry.ResolveWindows(g.Building, g.WWR, cfg.geometry...)
	if err != nil {
		return "", err
	}
	for _, o := range geometry.Orientations {
		w := facade.Window(o)
		u0, u1, z0, z1, opening := windowTokens(o)
		doc = replace(doc, u0, formatFloat(w.U0))
		doc = replace(doc, u1, formatFloat(w.U1))
		doc = replace(doc, z0, formatFloat(w.Z0))
		doc = replace(doc, z1, formatFloat(w.Z1))
		doc = replace(doc, opening, formatFloat(w.OpeningArea))
	}
	doc = replace(doc, TokenInternalMass, formatFloat(geometry.InternalMassArea(g.Building)))
	return doc, nil
}

func renderInfiltration(doc string, in InfiltrationDerived, cfg config) (string, error) {
	res, err := infiltration.Convert(in.ACH50, in.Building, &cfg.infiltration)
	if err != nil {
		return "", err
	}
	doc = replace(doc, TokenFlowCoefficient, formatFloat(res.FlowCoefficient))
	if la := res.LeakageAreas; la != nil {
		doc = replace(doc, leakageToken("North"), formatFloat(la.North))
		doc = replace(doc, leakageToken("South"), formatFloat(la.South))
		doc = replace(doc, leakageToken("East"), formatFloat(la.East))
		doc = replace(doc, leakageToken("West"), formatFloat(la.West))
		doc = replace(doc, leakageToken("Roof"), formatFloat(la.Roof))
	}
	return doc, nil
}

// replace substitutes every @name@ in doc; a missing token is a no-op.
func replace(doc, name, value string) string {
	return strings.ReplaceAll(doc, Token(name), value)
}

// Unresolved lists the distinct token names still present in doc, in order of
// first appearance. A token name is a non-empty run of ASCII letters, digits
// and underscores between two delimiters.
func Unresolved(doc string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	d := Delimiter[0]
	i := strings.IndexByte(doc, d)
	for i >= 0 && i < len(doc)-1 {
		j := strings.IndexByte(doc[i+1:], d)
		if j < 0 {
			break
		}
		j += i + 1
		name := doc[i+1 : j]
		if isTokenName(name) {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				out = append(out, name)
			}
			next := strings.IndexByte(doc[j+1:], d)
			if next < 0 {
				break
			}
			i = j + 1 + next
			continue
		}
		i = j
	}
	return out
}

func isTokenName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
