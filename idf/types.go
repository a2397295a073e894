package idf

import (
	"github.com/katalvlaran/idfsweep/geometry"
)

// Delimiter encloses every token name: @name@.
const Delimiter = "@"

// Parameter names with derived-geometry semantics.
const (
	ParamWWR    = "wwr"
	ParamACH50  = "ach_50"
	ParamHeight = "height"
	ParamLength = "length"
	ParamWidth  = "width"
)

// Derived token names written by Render.
const (
	TokenInternalMass    = "internalMass"
	TokenFlowCoefficient = "flowCoefficient"
	TokenDaylightX       = "daylightReference_x"
	TokenDaylightY       = "daylightReference_y"
)

// Token wraps name in the delimiter.
func Token(name string) string {
	return Delimiter + name + Delimiter
}

// Entry is one step of a resolution Plan. The set of variants is closed:
// Direct, GeometryDerived and InfiltrationDerived.
type Entry interface {
	entry()
}

// Direct substitutes @Name@ with the string form of Value.
type Direct struct {
	Name  string
	Value any
}

// GeometryDerived resolves window, vent and internal-mass tokens for a
// building glazed at WWR.
type GeometryDerived struct {
	WWR      float64
	Building geometry.Building
}

// InfiltrationDerived resolves the flow-coefficient token (and the leakage
// area tokens when enabled) from a blower-door ACH50 value.
type InfiltrationDerived struct {
	ACH50    float64
	Building geometry.Building
}

func (Direct) entry()              {}
func (GeometryDerived) entry()     {}
func (InfiltrationDerived) entry() {}

// Plan is a validated, ordered list of entries plus the optional daylighting
// point resolved after all entries.
type Plan struct {
	Entries  []Entry
	Daylight *geometry.Point
}

// windowTokens returns the four coordinate token names and the vent token for o,
// e.g. windowNorth_x0, windowNorth_x1, windowNorth_z0, windowNorth_z1,
// windowOpeningArea_N.
func windowTokens(o geometry.Orientation) (u0, u1, z0, z1, opening string) {
	prefix := "window" + o.String() + "_"
	axis := o.Axis()
	return prefix + axis + "0", prefix + axis + "1", prefix + "z0", prefix + "z1",
		"windowOpeningArea_" + o.Initial()
}

// leakageToken returns ELA_<Surface>.
func leakageToken(surface string) string {
	return "ELA_" + surface
}
