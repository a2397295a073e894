package infiltration

// Mode selects which infiltration quantities Convert produces.
//
//   - FlowCoefficientOnly — per-zone flow coefficient (default).
//   - FlowAndLeakageArea  — flow coefficient plus per-surface effective
//     leakage areas for airflow-network models.
type Mode int

const (
	// FlowCoefficientOnly produces the zone flow coefficient only.
	FlowCoefficientOnly Mode = iota

	// FlowAndLeakageArea additionally apportions effective leakage areas.
	FlowAndLeakageArea
)

// String returns a stable lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case FlowCoefficientOnly:
		return "flow-coefficient"
	case FlowAndLeakageArea:
		return "flow-and-leakage-area"
	default:
		return "unknown"
	}
}

// Physical defaults.
const (
	DefaultExponent             = 0.67  // flow exponent n
	DefaultAirDensity           = 1.204 // ρ [kg/m³]
	DefaultDischargeCoefficient = 0.611 // C_D
	DefaultZones                = 1

	// TestPressure is the blower-door reference pressure [Pa].
	TestPressure = 50.0
	// LeakagePressure is the ELA reference pressure [Pa].
	LeakagePressure = 10.0

	secondsPerHour = 3600.0
)

// Options configures the conversions.
//
// Fields:
//   - Zones                — equal partitions sharing the building coefficient (≥1).
//   - Exponent             — flow exponent n (>0).
//   - AirDensity           — ρ used by the ELA formula (>0).
//   - DischargeCoefficient — C_D used by the ELA formula (>0).
//   - Mode                 — which quantities Convert returns.
type Options struct {
	Zones                int
	Exponent             float64
	AirDensity           float64
	DischargeCoefficient float64
	Mode                 Mode
}

// DefaultOptions returns one zone, n=0.67, standard air and FlowCoefficientOnly.
func DefaultOptions() Options {
	return Options{
		Zones:                DefaultZones,
		Exponent:             DefaultExponent,
		AirDensity:           DefaultAirDensity,
		DischargeCoefficient: DefaultDischargeCoefficient,
		Mode:                 FlowCoefficientOnly,
	}
}

// LeakageAreas holds effective leakage areas per above-grade surface [m²].
type LeakageAreas struct {
	North, South, East, West, Roof float64
}

// Total returns the sum over all five surfaces.
func (l LeakageAreas) Total() float64 {
	return l.North + l.South + l.East + l.West + l.Roof
}

// Result is the output of Convert. LeakageAreas is nil unless the mode is
// FlowAndLeakageArea.
type Result struct {
	FlowCoefficient float64
	LeakageAreas    *LeakageAreas
}
