// Package infiltration converts blower-door air-tightness measurements into
// the power-law parameters an energy-simulation input model expects.
//
// Power-law model:
//
//	Q = c · ΔP^n
//
//	Q50 = ACH50 · V / 3600          [m³/s]
//	c   = Q50 / 50^n                [m³/(s·Paⁿ)]
//	c_zone = c / zones
//
// Effective leakage area (ASHRAE Fundamentals, 10 Pa reference):
//
//	ELA = c / C_D · √(ρ/2) · 10^(n − 0.5)   [m²]
//
// The whole-building ELA is apportioned to the four walls and the roof by
// each surface's share of the envelope area. It is an alternate infiltration
// mode (airflow-network leakage surfaces) and is only produced when
// Options.Mode is FlowAndLeakageArea.
//
// Defaults: n = 0.67, ρ = 1.204 kg/m³, C_D = 0.611, one zone.
package infiltration
