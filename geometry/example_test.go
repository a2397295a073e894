package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/idfsweep/geometry"
)

// ExampleResolveWindows resolves a 25 % glazed 5×8×3 m box.
func ExampleResolveWindows() {
	b := geometry.Building{Width: 5, Length: 8, Height: 3}
	f, err := geometry.ResolveWindows(b, 0.25)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	n := f.Window(geometry.North)
	fmt.Printf("north x=[%.2f, %.2f] z=[%.2f, %.2f] vent=%.3f\n", n.U0, n.U1, n.Z0, n.Z1, n.OpeningArea)
	fmt.Printf("internal mass=%.0f\n", geometry.InternalMassArea(b))
	fmt.Printf("daylight=%v\n", geometry.DaylightPoint(b))
	// Output:
	// north x=[1.25, 3.75] z=[0.75, 2.25] vent=0.225
	// internal mass=39
	// daylight={2.5 4}
}
