package chunk_test

import (
	"fmt"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// ExampleTopology_AdjacentEntry walks east across the W0/E0 seam and then
// off a corner into the diagonal neighbour.
func ExampleTopology_AdjacentEntry() {
	topo := chunk.DefaultTopology()

	east, _ := topo.AdjacentEntry("W0N3", 49, 17)
	fmt.Println(east)

	corner, _ := topo.AdjacentEntry("E4S0", 49, 0)
	fmt.Println(corner)

	_, ok := topo.AdjacentEntry("E4S0", 10, 10)
	fmt.Println(ok)

	// Output:
	// E0N3:0,17
	// E5N0:0,49
	// false
}
