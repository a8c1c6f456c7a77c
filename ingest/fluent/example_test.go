package fluent_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/cwbudde/algo-stability/ingest/fluent"
)

func ExampleReadExport() {
	export := `[Export from transient cavity run]
Re = 1000
2D planar
units: SI
nodenumber, x-coordinate, y-coordinate, x-velocity
1, 0.0, 0.0, 1.0
2, 1.0, 0.0, 2.0
3, 0.0, 1.0, 3.0
4, 1.0, 1.0, 4.0
5, 0.5, 0.5, 2.5
`

	field, err := fluent.ReadExport(strings.NewReader(export))
	if err != nil {
		log.Fatal(err)
	}

	grid, err := field.Resample(3, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s on %dx%d grid\n", field.Name, grid.NX, grid.NY)
	fmt.Printf("center %.1f\n", grid.At(1, 1))

	// Output:
	// x-velocity on 3x3 grid
	// center 2.5
}
