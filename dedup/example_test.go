package dedup_test

import (
	"fmt"

	"github.com/katalvlaran/geodome/dedup"
	"github.com/katalvlaran/geodome/geom"
)

// ExamplePoints merges two candidates that differ by less than ε per axis.
func ExamplePoints() {
	c, err := dedup.Points([]geom.Point{
		geom.NewPoint(10, 1.0, 2.0, 3.0),
		geom.NewPoint(11, 1.000003, 2.000001, 3.000002),
		geom.NewPoint(12, 4.0, 5.0, 6.0),
	}, 1e-4)
	if err != nil {
		panic(err)
	}
	a, _ := c.Resolve(10)
	b, _ := c.Resolve(11)
	fmt.Println(c.Len(), c.Merged(), a, b)
	// Output: 2 1 1 1
}
