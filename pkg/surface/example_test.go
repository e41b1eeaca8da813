package surface_test

import (
	"fmt"

	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/surface"
)

func ExamplePlaneSurface_GlobalToLocal2D() {
	s, err := surface.New(math3d.V3(2, 6, 1), math3d.V3(1, 0, 0), surface.NewRectangle(1, 3))
	if err != nil {
		panic(err)
	}

	local := s.GlobalToLocal2D(math3d.V3(2, 7, 4))
	fmt.Println(local)
	fmt.Println(s.Local2DToGlobal(local))
	fmt.Println(s.IsPointOnSurface(math3d.V3(2, 7, 4)))
	// Output:
	// (1, 3)
	// (2, 7, 4)
	// true
}

func ExamplePlaneSurface_GlobalToLocal() {
	s := surface.MustNew(math3d.V3(2, 6, 1), math3d.V3(1, 0, 0), nil)

	fmt.Println(s.GlobalToLocal(math3d.V3(5, 7, 4)))
	// Output: (3, 1, 3)
}
