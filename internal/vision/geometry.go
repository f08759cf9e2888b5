package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Geometry is the per-frame hand descriptor derived from the dominant
// contour: the four hull extremities and the horizontal center.
type Geometry struct {
	Top     image.Point
	Bottom  image.Point
	Left    image.Point
	Right   image.Point
	CenterX int
}

// ExtractGeometry computes the convex hull of the contour and reads the
// extremities off the hull points. Working on the hull rather than the
// raw contour suppresses the concavities between fingers, keeping the
// extremities stable under noise and partial occlusion.
func ExtractGeometry(contour []image.Point) (Geometry, bool) {
	if len(contour) == 0 {
		return Geometry{}, false
	}

	pv := gocv.NewPointVectorFromPoints(contour)
	defer pv.Close()

	hull := gocv.NewMat()
	defer hull.Close()
	gocv.ConvexHull(pv, &hull, false, false)

	if hull.Rows() == 0 {
		return Geometry{}, false
	}

	// The hull Mat holds indices into the contour.
	first := contour[int(hull.GetIntAt(0, 0))]
	g := Geometry{Top: first, Bottom: first, Left: first, Right: first}

	for i := 1; i < hull.Rows(); i++ {
		idx := int(hull.GetIntAt(i, 0))
		if idx < 0 || idx >= len(contour) {
			continue
		}
		p := contour[idx]

		if p.Y < g.Top.Y {
			g.Top = p
		}
		if p.Y > g.Bottom.Y {
			g.Bottom = p
		}
		if p.X < g.Left.X {
			g.Left = p
		}
		if p.X > g.Right.X {
			g.Right = p
		}
	}

	g.CenterX = (g.Left.X + g.Right.X) / 2
	return g, true
}
