// Package matrix implements the affine transforms used to map rendered
// pixel coordinates onto PDF user space.
package matrix

type Matrix [3][3]float64

// New returns the affine transform
//
//	| xx xy x0 |
//	| yx yy y0 |
//	| 0  0  1  |
//
// applied to column vectors (x, y, 1).
func New(xx, yx, xy, yy, x0, y0 float64) *Matrix {
	return &Matrix{
		{xx, xy, x0},
		{yx, yy, y0},
		{0, 0, 1},
	}
}

// Apply transforms the point (x, y).
func (m *Matrix) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2],
		m[1][0]*x + m[1][1]*y + m[1][2]
}

// ApplyDistance transforms the distance vector (dx, dy),
// ignoring the translation components.
func (m *Matrix) ApplyDistance(dx, dy float64) (float64, float64) {
	return m[0][0]*dx + m[0][1]*dy,
		m[1][0]*dx + m[1][1]*dy
}
