package mesh

import (
	"math"

	"github.com/katalvlaran/asterinv/geom"
)

// NewIcosphere builds a unit sphere by subdividing a regular icosahedron
// `level` times and projecting every vertex onto the unit sphere. Level 0 is
// the bare icosahedron (12 vertices, 20 faces); each level quadruples the
// face count.
//
// Returns ErrBadSubdivision for level < 0.
//
// Complexity: O(20·4^level).
func NewIcosphere(level int) (*Mesh, error) {
	if level < 0 {
		return nil, ErrBadSubdivision
	}

	t := (1.0 + math.Sqrt(5.0)) / 2.0
	vertices := []geom.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range vertices {
		vertices[i] = vertices[i].Unit()
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for s := 0; s < level; s++ {
		midpoints := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			mid := vertices[a].Add(vertices[b]).Scale(0.5).Unit()
			vertices = append(vertices, mid)
			idx := len(vertices) - 1
			midpoints[key] = idx
			return idx
		}

		next := make([][3]int, 0, 4*len(faces))
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	m := &Mesh{Vertices: vertices, Faces: faces}
	m.RecomputeFaceProperties()
	return m, nil
}

// NewEllipsoid builds a triaxial (a, b, c) ellipsoid by non-uniform per-axis
// scaling of the icosphere's vertices. Scaling does not change topology.
//
// Returns ErrBadAxis when any semi-axis is non-positive, ErrBadSubdivision
// for level < 0.
func NewEllipsoid(a, b, c float64, level int) (*Mesh, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, ErrBadAxis
	}
	m, err := NewIcosphere(level)
	if err != nil {
		return nil, err
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = geom.Vec3{X: v.X * a, Y: v.Y * b, Z: v.Z * c}
	}
	m.RecomputeFaceProperties()
	return m, nil
}

// NewDumbbell builds a non-convex two-lobe test body: two spherical lobes of
// the given radius centered at ±halfLen on the x-axis. The two lobes share no
// vertices; the combined topology is still fixed at construction.
//
// Returns ErrBadAxis when halfLen or lobeRadius is non-positive.
func NewDumbbell(halfLen, lobeRadius float64, level int) (*Mesh, error) {
	if halfLen <= 0 || lobeRadius <= 0 {
		return nil, ErrBadAxis
	}
	lobe, err := NewIcosphere(level)
	if err != nil {
		return nil, err
	}

	nl := len(lobe.Vertices)
	vertices := make([]geom.Vec3, 0, 2*nl)
	for _, v := range lobe.Vertices {
		vertices = append(vertices, geom.Vec3{X: v.X*lobeRadius - halfLen, Y: v.Y * lobeRadius, Z: v.Z * lobeRadius})
	}
	for _, v := range lobe.Vertices {
		vertices = append(vertices, geom.Vec3{X: v.X*lobeRadius + halfLen, Y: v.Y * lobeRadius, Z: v.Z * lobeRadius})
	}

	faces := make([][3]int, 0, 2*len(lobe.Faces))
	faces = append(faces, lobe.Faces...)
	for _, f := range lobe.Faces {
		faces = append(faces, [3]int{f[0] + nl, f[1] + nl, f[2] + nl})
	}

	m := &Mesh{Vertices: vertices, Faces: faces}

	// Normals must point away from each lobe's own center, not the joint
	// centroid, so compute per-lobe properties and concatenate.
	left := &Mesh{Vertices: vertices[:nl], Faces: lobe.Faces}
	left.RecomputeFaceProperties()
	rightVerts := vertices[nl:]
	right := &Mesh{Vertices: rightVerts, Faces: lobe.Faces}
	right.RecomputeFaceProperties()

	m.Normals = append(append([]geom.Vec3{}, left.Normals...), right.Normals...)
	m.Areas = append(append([]float64{}, left.Areas...), right.Areas...)
	return m, nil
}
