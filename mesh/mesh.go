package mesh

import "github.com/katalvlaran/asterinv/geom"

// Mesh is a closed triangular surface.
//
// Invariants (established by the builders, preserved by RecomputeFaceProperties):
//   - Normals have unit length and point away from the vertex centroid.
//   - Areas are positive for non-degenerate faces.
//   - Every face index is within [0, len(Vertices)).
//   - Faces never change after construction; only Vertices and Areas are
//     mutated by optimizer steps.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][3]int
	Normals  []geom.Vec3
	Areas    []float64

	// vertexFaces caches the vertex→adjacent-face index. Built on first use;
	// valid for the mesh lifetime because topology is immutable.
	vertexFaces [][]int
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Clone returns a deep copy sharing nothing with the receiver. The adjacency
// cache is shared by reference: it depends only on topology, which both
// meshes have in common and neither may change.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices:    make([]geom.Vec3, len(m.Vertices)),
		Faces:       make([][3]int, len(m.Faces)),
		Normals:     make([]geom.Vec3, len(m.Normals)),
		Areas:       make([]float64, len(m.Areas)),
		vertexFaces: m.vertexFaces,
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Faces, m.Faces)
	copy(out.Normals, m.Normals)
	copy(out.Areas, m.Areas)
	return out
}

// Validate checks the structural invariants: non-empty lists and in-range
// face indices. Returns ErrEmptyMesh or ErrFaceIndexRange.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return ErrEmptyMesh
	}
	n := len(m.Vertices)
	for _, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= n {
				return ErrFaceIndexRange
			}
		}
	}
	return nil
}

// Centroid returns the mean vertex position.
func (m *Mesh) Centroid() geom.Vec3 {
	var c geom.Vec3
	for _, v := range m.Vertices {
		c = c.Add(v)
	}
	if len(m.Vertices) > 0 {
		c = c.Scale(1.0 / float64(len(m.Vertices)))
	}
	return c
}

// Scale returns the largest vertex distance from the origin, used by the
// evolutionary optimizer to calibrate mutation magnitudes.
func (m *Mesh) Scale() float64 {
	s := 0.0
	for _, v := range m.Vertices {
		if r := v.Norm(); r > s {
			s = r
		}
	}
	return s
}

// FaceProperties computes per-face outward unit normals and areas from a
// vertex/face configuration: the cross product of two edge vectors gives the
// un-normalized normal; half its length is the area; orientation is fixed to
// point away from the vertex centroid.
//
// Degenerate (collapsed) faces get a zero area and a zero normal; callers in
// optimizer loops treat any non-positive area as an invalid topology.
//
// Complexity: O(len(faces)).
func FaceProperties(vertices []geom.Vec3, faces [][3]int) (normals []geom.Vec3, areas []float64) {
	normals = make([]geom.Vec3, len(faces))
	areas = make([]float64, len(faces))

	var centroid geom.Vec3
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	if len(vertices) > 0 {
		centroid = centroid.Scale(1.0 / float64(len(vertices)))
	}

	for i, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		cross := b.Sub(a).Cross(c.Sub(a))
		l := cross.Norm()
		areas[i] = 0.5 * l
		if l == 0 {
			continue
		}
		n := cross.Scale(1.0 / l)

		// Orient away from the centroid.
		center := a.Add(b).Add(c).Scale(1.0 / 3.0)
		if n.Dot(center.Sub(centroid)) < 0 {
			n = n.Neg()
		}
		normals[i] = n
	}

	return normals, areas
}

// RecomputeFaceProperties refreshes Normals and Areas from the current
// vertex positions. Called after any vertex mutation.
func (m *Mesh) RecomputeFaceProperties() {
	m.Normals, m.Areas = FaceProperties(m.Vertices, m.Faces)
}

// VertexFaceIndex returns, for every vertex, the indices of its adjacent
// faces. The index is built once per mesh and cached; topology immutability
// keeps it valid across vertex/area mutations.
//
// Complexity: O(len(faces)) on first call, O(1) afterwards.
func (m *Mesh) VertexFaceIndex() [][]int {
	if m.vertexFaces != nil {
		return m.vertexFaces
	}
	idx := make([][]int, len(m.Vertices))
	for fi, f := range m.Faces {
		for _, vi := range f {
			idx[vi] = append(idx[vi], fi)
		}
	}
	m.vertexFaces = idx
	return idx
}

// MeanEdgeLength returns the mean length over all face edges (each interior
// edge counted once per adjacent face, matching the edge-regularizer sum).
func (m *Mesh) MeanEdgeLength() float64 {
	total := 0.0
	count := 0
	for _, f := range m.Faces {
		for e := 0; e < 3; e++ {
			va := m.Vertices[f[e]]
			vb := m.Vertices[f[(e+1)%3]]
			total += va.Sub(vb).Norm()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MeanArea returns the mean facet area.
func (m *Mesh) MeanArea() float64 {
	if len(m.Areas) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range m.Areas {
		total += a
	}
	return total / float64(len(m.Areas))
}
