// Package mesh provides the triangular surface representation shared by every
// asterinv optimizer, together with shape builders and the minimal plain-text
// exchange format.
//
// A Mesh is an ordered vertex list, an ordered face list (index triples), and
// one outward unit normal plus one positive area per face. Topology (faces,
// vertex count) is fixed once a mesh is created: optimizers mutate vertex
// positions and facet areas only, never connectivity. That contract is what
// makes the cached vertex→face adjacency index valid for the lifetime of a
// mesh (see VertexFaceIndex).
//
// Builders:
//   - NewIcosphere: regular subdivision of an icosahedron projected onto the
//     unit sphere — the canonical inversion starting shape.
//   - NewEllipsoid: per-axis scaling of the icosphere (topology unchanged).
//   - NewDumbbell: two spherical lobes on a common axis — the canonical
//     non-convex test target for the evolutionary optimizer.
//
// The OBJ-style exchange format (one `v x y z` line per vertex, one `f i j k`
// line per face, 1-based indices) is the only persistence in the core.
package mesh
