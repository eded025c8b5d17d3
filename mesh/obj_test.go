package mesh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/asterinv/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOBJ_RoundTrip writes an icosphere and reads it back unchanged.
func TestOBJ_RoundTrip(t *testing.T) {
	src, err := mesh.NewIcosphere(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mesh.WriteOBJ(&buf, src))

	got, err := mesh.ReadOBJ(&buf)
	require.NoError(t, err)

	require.Equal(t, src.NumVertices(), got.NumVertices())
	require.Equal(t, src.NumFaces(), got.NumFaces())
	for i := range src.Vertices {
		assert.InDelta(t, src.Vertices[i].X, got.Vertices[i].X, 1e-8)
		assert.InDelta(t, src.Vertices[i].Y, got.Vertices[i].Y, 1e-8)
		assert.InDelta(t, src.Vertices[i].Z, got.Vertices[i].Z, 1e-8)
	}
	assert.Equal(t, src.Faces, got.Faces)
}

// TestReadOBJ_SlashIndices accepts `f i/j/k` records from external tools.
func TestReadOBJ_SlashIndices(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2/2/2 3/3/3\n"
	m, err := mesh.ReadOBJ(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{0, 1, 2}}, m.Faces)
	assert.InDelta(t, 0.5, m.Areas[0], 1e-12)
}

// TestReadOBJ_Malformed surfaces ErrBadOBJ with the offending line attached.
func TestReadOBJ_Malformed(t *testing.T) {
	_, err := mesh.ReadOBJ(strings.NewReader("v 1 2\n"))
	assert.ErrorIs(t, err, mesh.ErrBadOBJ)

	_, err = mesh.ReadOBJ(strings.NewReader("v 0 0 0\nf 1 x 2\n"))
	assert.ErrorIs(t, err, mesh.ErrBadOBJ)
}

// TestReadOBJ_OutOfRangeFace surfaces validation sentinels after parsing.
func TestReadOBJ_OutOfRangeFace(t *testing.T) {
	_, err := mesh.ReadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.ErrorIs(t, err, mesh.ErrFaceIndexRange)

	_, err = mesh.ReadOBJ(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)
}
