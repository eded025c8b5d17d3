package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/asterinv/geom"
)

// WriteOBJ writes the minimal plain-text exchange form of the mesh: one
// `v x y z` line per vertex, one `f i j k` line per face with 1-based vertex
// indices. Normals and areas are derived quantities and are not serialized.
func WriteOBJ(w io.Writer, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %.9f %.9f %.9f\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadOBJ parses the exchange format written by WriteOBJ. Lines other than
// `v` and `f` records are ignored, and `f` entries of the `i/…` form keep
// only the vertex index, so output from common mesh tools loads as well.
// Face properties are recomputed after loading.
//
// Returns ErrBadOBJ (wrapped with the offending line) on malformed records,
// ErrEmptyMesh/ErrFaceIndexRange via validation.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: %q", ErrBadOBJ, line)
			}
			var xyz [3]float64
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrBadOBJ, line)
				}
				xyz[i] = val
			}
			m.Vertices = append(m.Vertices, geom.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})

		case strings.HasPrefix(line, "f "):
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: %q", ErrBadOBJ, line)
			}
			var idx [3]int
			for i := 0; i < 3; i++ {
				tok := fields[i+1]
				if slash := strings.IndexByte(tok, '/'); slash >= 0 {
					tok = tok[:slash]
				}
				val, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrBadOBJ, line)
				}
				idx[i] = val - 1
			}
			m.Faces = append(m.Faces, idx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.RecomputeFaceProperties()
	return m, nil
}

// SaveOBJ writes the mesh to a file path.
func SaveOBJ(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteOBJ(f, m)
}

// LoadOBJ reads a mesh from a file path.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOBJ(f)
}
