// SPDX-License-Identifier: MIT
// Package mesh: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...) at outer boundaries); tests match via errors.Is.
// No operation panics on user input.

package mesh

import "errors"

var (
	// ErrEmptyMesh indicates a mesh with no vertices or no faces where a
	// non-degenerate surface is required.
	ErrEmptyMesh = errors.New("mesh: empty vertex or face list")

	// ErrFaceIndexRange indicates a face referencing a vertex index outside
	// [0, len(vertices)).
	ErrFaceIndexRange = errors.New("mesh: face index out of range")

	// ErrBadSubdivision indicates a negative icosphere subdivision level.
	ErrBadSubdivision = errors.New("mesh: subdivision level must be >= 0")

	// ErrBadAxis indicates a non-positive ellipsoid semi-axis.
	ErrBadAxis = errors.New("mesh: ellipsoid semi-axes must be positive")

	// ErrBadOBJ indicates malformed vertex/face exchange data.
	ErrBadOBJ = errors.New("mesh: malformed vertex/face data")
)
