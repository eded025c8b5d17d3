package geom

import "math"

// Vec3 is a Cartesian 3-vector (position or direction).
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns the Euclidean length of the vector.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns a unit-length version of the vector.
// The zero vector is returned unchanged (no division by zero).
func (v Vec3) Unit() Vec3 {
	l := v.Norm()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Mat3 is a 3×3 rotation matrix in row-major order.
type Mat3 struct {
	M [3][3]float64
}

// MulVec applies the matrix to a vector.
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}

// Mul returns the matrix product a·b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
		}
	}
	return out
}

// RotZ returns the rotation matrix about the z-axis by angle (radians).
func RotZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{M: [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// RotY returns the rotation matrix about the y-axis by angle (radians).
func RotY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{M: [3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// Clamp restricts x to [lo, hi]. Used to keep inverse-trig arguments inside
// their domain when floating round-off pushes a cosine slightly past ±1.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
