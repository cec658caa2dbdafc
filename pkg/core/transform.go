package core

import "math"

// Matrix4 is a 4x4 affine transform in row-major order.
// Used as the object-to-world side channel for object-space procedural
// patterns: a shape hands its placement to a material once at setup time.
type Matrix4 struct {
	M [4][4]float64
}

// IdentityMatrix returns the identity transform
func IdentityMatrix() Matrix4 {
	return Matrix4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// TranslationMatrix returns a transform that translates by offset
func TranslationMatrix(offset Vec3) Matrix4 {
	m := IdentityMatrix()
	m.M[0][3] = offset.X
	m.M[1][3] = offset.Y
	m.M[2][3] = offset.Z
	return m
}

// ScaleMatrix returns a transform that scales each axis independently
func ScaleMatrix(s Vec3) Matrix4 {
	m := IdentityMatrix()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	return m
}

// Compose returns m * other (other applied first)
func (m Matrix4) Compose(other Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * other.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// ApplyPoint transforms a point, including translation
func (m Matrix4) ApplyPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// ApplyVector transforms a direction, ignoring translation
func (m Matrix4) ApplyVector(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Translation returns the translation column of the transform
func (m Matrix4) Translation() Vec3 {
	return Vec3{X: m.M[0][3], Y: m.M[1][3], Z: m.M[2][3]}
}

// Inverse returns the inverse of an affine transform, inverting the linear
// part by adjugate and negating the translation through it. Reports false
// for a singular linear part.
func (m Matrix4) Inverse() (Matrix4, bool) {
	a, b, c := m.M[0][0], m.M[0][1], m.M[0][2]
	d, e, f := m.M[1][0], m.M[1][1], m.M[1][2]
	g, h, i := m.M[2][0], m.M[2][1], m.M[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 {
		return IdentityMatrix(), false
	}
	inv := 1.0 / det

	out := IdentityMatrix()
	out.M[0][0] = (e*i - f*h) * inv
	out.M[0][1] = (c*h - b*i) * inv
	out.M[0][2] = (b*f - c*e) * inv
	out.M[1][0] = (f*g - d*i) * inv
	out.M[1][1] = (a*i - c*g) * inv
	out.M[1][2] = (c*d - a*f) * inv
	out.M[2][0] = (d*h - e*g) * inv
	out.M[2][1] = (b*g - a*h) * inv
	out.M[2][2] = (a*e - b*d) * inv

	t := m.Translation()
	out.M[0][3] = -(out.M[0][0]*t.X + out.M[0][1]*t.Y + out.M[0][2]*t.Z)
	out.M[1][3] = -(out.M[1][0]*t.X + out.M[1][1]*t.Y + out.M[1][2]*t.Z)
	out.M[2][3] = -(out.M[2][0]*t.X + out.M[2][1]*t.Y + out.M[2][2]*t.Z)
	return out, true
}
