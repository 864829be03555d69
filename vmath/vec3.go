package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector for interpolation-heavy paths
// Atom coordinates are in angstroms
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Dist returns the Euclidean distance between two points
func Dist(a, b Vec3) float64 {
	return Mag(Sub(b, a))
}

// Lerp interpolates linearly from start to end, t unclamped
func Lerp(t float64, start, end Vec3) Vec3 {
	return Add(start, Scale(Sub(end, start), t))
}
