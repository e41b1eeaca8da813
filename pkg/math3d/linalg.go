package math3d

// TranslatePoint returns x moved by trans.
func TranslatePoint(x, trans Vec3) Vec3 {
	return x.Add(trans)
}

// RotateAboutXAxis rotates v by angle radians about the world X axis
// (right-handed, counter-clockwise looking down -X).
func RotateAboutXAxis(v Vec3, angle float64) Vec3 {
	return RotateX(angle).MulVec3(v)
}

// RotateAboutYAxis rotates v by angle radians about the world Y axis.
func RotateAboutYAxis(v Vec3, angle float64) Vec3 {
	return RotateY(angle).MulVec3(v)
}

// RotateAboutZAxis rotates v by angle radians about the world Z axis.
func RotateAboutZAxis(v Vec3, angle float64) Vec3 {
	return RotateZ(angle).MulVec3(v)
}
