package types

const floatCmpEpsilon = 1e-6

// Check whether two vectors are equal within the given threshold.
func ApproxEqual(v1, v2 Vec3, threshold float32) bool {
	for i := 0; i < 3; i++ {
		d := v1[i] - v2[i]
		if d < 0 {
			d = -d
		}
		if d > threshold {
			return false
		}
	}
	return true
}
