package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	DebugPanelWidth = 260
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
