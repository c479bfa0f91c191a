package utils

const (
	NODETOL = 1.e-12
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace produces N evenly spaced points covering [xmin, xmax] inclusive
func Linspace(xmin, xmax float64, N int) (x Vector) {
	x = NewVector(N)
	if N == 1 {
		x.Set(0, xmin)
		return
	}
	dx := (xmax - xmin) / float64(N-1)
	for i := 0; i < N; i++ {
		x.Set(i, xmin+float64(i)*dx)
	}
	return
}
