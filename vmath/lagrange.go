package vmath

// Sample is one interpolation node: value Y observed at position X
type Sample struct {
	X, Y float64
}

// Lagrange evaluates the Lagrange polynomial through samples at query
// Nodes sharing position X with node i are skipped as divisors of i's basis,
// so coincident nodes never divide by zero but each still adds its own term
// An empty sample set evaluates to 0
func Lagrange(query float64, samples []Sample) float64 {
	var result float64
	for i, si := range samples {
		term := si.Y
		for j, sj := range samples {
			if i == j || sj.X == si.X {
				continue
			}
			term *= (query - sj.X) / (si.X - sj.X)
		}
		result += term
	}
	return result
}
