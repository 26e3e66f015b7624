package helipypter

import (
	"github.com/gonum/matrix/mat64"
)

const (
	// ktsToFps converts knots to ft/s.
	ktsToFps = 1.68781
	// gammaRAir is γ·R for air in the imperial system (R in ft·lb/(slug·°R)).
	gammaRAir = 1.4 * 1716.4
)

// polyval evaluates the polynomial with the given coefficients (low order
// first) at x, as the inner product of the coefficient vector with the
// power basis via mat64/BLAS.
func polyval(coeffs []float64, x float64) float64 {
	basis := make([]float64, len(coeffs))
	p := 1.0
	for i := range basis {
		basis[i] = p
		p *= x
	}
	return mat64.Dot(mat64.NewVector(len(coeffs), coeffs), mat64.NewVector(len(basis), basis))
}
