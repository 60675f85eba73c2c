package color

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidGaussianParameters is returned when sigma is zero/negative or
// center/value are NaN, mirroring the original's GaussianError::InvalidParameters.
var ErrInvalidGaussianParameters = errors.New("color: invalid gaussian parameters")

// Gaussian evaluates G(v; mu, sigma) = exp(-(v-mu)^2 / (2*sigma^2)).
// Theme scoring (pkg/palette) composes several of these per swatch.
func Gaussian(v, mu, sigma float64) (float64, error) {
	if sigma <= 0 || math.IsNaN(mu) || math.IsNaN(v) {
		return 0, ErrInvalidGaussianParameters
	}
	d := v - mu
	return math.Exp(-(d * d) / (2 * sigma * sigma)), nil
}

// MustGaussian panics on invalid parameters; used only with compile-time
// constant theme centers/sigmas where the panic can never fire.
func MustGaussian(v, mu, sigma float64) float64 {
	g, err := Gaussian(v, mu, sigma)
	if err != nil {
		panic(err)
	}
	return g
}
