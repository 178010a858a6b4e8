// Package cosmo provides the comoving-distance collaborator used to turn
// redshifts into transverse separations.
//
// Only the line-of-sight comoving distance is modelled. Anything that can
// answer ComovingDistance satisfies Cosmology; FlatLambdaCDM is the stock
// implementation.
package cosmo

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// SpeedOfLight in km/s.
const SpeedOfLight = 299792.458

// ErrBadParameter indicates a non-physical cosmological parameter.
var ErrBadParameter = errors.New("cosmo: bad parameter")

// Cosmology maps a redshift to a line-of-sight comoving distance in Mpc.
type Cosmology interface {
	ComovingDistance(z float64) float64
}

// DistanceFunc adapts a plain function to Cosmology.
type DistanceFunc func(z float64) float64

// ComovingDistance calls f.
func (f DistanceFunc) ComovingDistance(z float64) float64 { return f(z) }

// FlatLambdaCDM is a spatially flat universe of matter and a cosmological
// constant, radiation neglected.
type FlatLambdaCDM struct {
	H0  float64 // Hubble constant, km/s/Mpc
	Om0 float64 // matter density today
	// Nodes is the Gauss-Legendre order of the distance integral; 0 means 64.
	Nodes int
}

// NewFlatLambdaCDM validates h0 > 0 and 0 ≤ om0 ≤ 1.
func NewFlatLambdaCDM(h0, om0 float64) (FlatLambdaCDM, error) {
	if !(h0 > 0) || math.IsInf(h0, 0) {
		return FlatLambdaCDM{}, fmt.Errorf("H0 = %g: %w", h0, ErrBadParameter)
	}
	if !(om0 >= 0 && om0 <= 1) {
		return FlatLambdaCDM{}, fmt.Errorf("Om0 = %g: %w", om0, ErrBadParameter)
	}

	return FlatLambdaCDM{H0: h0, Om0: om0}, nil
}

// DefaultFlatLambdaCDM is H0 = 70, Om0 = 0.3.
func DefaultFlatLambdaCDM() FlatLambdaCDM {
	return FlatLambdaCDM{H0: 70, Om0: 0.3}
}

// HubbleDistance is c/H0 in Mpc.
func (c FlatLambdaCDM) HubbleDistance() float64 { return SpeedOfLight / c.H0 }

// E is the dimensionless Hubble rate H(z)/H0.
func (c FlatLambdaCDM) E(z float64) float64 {
	a := 1 + z

	return math.Sqrt(c.Om0*a*a*a + (1 - c.Om0))
}

// ComovingDistance is D_H ∫_0^z dz'/E(z'). Non-positive z gives 0.
func (c FlatLambdaCDM) ComovingDistance(z float64) float64 {
	if !(z > 0) {
		return 0
	}
	n := c.Nodes
	if n <= 0 {
		n = 64
	}
	integral := quad.Fixed(func(x float64) float64 { return 1 / c.E(x) }, 0, z, n, nil, 0)

	return c.HubbleDistance() * integral
}
