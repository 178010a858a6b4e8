// Package spherical maps sky coordinates and angular or projected bins onto
// the Euclidean quantities a pair counter understands.
//
// Points on the sky, (ra, dec) in degrees, become unit vectors in 3-D; an
// angular separation θ between two of them is then a chord of length
// 2·sin(θ/2), so angular bins become chord bins and any Euclidean counter
// can count angular pairs.
//
// For projected cross-correlations, physical bins r (Mpc) are first mapped
// to an oversampled, log-spaced θ grid spanning the redshift range, counted
// per object, and then folded back into r bins with Rebin.
package spherical
