package cosmo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/twopoint/cosmo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComovingDistance_EinsteinDeSitter checks the closed form for Om0 = 1:
// D_C = 2 D_H (1 − 1/√(1+z)).
func TestComovingDistance_EinsteinDeSitter(t *testing.T) {
	c, err := cosmo.NewFlatLambdaCDM(100, 1)
	require.NoError(t, err)
	dh := c.HubbleDistance()

	for _, z := range []float64{0.1, 0.5, 1, 3} {
		want := 2 * dh * (1 - 1/math.Sqrt(1+z))
		assert.InDelta(t, want, c.ComovingDistance(z), 1e-6*want, "z=%g", z)
	}
}

// TestComovingDistance_DeSitter checks Om0 = 0: D_C = D_H·z.
func TestComovingDistance_DeSitter(t *testing.T) {
	c := cosmo.FlatLambdaCDM{H0: 70, Om0: 0}
	assert.InDelta(t, c.HubbleDistance()*0.8, c.ComovingDistance(0.8), 1e-9)
	assert.Zero(t, c.ComovingDistance(0))
	assert.Zero(t, c.ComovingDistance(-1))
}

func TestComovingDistance_Monotone(t *testing.T) {
	c := cosmo.DefaultFlatLambdaCDM()
	prev := 0.0
	for z := 0.05; z < 2; z += 0.05 {
		d := c.ComovingDistance(z)
		assert.Greater(t, d, prev)
		prev = d
	}
	// Reference value for H0=70, Om0=0.3 at z=1 is about 3303.8 Mpc.
	assert.InDelta(t, 3303.8, c.ComovingDistance(1), 1)
}

func TestNewFlatLambdaCDM_Errors(t *testing.T) {
	_, err := cosmo.NewFlatLambdaCDM(0, 0.3)
	assert.ErrorIs(t, err, cosmo.ErrBadParameter)
	_, err = cosmo.NewFlatLambdaCDM(70, 1.2)
	assert.ErrorIs(t, err, cosmo.ErrBadParameter)
}

func TestDistanceFunc(t *testing.T) {
	var c cosmo.Cosmology = cosmo.DistanceFunc(func(z float64) float64 { return 1000 * z })
	assert.Equal(t, 500.0, c.ComovingDistance(0.5))
}
