package geometry_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/boarddrc/drc/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositiveLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      geometry.Length
		wantErr error
	}{
		{"positive", 1, nil},
		{"zero", 0, geometry.ErrNonPositiveLength},
		{"negative", -5, geometry.ErrNonPositiveLength},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := geometry.NewPositiveLength(tc.in)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestAngleNormalization(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geometry.Angle(0), geometry.NewAngle(0))
	assert.Equal(t, geometry.Angle(0), geometry.NewAngle(360000))
	assert.Equal(t, geometry.Angle(359000), geometry.NewAngle(-1000))
	assert.Equal(t, geometry.Angle(90000), geometry.NewAngle(450000))
}

func TestAngleMirrorAndNegate(t *testing.T) {
	t.Parallel()

	a := geometry.NewAngle(30000)
	assert.Equal(t, geometry.NewAngle(330000), a.Mirror())
	assert.Equal(t, geometry.NewAngle(330000), a.Negate())
	assert.Equal(t, geometry.Angle(0), geometry.Angle(0).Negate())
}

func TestPointScaleInvariance(t *testing.T) {
	t.Parallel()

	p := geometry.Point{X: 1000, Y: -2000}
	scaled := p.Scale(3)
	assert.Equal(t, geometry.Point{X: 3000, Y: -6000}, scaled)
}

func TestRatioMul(t *testing.T) {
	t.Parallel()

	r := geometry.RatioFromPercent(25)
	assert.Equal(t, geometry.Length(250), r.Mul(1000))
}

func TestPositiveLengthJSONRoundTrip(t *testing.T) {
	t.Parallel()

	pl := geometry.MustPositiveLength(500000)
	data, err := json.Marshal(pl)
	require.NoError(t, err)
	assert.Equal(t, "500000", string(data))

	var decoded geometry.PositiveLength
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, pl, decoded)
}

func TestPositiveLengthJSONRejectsNonPositive(t *testing.T) {
	t.Parallel()

	var decoded geometry.PositiveLength
	assert.Error(t, json.Unmarshal([]byte("0"), &decoded))
}

func TestUnsignedLimitedRatioJSONRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := geometry.NewUnsignedLimitedRatio(geometry.RatioFromPercent(50))
	require.NoError(t, err)
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded geometry.UnsignedLimitedRatio
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}
