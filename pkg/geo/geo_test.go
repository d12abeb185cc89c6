package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	var v Validator = Bounds{}

	tests := []struct {
		name      string
		value     float64
		latitude  bool
		longitude bool
	}{
		{"zero", 0, true, true},
		{"hamden", 41.44037205, true, true},
		{"negative longitude", -72.953037575, true, true},
		{"lat edge", 90, true, true},
		{"beyond lat", 90.0001, false, true},
		{"lon edge", -180, false, true},
		{"beyond lon", 180.5, false, false},
		{"nan", math.NaN(), false, false},
		{"inf", math.Inf(1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.latitude, v.ValidateLatitude(tt.value))
			assert.Equal(t, tt.longitude, v.ValidateLongitude(tt.value))
		})
	}
}
