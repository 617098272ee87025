package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"nairobi fallback", Coordinate{Latitude: -1.2921, Longitude: 36.8219}, true},
		{"poles and antimeridian", Coordinate{Latitude: 90, Longitude: -180}, true},
		{"latitude too far north", Coordinate{Latitude: 90.0001, Longitude: 0}, false},
		{"longitude out of range", Coordinate{Latitude: 0, Longitude: 181}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coord.Valid())
		})
	}
}

func TestCoordinateFormat(t *testing.T) {
	c := Coordinate{Latitude: -1.2921, Longitude: 36.8219}
	assert.Equal(t, "-1.29210, 36.82190", c.Format(5))
	assert.Equal(t, "-1.292100, 36.821900", c.Format(6))
}

func TestContactValidate(t *testing.T) {
	assert.NoError(t, Contact{Name: "Mum", Phone: "999"}.Validate())
	assert.Error(t, Contact{Name: "", Phone: "999"}.Validate())
	assert.Error(t, Contact{Name: "Mum", Phone: "   "}.Validate())
}
