package types

import (
	"errors"
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	oneDegree := EarthRadiusKm * math.Pi / 180

	tests := []struct {
		name string
		a    Coords
		b    Coords
		want float64
	}{
		{
			name: "same point",
			a:    NewCoords(39.11539, -107.65840),
			b:    NewCoords(39.11539, -107.65840),
			want: 0,
		},
		{
			name: "one degree of latitude",
			a:    NewCoords(10, 20),
			b:    NewCoords(11, 20),
			want: oneDegree,
		},
		{
			name: "one degree of longitude on the equator",
			a:    NewCoords(0, 0),
			b:    NewCoords(0, 1),
			want: oneDegree,
		},
		{
			name: "antipodal points",
			a:    NewCoords(0, 0),
			b:    NewCoords(0, 180),
			want: EarthRadiusKm * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("HaversineKm() = %v, want %v", got, tt.want)
			}
			if back := HaversineKm(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("HaversineKm() not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestBoundAround(t *testing.T) {
	b := BoundAround(NewCoords(0, 0), KmPerDegreeLatitude)

	if math.Abs(b.Min.Lat()+1) > 1e-9 || math.Abs(b.Max.Lat()-1) > 1e-9 {
		t.Errorf("latitude span = [%v, %v], want [-1, 1]", b.Min.Lat(), b.Max.Lat())
	}

	wantLon := KmPerDegreeLatitude / KmPerDegreeLongitude
	if math.Abs(b.Max.Lon()-wantLon) > 1e-9 || math.Abs(b.Min.Lon()+wantLon) > 1e-9 {
		t.Errorf("longitude span = [%v, %v], want ±%v", b.Min.Lon(), b.Max.Lon(), wantLon)
	}

	if !b.Contains(NewCoords(0.5, 0.5).Point()) {
		t.Error("bound should contain a nearby point")
	}
}

func TestBoundAround_Clamped(t *testing.T) {
	b := BoundAround(NewCoords(89.9, 179.5), 4800)

	if b.Max.Lat() > 90 || b.Min.Lat() < -90 {
		t.Errorf("latitude not clamped: %v", b)
	}
	if b.Max.Lon() > 180 || b.Min.Lon() < -180 {
		t.Errorf("longitude not clamped: %v", b)
	}
}

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coords
		wantErr error
	}{
		{"valid", NewCoords(39.7392, -104.9903), nil},
		{"north pole", NewCoords(90, 0), nil},
		{"latitude too large", NewCoords(91, 0), ErrInvalidLatitude},
		{"latitude NaN", NewCoords(math.NaN(), 0), ErrInvalidLatitude},
		{"longitude too small", NewCoords(0, -180.5), ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoords_PointRoundTrip(t *testing.T) {
	c := NewCoords(39.11539, -107.65840)
	p := c.Point()
	if p.Lon() != c.Longitude || p.Lat() != c.Latitude {
		t.Errorf("Point() = %v, want [lon, lat] order", p)
	}
	if got := CoordsFromPoint(p); got != c {
		t.Errorf("CoordsFromPoint() = %v, want %v", got, c)
	}
}
