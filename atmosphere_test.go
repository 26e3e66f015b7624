package helipypter

import (
	"testing"

	"github.com/gonum/floats"
)

func TestAtmosphereSeaLevel(t *testing.T) {
	atm := NewAtmosphere(0)
	if !floats.EqualWithinAbs(atm.T, 518.67, 1e-9) {
		t.Fatalf("sea level temperature is %.6f °R, expected 518.67", atm.T)
	}
	if !floats.EqualWithinAbs(atm.P, 14.695431472081218, 1e-9) {
		t.Fatalf("sea level pressure is %.9f psi", atm.P)
	}
	if !floats.EqualWithinAbs(atm.Rho, 0.002378640811891821, 1e-12) {
		t.Fatalf("sea level density is %.12f slug/ft³", atm.Rho)
	}
}

func TestAtmosphereAltitude(t *testing.T) {
	atm := NewAtmosphere(5000)
	if !floats.EqualWithinAbs(atm.T, 500.8434743827994, 1e-9) {
		t.Fatalf("5000 ft temperature is %.9f °R", atm.T)
	}
	if !floats.EqualWithinAbs(atm.P, 12.227852979809457, 1e-9) {
		t.Fatalf("5000 ft pressure is %.9f psi", atm.P)
	}
	if !floats.EqualWithinAbs(atm.Rho, 0.002049678954763226, 1e-12) {
		t.Fatalf("5000 ft density is %.12f slug/ft³", atm.Rho)
	}
	// The stratosphere is isothermal.
	if got := NewAtmosphere(40000).T; !floats.EqualWithinAbs(got, 216.65*1.8, 1e-9) {
		t.Fatalf("40 kft temperature is %.6f °R, expected %.6f", got, 216.65*1.8)
	}
}

func TestAtmosphereDensityDecreases(t *testing.T) {
	prev := NewAtmosphere(0).Rho
	for alt := 1000.0; alt <= 60000; alt += 1000 {
		rho := NewAtmosphere(alt).Rho
		if rho >= prev {
			t.Fatalf("density did not decrease across %f ft", alt)
		}
		prev = rho
	}
}
