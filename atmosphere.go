package helipypter

import "math"

// Atmosphere defines the ambient conditions at one altitude, in the
// imperial unit system used by all performance calculations. The only
// input is the altitude, in feet; temperature, pressure and density are
// derived from the 1976 U.S. Standard Atmosphere and converted from
// metric.
type Atmosphere struct {
	Alt float64 // geometric altitude, ft
	T   float64 // absolute temperature, °R
	P   float64 // pressure, psi
	Rho float64 // density, slug/ft³
}

// Standard atmosphere layer bases (geopotential m, K, K/m, Pa).
var atmLayers = [7]struct {
	hBase, tBase, lapse, pBase float64
}{
	{0, 288.15, -0.0065, 101325},
	{11000, 216.65, 0, 22632.06},
	{20000, 216.65, 0.001, 5474.889},
	{32000, 228.65, 0.0028, 868.0187},
	{47000, 270.65, 0, 110.9063},
	{51000, 270.65, -0.0028, 66.93887},
	{71000, 214.65, -0.002, 3.956420},
}

const (
	g0      = 9.80665   // m/s²
	rAir    = 287.05287 // J/(kg·K)
	rEarth  = 6356766.0 // m
	ft2m    = 3.28084   // ft per m
	pa2psi  = 6895.0    // Pa per psi
	rho2imp = 515.0     // (kg/m³) per (slug/ft³)
)

// NewAtmosphere returns the atmosphere snapshot at the given geometric
// altitude in feet.
func NewAtmosphere(altFt float64) Atmosphere {
	z := altFt / ft2m
	h := rEarth * z / (rEarth + z) // geopotential altitude
	layer := atmLayers[0]
	for _, l := range atmLayers {
		if h < l.hBase {
			break
		}
		layer = l
	}
	t := layer.tBase + layer.lapse*(h-layer.hBase)
	var p float64
	if layer.lapse == 0 {
		p = layer.pBase * math.Exp(-g0*(h-layer.hBase)/(rAir*layer.tBase))
	} else {
		p = layer.pBase * math.Pow(layer.tBase/t, g0/(rAir*layer.lapse))
	}
	rho := p / (rAir * t)
	return Atmosphere{
		Alt: altFt,
		T:   t * 1.8,
		P:   p / pa2psi,
		Rho: rho / rho2imp,
	}
}
