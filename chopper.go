package helipypter

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// defaultIdlePower is the assumed ground idle power setting, in percent
// of the rated limit.
const defaultIdlePower = 20.0

// Rotor defines the geometry of a single rotor. A constant equivalent
// chord is used for all blades; no root cut-out is available.
type Rotor struct {
	Diameter float64 // ft
	Blades   int
	Chord    float64 // equivalent chord, in
	Omega    float64 // rad/s
	Cd0      float64 // zero-lift drag coefficient
}

// Radius returns the rotor radius in ft.
func (r Rotor) Radius() float64 {
	return r.Diameter / 2
}

// Area returns the rotor disk area in ft².
func (r Rotor) Area() float64 {
	return math.Pi * r.Radius() * r.Radius()
}

// TipSpeed returns the blade tip speed in ft/s.
func (r Rotor) TipSpeed() float64 {
	return r.Omega * r.Radius()
}

// Solidity returns the ratio of total blade area to disk area.
func (r Rotor) Solidity() float64 {
	return float64(r.Blades) * r.Chord / (12 * math.Pi * r.Radius())
}

// Chopper defines a helicopter with typical design features: a single
// main rotor, a single tail rotor, and no shared lift or forward
// thrusters. Defaults are set for all values, so be careful with results
// before checking that all your input values (and units) are correct!
//
// The derived rotor quantities (radius, disk area, tip speed, solidity)
// are computed on read via the Rotor methods, so they always follow the
// base geometry.
type Chopper struct {
	Name string

	MR Rotor // main rotor
	TR Rotor // tail rotor

	// Airframe data.
	EmptyWeight   float64 // lb
	FuelWeight    float64 // lb
	PayloadWeight float64 // lb
	Download      float64 // vertical drag fraction of gross weight
	HIGEFactor    float64 // in-ground-effect thrust factor
	FlatPlateArea float64 // equivalent flat plate drag area fe, ft²
	TailLength    float64 // rotor center to TR center of thrust, ft
	VTailArea     float64 // ft²
	VTailCl       float64
	VTailAR       float64

	// Engine data.
	MRXsmnEff      float64 // main rotor transmission efficiency
	TRXsmnEff      float64 // tail rotor transmission efficiency
	CrossoverEff   float64 // cross-over transmission efficiency
	AccessoryPower float64 // hp
	InstallEff     float64 // installation efficiency
	GearboxLimit   float64 // hp
	RatedPower     float64 // hp

	// FuelCurve holds the normalized bsfc curve coefficients, low order
	// first, for a degree-5 polynomial in percent rated power.
	FuelCurve [6]float64

	logger kitlog.Logger
}

// NewChopper returns a Chopper with every field set to its default, so a
// partial specification is always valid: build one and override only the
// fields of interest.
func NewChopper(name string) *Chopper {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "chopper", name)
	return &Chopper{
		Name: name,
		MR:   Rotor{Diameter: 10, Blades: 2, Chord: 10.4, Omega: 43.2, Cd0: 0.0080},
		TR:   Rotor{Diameter: 2, Blades: 2, Chord: 6, Omega: 20, Cd0: 0.015},

		EmptyWeight:   1000,
		FuelWeight:    0,
		PayloadWeight: 0,
		Download:      0.03,
		HIGEFactor:    1.2,
		FlatPlateArea: 5,
		TailLength:    15,
		VTailArea:     15,
		VTailCl:       0.1,
		VTailAR:       3,

		MRXsmnEff:      0.985,
		TRXsmnEff:      0.9712,
		CrossoverEff:   0.986,
		AccessoryPower: 10,
		InstallEff:     0.95,
		GearboxLimit:   674,
		RatedPower:     813,

		FuelCurve: [6]float64{1.839, -8.754e-02, 2.52e-03, -3.77e-05, 2.822e-07, -8.331e-10},

		logger: logger,
	}
}

// SetLogger replaces the structured log sink of the vehicle. Model
// advisories (e.g. power limit exceedances) and mission status lines are
// emitted through it.
func (ch *Chopper) SetLogger(logger kitlog.Logger) {
	ch.logger = logger
}

// Clone returns an independent deep copy of the vehicle, e.g. to explore
// weight or drag variants without re-specifying all the parameters.
// Mutating the copy is never observable through the original.
func (ch *Chopper) Clone() *Chopper {
	cp := *ch
	return &cp
}

// GW returns the gross weight in lb. It is always recomputed from the
// empty, fuel and payload weights.
func (ch *Chopper) GW() float64 {
	return ch.EmptyWeight + ch.FuelWeight + ch.PayloadWeight
}

// String implements the Stringer interface.
func (ch *Chopper) String() string {
	return fmt.Sprintf("%s: GW=%.1f lb (empty=%.1f fuel=%.1f payload=%.1f)", ch.Name, ch.GW(), ch.EmptyWeight, ch.FuelWeight, ch.PayloadWeight)
}

// BSFC evaluates the normalized fuel curve (engine specific) at the given
// percent power (e.g. 47 for 47%) and returns the brake specific fuel
// consumption in lb/(hp·hr). The input is not clamped: extrapolation
// beyond the fitted range is the caller's responsibility.
func (ch *Chopper) BSFC(pctPower float64) float64 {
	return polyval(ch.FuelCurve[:], pctPower)
}

// Idle returns the ground idle fuel flow in lb/hr at the default idle
// power setting of 20%.
func (ch *Chopper) Idle() float64 {
	return ch.IdleAt(defaultIdlePower)
}

// IdleAt is the same as Idle with a custom power setting in percent.
func (ch *Chopper) IdleAt(pctPower float64) float64 {
	return ch.BSFC(pctPower) * pctPower * ch.RatedPower / 100
}

// Burn removes the given amount of fuel, in lb, from the vehicle. It is
// all or nothing: if more fuel is required than remains, the fuel state
// is left untouched and an InsufficientResourceError is returned.
func (ch *Chopper) Burn(fuel float64) error {
	if fuel > ch.FuelWeight {
		return InsufficientResourceError{Resource: "fuel", Requested: fuel, Available: ch.FuelWeight}
	}
	ch.FuelWeight -= fuel
	return nil
}

// Unload removes the given weight of payload, in lb, from the vehicle,
// with the same all-or-nothing contract as Burn.
func (ch *Chopper) Unload(weight float64) error {
	if weight > ch.PayloadWeight {
		return InsufficientResourceError{Resource: "payload", Requested: weight, Available: ch.PayloadWeight}
	}
	ch.PayloadWeight -= weight
	return nil
}

// InsufficientResourceError is returned when a mutation requests more of
// a consumable (fuel, payload) than the vehicle carries.
type InsufficientResourceError struct {
	Resource             string
	Requested, Available float64
}

func (e InsufficientResourceError) Error() string {
	return fmt.Sprintf("insufficient %s: %.2f lb requested, %.2f lb available", e.Resource, e.Requested, e.Available)
}
