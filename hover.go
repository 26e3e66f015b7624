package helipypter

import (
	"errors"
	"fmt"
	"math"
)

// ErrSonicTip is returned when the advancing blade tip is exactly sonic:
// the compressibility correction divides by √|M²−1|, which is undefined
// there. Whether this should instead saturate to a large sentinel is
// pending product review.
var ErrSonicTip = errors.New("advancing tip Mach is exactly sonic, compressibility correction is undefined")

// Literature-derived hover model constants.
const (
	defaultDelta1 = -0.0216 // 2nd term of the 3-part drag equation
	defaultDelta2 = 0.4     // 3rd term of the 3-part drag equation
	defaultKi     = 1.1     // induced power efficiency factor
)

// HoverSpec groups the optional inputs of the hover power model. Thrust
// of zero means gross weight plus download. Delta1 and Delta2 are the
// second and third terms of the 3-part drag equation, Ki the efficiency
// factor covering non-uniform inflow and non-ideal twist, Vroc the
// vertical rate of climb in ft/min.
type HoverSpec struct {
	Thrust float64 // lb
	Delta1 float64
	Delta2 float64
	Ki     float64
	Vroc   float64 // ft/min
}

// DefaultHoverSpec returns the HoverSpec with the literature defaults and
// thrust derived from gross weight.
func DefaultHoverSpec() HoverSpec {
	return HoverSpec{Thrust: 0, Delta1: defaultDelta1, Delta2: defaultDelta2, Ki: defaultKi, Vroc: 0}
}

// HoverPerf defines the full result bundle of a hover power calculation.
type HoverPerf struct {
	A        float64 // 3D lift curve slope, 1/rad
	Delta0   float64 // corrected, compressible drag coefficient
	Ct       float64 // thrust coefficient
	TRThrust float64 // required tail rotor thrust, lb
	CqI      float64 // torque coefficient, induced contribution
	CqV      float64 // torque coefficient, climb rate contribution
	Cq0      float64 // torque coefficient, 1st drag term
	Cq1      float64 // torque coefficient, 2nd drag term
	Cq2      float64 // torque coefficient, 3rd drag term
	Cq       float64 // total torque coefficient
	Q        float64 // main rotor torque, lb·ft
	PMR      float64 // main rotor power, ft·lb/s
	HPMR     float64 // main rotor power, hp
	HPTR     float64 // tail rotor power, hp
	SHPIns   float64 // installed shaft power, hp
	SHPUnins float64 // uninstalled (rated spec) shaft power, hp
	SFC      float64 // bsfc at the resulting power setting, lb/(hp·hr)
}

// HOGE computes hover out of ground effect performance with the default
// hover spec.
func (ch *Chopper) HOGE(atm Atmosphere) (HoverPerf, error) {
	return ch.HOGEWith(atm, DefaultHoverSpec())
}

// HOGEWith computes hover out of ground effect performance.
//
// If the uninstalled power exceeds the engine rated limit, or failing
// that the gearbox capability, an advisory warning is emitted through the
// vehicle logger; the results are returned regardless.
func (ch *Chopper) HOGEWith(atm Atmosphere, spec HoverSpec) (HoverPerf, error) {
	thrust := spec.Thrust
	if thrust == 0 {
		thrust = ch.GW() * (1 + ch.Download)
	}
	vroc := spec.Vroc / 60 // ft/min to ft/s

	ct := thrust / (atm.Rho * ch.MR.Area() * math.Pow(ch.MR.TipSpeed(), 2))

	// Tip-loss correction B = 1 - sqrt(2 Ct)/b.
	b := 1 - math.Sqrt(2*ct)/float64(ch.MR.Blades)

	// Airfoil lift factor correction from 2D to 3D.
	ar := 12 * ch.MR.Radius() / ch.MR.Chord
	a0 := 2 * math.Pi
	a := a0 / (1 + a0/(math.Pi*ar))

	// Compressibility correction factor at 80% tip speed.
	cSound := math.Sqrt(gammaRAir * atm.T)
	mach08 := ch.MR.TipSpeed() * 0.8 / cSound
	denom := math.Sqrt(math.Abs(mach08*mach08 - 1))
	if denom == 0 {
		return HoverPerf{}, fmt.Errorf("%w (M=%.4f)", ErrSonicTip, mach08)
	}
	delta0 := ch.MR.Cd0 / denom

	// MR torque coefficient terms.
	cqI := 0.5 * ct * math.Sqrt(math.Pow(vroc/(ch.MR.Omega*ch.MR.Radius()), 2)+2*ct/(b*b))
	cqV := vroc * ct / (2 * ch.MR.Omega * ch.MR.Radius())
	cq0 := ch.MR.Solidity() * delta0 / 8
	cq1 := (2 * spec.Delta1 / (3 * a)) * (ct / (b * b))
	cq2 := (4 * spec.Delta2 / (ch.MR.Solidity() * a * a)) * math.Pow(ct/(b*b), 2)
	cq := cqI + cqV + cq0 + cq1 + cq2

	// Power estimate uses the lifting blade area, i.e. the tip-loss
	// corrected radius, rather than the full disk.
	aEff := math.Pi * math.Pow(b*ch.MR.Radius(), 2)
	pMR := cq * atm.Rho * aEff * math.Pow(ch.MR.TipSpeed(), 3) // ft·lb/s
	hpMR := pMR * spec.Ki / 550
	q := hpMR * 550 * ch.MR.Radius() / ch.MR.TipSpeed() // lb·ft

	// TR thrust balances the MR torque over the tail moment arm.
	tTR := q / ch.TailLength
	ctTR := tTR / (atm.Rho * ch.TR.Area() * math.Pow(ch.TR.TipSpeed(), 2))
	bTR := 1 - math.Sqrt(2*ctTR)/float64(ch.TR.Blades)
	viTR := math.Sqrt(tTR / (2 * atm.Rho * math.Pi * math.Pow(ch.TR.Radius(), 2) * bTR * bTR)) // ft/s
	hpiTR := spec.Ki * tTR * viTR / 550
	hpProTR := ch.TR.Solidity() * ch.TR.Cd0 * atm.Rho * math.Pi * math.Pow(ch.TR.Radius(), 2) * math.Pow(ch.TR.TipSpeed(), 3) / 4400
	hpTR := hpiTR + hpProTR

	// Combine the required power with transmission, cross-over and
	// accessory losses.
	shpIns := hpMR + hpTR + ch.AccessoryPower +
		hpMR*(1-ch.MRXsmnEff*ch.CrossoverEff) +
		hpTR*(1-ch.TRXsmnEff*ch.CrossoverEff) +
		ch.AccessoryPower*ch.CrossoverEff
	shpUnins := shpIns / ch.InstallEff

	sfc := ch.BSFC(100 * shpUnins / ch.RatedPower)

	if shpUnins > ch.RatedPower {
		ch.logger.Log("level", "warning", "subsys", "hover", "message", "power required to hover is greater than engine rated limit", "shp(hp)", shpUnins, "limit(hp)", ch.RatedPower)
	} else if shpUnins > ch.GearboxLimit {
		ch.logger.Log("level", "warning", "subsys", "hover", "message", "power required to hover is greater than gearbox capability", "shp(hp)", shpUnins, "limit(hp)", ch.GearboxLimit)
	}

	return HoverPerf{
		A:        a,
		Delta0:   delta0,
		Ct:       ct,
		TRThrust: tTR,
		CqI:      cqI,
		CqV:      cqV,
		Cq0:      cq0,
		Cq1:      cq1,
		Cq2:      cq2,
		Cq:       cq,
		Q:        q,
		PMR:      pMR,
		HPMR:     hpMR,
		HPTR:     hpTR,
		SHPIns:   shpIns,
		SHPUnins: shpUnins,
		SFC:      sfc,
	}, nil
}

// HIGE computes hover in ground effect performance with the default
// hover spec.
func (ch *Chopper) HIGE(atm Atmosphere) (HoverPerf, error) {
	return ch.HIGEWith(atm, DefaultHoverSpec())
}

// HIGEWith computes hover in ground effect performance. This is simply
// HOGE with the thrust (defaulted or supplied) divided by the ground
// effect factor.
func (ch *Chopper) HIGEWith(atm Atmosphere, spec HoverSpec) (HoverPerf, error) {
	if spec.Thrust == 0 {
		spec.Thrust = ch.GW() * (1 + ch.Download) / ch.HIGEFactor
	} else {
		spec.Thrust = spec.Thrust / ch.HIGEFactor
	}
	return ch.HOGEWith(atm, spec)
}
