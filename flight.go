package helipypter

import "math"

// FlightPoint defines one row of the forward flight performance polar,
// exposing every intermediate quantity of the drag/power buildup.
type FlightPoint struct {
	Airspeed float64 // kts
	Q        float64 // dynamic pressure, lb/ft²
	Mu       float64 // advance ratio
	Vif      float64 // induced velocity in forward flight, ft/s
	Cts      float64 // thrust coefficient over solidity
	Tc       float64 // blade loading
	TcLower  float64 // empirical lower bound of blade loading
	F        float64 // retreating blade stall parameter
	DelCds   float64 // drag coefficient increment, blade stall
	MDD      float64 // Mach drag divergence of the airfoil
	MY90     float64 // advancing tip Mach
	DelCdC   float64 // drag coefficient increment, compressibility
	Cd       float64 // total drag coefficient
	HPInd    float64 // MR induced power, hp
	HPPro    float64 // MR profile power, hp
	HPPar    float64 // parasite power, hp
	MRHP     float64 // total MR power, hp
	MRQ      float64 // MR torque, lb·ft
	TAt      float64 // anti-torque thrust required, lb
	LVt      float64 // vertical tail lift, lb
	TTR      float64 // net TR thrust after vertical tail lift, lb
	DVt      float64 // vertical tail induced drag, lb
	V0TR     float64 // TR hover induced velocity seed, ft/s
	VifTR    float64 // TR induced velocity in forward flight, ft/s
	HPITr    float64 // TR induced power, hp
	HPProTR  float64 // TR profile power, hp
	TRHP     float64 // total TR power, hp
	DelMRX   float64 // MR transmission loss, hp
	DelTRX   float64 // TR transmission loss, hp
	DelAcc   float64 // accessory cross-over loss, hp
	SHPInst  float64 // installed shaft power required, hp
	DelInst  float64 // installation loss, hp
	SHPUnins float64 // uninstalled shaft power, hp
	LD       float64 // lift to drag ratio
	PwrRatio float64 // percent rated power
	BSFC     float64 // lb/(hp·hr)
	FuelFlow float64 // lb/hr
	SR       float64 // specific range, nm/lb
	ROC      float64 // rate of climb, ft/min
}

// glauert evaluates Glauert's closed form approximation of the rotor
// induced velocity in forward flight, from the hover induced velocity v0
// and the airspeed in knots. The form is analytically continuous at zero
// airspeed, where it reduces to v0.
func glauert(v0, speedKts float64) float64 {
	if v0 == 0 {
		return 0
	}
	if speedKts == 0 {
		return v0
	}
	r := ktsToFps * speedKts / v0
	return v0 * math.Sqrt(-0.5*math.Pow(r, 2)+math.Sqrt(math.Pow(r, 4)/4+1))
}

// FlightAt evaluates forward flight performance at a single airspeed in
// knots. The row is identical to the corresponding row of a ForwardFlight
// sweep containing the same airspeed.
func (ch *Chopper) FlightAt(atm Atmosphere, speedKts float64) FlightPoint {
	return ch.ForwardFlight(atm, []float64{speedKts})[0]
}

// ForwardFlight evaluates performance over a sweep of airspeeds, in
// knots, and returns one polar row per airspeed. Drag, MR power, TR
// power, engine power, fuel consumption, range and climb metrics are all
// evaluated; rows are independent of each other.
func (ch *Chopper) ForwardFlight(atm Atmosphere, speedsKts []float64) []FlightPoint {
	// Speed independent quantities.
	thrust := ch.GW() * (1 + ch.Download)
	ct := thrust / (atm.Rho * ch.MR.Area() * math.Pow(ch.MR.TipSpeed(), 2))
	b := 1 - math.Sqrt(2*ct)/float64(ch.MR.Blades)
	v0 := math.Sqrt(thrust / (2 * atm.Rho * math.Pi * math.Pow(ch.MR.Radius(), 2) * b * b))
	cSound := math.Sqrt(gammaRAir * atm.T)

	rows := make([]FlightPoint, len(speedsKts))
	for i, v := range speedsKts {
		rows[i] = ch.flightPoint(atm, v, thrust, v0, cSound)
	}
	return rows
}

func (ch *Chopper) flightPoint(atm Atmosphere, v, thrust, v0, cSound float64) FlightPoint {
	var pt FlightPoint
	pt.Airspeed = v

	// Main rotor.
	pt.Q = 0.5 * atm.Rho * math.Pow(v*ktsToFps, 2)
	pt.Mu = v * 1.689 / ch.MR.TipSpeed()
	pt.Vif = glauert(v0, v)
	pt.Cts = thrust / (atm.Rho * ch.MR.Area() * math.Pow(ch.MR.TipSpeed(), 2)) / ch.MR.Solidity()
	pt.Tc = 2 * pt.Cts
	pt.TcLower = -0.6885*pt.Cts + 0.3555
	// Retreating blade stall drag rise, from a NASA CR fit. Never
	// negative, so clip at zero.
	pt.F = (pt.Cts/math.Pow(1-pt.Mu, 2))*(1+ch.FlatPlateArea*pt.Q/ch.GW()) - 0.1376
	pt.DelCds = 18.3 * math.Pow(1-pt.Mu, 2) * math.Pow(pt.F, 3)
	if pt.DelCds < 0 {
		pt.DelCds = 0
	}
	// Compressibility drag rise from the Mach drag divergence fit.
	pt.MDD = 0.82 - 2.4*pt.Cts
	pt.MY90 = (v*ktsToFps + ch.MR.TipSpeed()) / cSound
	pt.DelCdC = 0.2*math.Pow(pt.MY90-pt.MDD, 3) + 0.0085*(pt.MY90-pt.MDD)
	pt.Cd = 0.00952 + pt.DelCds + pt.DelCdC

	pt.HPInd = thrust * pt.Vif / 550
	pt.HPPro = ch.MR.Solidity() * pt.Cd * (1 + 4.65*math.Pow(pt.Mu, 2)) * atm.Rho * math.Pi * math.Pow(ch.MR.Radius(), 2) * math.Pow(ch.MR.TipSpeed(), 3) / 4400
	pt.HPPar = ch.FlatPlateArea * atm.Rho * math.Pow(v*ktsToFps, 3) / 1100
	pt.MRHP = pt.HPInd + pt.HPPro + pt.HPPar
	pt.MRQ = 5252 * pt.MRHP / (ch.MR.Omega * 60 / (2 * math.Pi))

	// Tail rotor: anti-torque requirement net of the vertical tail lift.
	pt.TAt = pt.MRQ / ch.TailLength
	pt.LVt = ch.VTailCl * ch.VTailArea * pt.Q
	pt.TTR = pt.TAt - pt.LVt
	if pt.Q != 0 {
		pt.DVt = math.Pow(pt.LVt, 2) / (2 * pt.Q * ch.VTailArea * ch.VTailAR)
	}
	pt.V0TR = math.Sqrt(math.Abs(pt.TTR) / (2 * atm.Rho * math.Pi * math.Pow(ch.TR.Radius(), 2)))
	pt.VifTR = glauert(pt.V0TR, v)
	pt.HPITr = pt.TTR * pt.VifTR / 550
	pt.HPProTR = ch.TR.Solidity() * ch.TR.Cd0 * (1 + 4.65*math.Pow(pt.Mu, 2)) * atm.Rho * math.Pi * math.Pow(ch.TR.Radius(), 2) * math.Pow(ch.TR.TipSpeed(), 3) / 4400
	pt.TRHP = pt.HPITr + pt.HPProTR

	// Engine.
	pt.DelMRX = pt.MRHP * (1 - ch.MRXsmnEff*ch.CrossoverEff)
	pt.DelTRX = pt.TRHP * (1 - ch.TRXsmnEff)
	pt.DelAcc = ch.AccessoryPower * (1 - ch.CrossoverEff)
	pt.SHPInst = pt.MRHP + pt.TRHP + pt.DelMRX + pt.DelTRX + ch.AccessoryPower + pt.DelAcc
	pt.DelInst = pt.SHPInst * (1 - ch.InstallEff)
	pt.SHPUnins = pt.SHPInst + pt.DelInst
	pt.LD = ch.GW() * v * 1.689 / (550 * pt.SHPUnins)
	pt.PwrRatio = 100 * pt.SHPUnins / ch.RatedPower
	pt.BSFC = ch.BSFC(pt.PwrRatio)
	pt.FuelFlow = pt.BSFC * pt.SHPUnins
	if pt.FuelFlow != 0 {
		pt.SR = v / pt.FuelFlow
	}
	pt.ROC = 550 * 60 * (ch.RatedPower - pt.SHPUnins) / ch.GW()

	return pt
}
