package helipypter

import (
	"fmt"

	"github.com/spf13/viper"
)

// pointConfig mirrors one [[mission.points]] entry of the config file.
type pointConfig struct {
	Maneuver string
	Altitude float64
	Duration float64
	Speed    float64
}

// LoadConfig reads `heli.toml` from the provided directory and returns
// the vehicle it describes along with its mission points, if any. Every
// vehicle setting has a default, so partially specified files are always
// valid; the mission list may be empty.
func LoadConfig(confPath string) (*Chopper, []MissionPoint, error) {
	v := viper.New()
	v.SetConfigName("heli")
	v.SetConfigType("toml")
	v.AddConfigPath(confPath)

	ch := NewChopper("unnamed")
	setChopperDefaults(v, ch)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("reading %s/heli.toml: %w", confPath, err)
	}

	ch.Name = v.GetString("chopper.name")
	ch.MR = Rotor{
		Diameter: v.GetFloat64("chopper.mr.diameter"),
		Blades:   v.GetInt("chopper.mr.blades"),
		Chord:    v.GetFloat64("chopper.mr.chord"),
		Omega:    v.GetFloat64("chopper.mr.omega"),
		Cd0:      v.GetFloat64("chopper.mr.cd0"),
	}
	ch.TR = Rotor{
		Diameter: v.GetFloat64("chopper.tr.diameter"),
		Blades:   v.GetInt("chopper.tr.blades"),
		Chord:    v.GetFloat64("chopper.tr.chord"),
		Omega:    v.GetFloat64("chopper.tr.omega"),
		Cd0:      v.GetFloat64("chopper.tr.cd0"),
	}
	ch.EmptyWeight = v.GetFloat64("chopper.airframe.empty_weight")
	ch.FuelWeight = v.GetFloat64("chopper.airframe.fuel_weight")
	ch.PayloadWeight = v.GetFloat64("chopper.airframe.payload_weight")
	ch.Download = v.GetFloat64("chopper.airframe.download")
	ch.HIGEFactor = v.GetFloat64("chopper.airframe.hige_factor")
	ch.FlatPlateArea = v.GetFloat64("chopper.airframe.flat_plate_area")
	ch.TailLength = v.GetFloat64("chopper.airframe.tail_length")
	ch.VTailArea = v.GetFloat64("chopper.airframe.vtail_area")
	ch.VTailCl = v.GetFloat64("chopper.airframe.vtail_cl")
	ch.VTailAR = v.GetFloat64("chopper.airframe.vtail_ar")
	ch.MRXsmnEff = v.GetFloat64("chopper.engine.mr_xsmn_eff")
	ch.TRXsmnEff = v.GetFloat64("chopper.engine.tr_xsmn_eff")
	ch.CrossoverEff = v.GetFloat64("chopper.engine.crossover_eff")
	ch.AccessoryPower = v.GetFloat64("chopper.engine.accessory_power")
	ch.InstallEff = v.GetFloat64("chopper.engine.install_eff")
	ch.GearboxLimit = v.GetFloat64("chopper.engine.gearbox_limit")
	ch.RatedPower = v.GetFloat64("chopper.engine.rated_power")
	if v.IsSet("chopper.engine.fuel_curve") {
		coeffs, ok := v.Get("chopper.engine.fuel_curve").([]interface{})
		if !ok || len(coeffs) != len(ch.FuelCurve) {
			return nil, nil, fmt.Errorf("fuel_curve needs %d coefficients", len(ch.FuelCurve))
		}
		for i, c := range coeffs {
			switch f := c.(type) {
			case float64:
				ch.FuelCurve[i] = f
			case int64:
				ch.FuelCurve[i] = float64(f)
			default:
				return nil, nil, fmt.Errorf("fuel_curve coefficient %d is not a number", i)
			}
		}
	}

	var raw []pointConfig
	if err := v.UnmarshalKey("mission.points", &raw); err != nil {
		return nil, nil, fmt.Errorf("reading mission points: %w", err)
	}
	points := make([]MissionPoint, len(raw))
	for i, p := range raw {
		kind, err := ParseManeuver(p.Maneuver)
		if err != nil {
			return nil, nil, fmt.Errorf("mission point %d: %w", i, err)
		}
		points[i] = MissionPoint{Maneuver: kind, Altitude: p.Altitude, Duration: p.Duration, Speed: p.Speed}
	}

	return ch, points, nil
}

func setChopperDefaults(v *viper.Viper, ch *Chopper) {
	v.SetDefault("chopper.name", ch.Name)
	v.SetDefault("chopper.mr.diameter", ch.MR.Diameter)
	v.SetDefault("chopper.mr.blades", ch.MR.Blades)
	v.SetDefault("chopper.mr.chord", ch.MR.Chord)
	v.SetDefault("chopper.mr.omega", ch.MR.Omega)
	v.SetDefault("chopper.mr.cd0", ch.MR.Cd0)
	v.SetDefault("chopper.tr.diameter", ch.TR.Diameter)
	v.SetDefault("chopper.tr.blades", ch.TR.Blades)
	v.SetDefault("chopper.tr.chord", ch.TR.Chord)
	v.SetDefault("chopper.tr.omega", ch.TR.Omega)
	v.SetDefault("chopper.tr.cd0", ch.TR.Cd0)
	v.SetDefault("chopper.airframe.empty_weight", ch.EmptyWeight)
	v.SetDefault("chopper.airframe.fuel_weight", ch.FuelWeight)
	v.SetDefault("chopper.airframe.payload_weight", ch.PayloadWeight)
	v.SetDefault("chopper.airframe.download", ch.Download)
	v.SetDefault("chopper.airframe.hige_factor", ch.HIGEFactor)
	v.SetDefault("chopper.airframe.flat_plate_area", ch.FlatPlateArea)
	v.SetDefault("chopper.airframe.tail_length", ch.TailLength)
	v.SetDefault("chopper.airframe.vtail_area", ch.VTailArea)
	v.SetDefault("chopper.airframe.vtail_cl", ch.VTailCl)
	v.SetDefault("chopper.airframe.vtail_ar", ch.VTailAR)
	v.SetDefault("chopper.engine.mr_xsmn_eff", ch.MRXsmnEff)
	v.SetDefault("chopper.engine.tr_xsmn_eff", ch.TRXsmnEff)
	v.SetDefault("chopper.engine.crossover_eff", ch.CrossoverEff)
	v.SetDefault("chopper.engine.accessory_power", ch.AccessoryPower)
	v.SetDefault("chopper.engine.install_eff", ch.InstallEff)
	v.SetDefault("chopper.engine.gearbox_limit", ch.GearboxLimit)
	v.SetDefault("chopper.engine.rated_power", ch.RatedPower)
}
