package helipypter

import (
	"fmt"
	"os"
	"time"
)

// ExportConfig configures the exporting of computed results.
type ExportConfig struct {
	Filename  string
	OutputDir string
	Timestamp bool // append a creation timestamp to the file name
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

func (c ExportConfig) create(prefix string) (*os.File, error) {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	var filename string
	if c.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/%s-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", dir, prefix, c.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/%s-%s.csv", dir, prefix, c.Filename)
	}
	return os.Create(filename)
}

// WritePolar writes a forward flight speed sweep as a CSV file with a
// commented header.
func WritePolar(conf ExportConfig, rows []FlightPoint) error {
	f, err := conf.create("polar")
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintf(f, `# Creation date (UTC): %s
# Airspeed in kts, powers in hp, fuel flow in lb/hr, specific range in nm/lb, rate of climb in ft/min
airspeed,q,mu,v_if,cd,hp_ind,hp_pro,hp_par,mr_hp,tr_hp,shp_inst,shp_uninst,l_d,pwr_ratio,bsfc,fuel_flow,sr,roc`, time.Now().UTC())
	for _, r := range rows {
		fmt.Fprintf(f, "\n%.2f,%.4f,%.5f,%.4f,%.6f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.4f,%.3f,%.5f,%.3f,%.5f,%.1f",
			r.Airspeed, r.Q, r.Mu, r.Vif, r.Cd, r.HPInd, r.HPPro, r.HPPar, r.MRHP, r.TRHP, r.SHPInst, r.SHPUnins, r.LD, r.PwrRatio, r.BSFC, r.FuelFlow, r.SR, r.ROC)
	}
	_, err = fmt.Fprintln(f)
	return err
}

// WriteMissionLog writes the legs of a flown mission as a CSV file with a
// commented header.
func WriteMissionLog(conf ExportConfig, legs []MissionLeg) error {
	f, err := conf.create("mission")
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintf(f, `# Creation date (UTC): %s
# Weights in lb, altitude in ft, distance in nm
maneuver,altitude,duration,speed,fuel_used,fuel_left,distance`, time.Now().UTC())
	for _, leg := range legs {
		fmt.Fprintf(f, "\n%s,%.0f,%.1f,%.1f,%.3f,%.3f,%.1f",
			leg.Point.Maneuver, leg.Point.Altitude, leg.Point.Duration, leg.Point.Speed, leg.FuelUsed, leg.FuelLeft, leg.Distance)
	}
	_, err = fmt.Fprintln(f)
	return err
}
