package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Czarified/helipypter"
	"github.com/gonum/floats"
)

var (
	confPath = flag.String("config", "", "directory containing heli.toml (empty runs the built-in demo vehicle)")
	outDir   = flag.String("out", ".", "output directory for CSV exports")
)

// demoChopper is the project helicopter spec from the design study.
func demoChopper() *helipypter.Chopper {
	ch := helipypter.NewChopper("Project Helicopter Spec")
	ch.MR = helipypter.Rotor{Diameter: 35, Blades: 4, Chord: 10.4, Omega: 43.2, Cd0: 0.0080}
	ch.TR = helipypter.Rotor{Diameter: 5.42, Blades: 4, Chord: 7, Omega: 239.85, Cd0: 0.015}
	ch.EmptyWeight = 2853
	ch.FuelWeight = 869
	ch.PayloadWeight = 1278
	ch.FlatPlateArea = 12.9
	ch.TailLength = 21.21
	ch.VTailArea = 20.92
	ch.VTailCl = 0.22
	return ch
}

// demoMission is a round trip: cruise out 160 nm at altitude, loiter,
// drop the payload, and cruise home.
func demoMission() []helipypter.MissionPoint {
	return []helipypter.MissionPoint{
		{Maneuver: helipypter.Idle, Duration: 1},
		{Maneuver: helipypter.IRP, Duration: 1},
		{Maneuver: helipypter.MCP, Duration: 5, Speed: 1000},
		{Maneuver: helipypter.Flight, Altitude: 5000, Duration: 160, Speed: 110},
		{Maneuver: helipypter.Loiter, Altitude: 5000, Duration: 10, Speed: 60},
		{Maneuver: helipypter.Hover, Duration: 1},
		{Maneuver: helipypter.Unload, Duration: 5, Speed: 1278},
		{Maneuver: helipypter.Hover, Duration: 1},
		{Maneuver: helipypter.MCP, Duration: 5, Speed: 1000},
		{Maneuver: helipypter.Flight, Altitude: 5000, Duration: 160, Speed: 110},
		{Maneuver: helipypter.Hover, Duration: 1},
		{Maneuver: helipypter.Idle, Duration: 1},
	}
}

func printHoverReport(title string, perf helipypter.HoverPerf) {
	fmt.Printf("-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-\n")
	fmt.Printf("%25s\n", title)
	fmt.Printf("-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-.-\n")
	fmt.Printf("%17s: %10.4f\n", "a", perf.A)
	fmt.Printf("%17s: %10.6f\n", "delta_0", perf.Delta0)
	fmt.Printf("%17s: %10.6f\n", "Ct", perf.Ct)
	fmt.Printf("%17s: %10.2f\n", "TR thrust", perf.TRThrust)
	fmt.Printf("%17s: %10.2f\n", "Q", perf.Q)
	fmt.Printf("%17s: %10.2f\n", "HP MR", perf.HPMR)
	fmt.Printf("%17s: %10.2f\n", "HP TR", perf.HPTR)
	fmt.Printf("%17s: %10.2f\n", "SHP installed", perf.SHPIns)
	fmt.Printf("%17s: %10.2f\n", "SHP uninstalled", perf.SHPUnins)
	fmt.Printf("%17s: %10.4f\n", "sfc", perf.SFC)
}

func main() {
	flag.Parse()

	var ch *helipypter.Chopper
	var points []helipypter.MissionPoint
	if *confPath != "" {
		var err error
		ch, points, err = helipypter.LoadConfig(*confPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	} else {
		ch = demoChopper()
		points = demoMission()
	}

	atm := helipypter.NewAtmosphere(0)
	hoge, err := ch.HOGE(atm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "HOGE: %s\n", err)
		os.Exit(1)
	}
	printHoverReport("Results - HOGE", hoge)
	hige, err := ch.HIGE(atm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "HIGE: %s\n", err)
		os.Exit(1)
	}
	printHoverReport("Results - HIGE", hige)

	// Speed sweep and exports.
	speeds := make([]float64, 27)
	floats.Span(speeds, 20, 150)
	polar := ch.ForwardFlight(atm, speeds)
	conf := helipypter.ExportConfig{Filename: "sweep", OutputDir: *outDir}
	if err := helipypter.WritePolar(conf, polar); err != nil {
		fmt.Fprintf(os.Stderr, "export: %s\n", err)
		os.Exit(1)
	}

	mission := helipypter.NewMission(ch, points)
	legs, err := mission.Fly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mission: %s\n", err)
		os.Exit(1)
	}
	if err := helipypter.WriteMissionLog(conf, legs); err != nil {
		fmt.Fprintf(os.Stderr, "export: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Mission complete: %.1f nm flown, %.2f lb fuel remaining.\n", mission.Range, ch.FuelWeight)
}
