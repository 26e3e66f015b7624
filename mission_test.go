package helipypter

import (
	"errors"
	"strings"
	"testing"
)

// roundTrip is a 160 nm out and back delivery profile with a payload
// drop at the far end.
func roundTrip() []MissionPoint {
	return []MissionPoint{
		{Maneuver: Idle, Duration: 1},
		{Maneuver: IRP, Duration: 1},
		{Maneuver: MCP, Duration: 5, Speed: 1000},
		{Maneuver: Flight, Altitude: 5000, Duration: 160, Speed: 110},
		{Maneuver: Loiter, Altitude: 5000, Duration: 10, Speed: 60},
		{Maneuver: Hover, Duration: 1},
		{Maneuver: Unload, Duration: 5, Speed: 1278},
		{Maneuver: Hover, Duration: 1},
		{Maneuver: MCP, Duration: 5, Speed: 1000},
		{Maneuver: Flight, Altitude: 5000, Duration: 160, Speed: 110},
		{Maneuver: Hover, Duration: 1},
		{Maneuver: Idle, Duration: 1},
	}
}

func TestMissionRoundTrip(t *testing.T) {
	ch := projectChopper()
	mission := NewMission(ch, roundTrip())
	legs, err := mission.Fly()
	if err != nil {
		t.Fatalf("mission failed: %s", err)
	}
	if len(legs) != len(mission.Points) {
		t.Fatalf("flew %d of %d points", len(legs), len(mission.Points))
	}
	expFuel := []float64{
		2.268503277,
		6.4227,
		31.00083433,
		374.0890843,
		32.13510862,
		4.599789043,
		11.34251638,
		3.706511026,
		31.00083433,
		333.8523868,
		3.479333506,
		2.268503277,
	}
	for i, leg := range legs {
		if !equalsRel(leg.FuelUsed, expFuel[i]) {
			t.Fatalf("point %d (%s) burned %.7f lb, expected %.7f lb", i, leg.Point.Maneuver, leg.FuelUsed, expFuel[i])
		}
	}
	if !equalsRel(ch.FuelWeight, 32.83389513) {
		t.Fatalf("final fuel is %.7f lb, expected 32.83389513 lb", ch.FuelWeight)
	}
	if last := legs[len(legs)-1].FuelLeft; last != ch.FuelWeight {
		t.Fatalf("last leg reports %.7f lb left, vehicle has %.7f lb", last, ch.FuelWeight)
	}
	if mission.Range != 340 {
		t.Fatalf("mission range is %.1f nm, expected 340 nm", mission.Range)
	}
	if ch.PayloadWeight != 0 {
		t.Fatalf("payload is %.1f lb after the drop, expected 0", ch.PayloadWeight)
	}
	t.Logf("[OK] mission complete with %.2f lb reserve", ch.FuelWeight)
}

func TestMissionFuelStarvation(t *testing.T) {
	ch := projectChopper()
	ch.FuelWeight = 100
	mission := NewMission(ch, roundTrip())
	legs, err := mission.Fly()
	if err == nil {
		t.Fatal("a 100 lb tank completed a 340 nm mission")
	}
	var insufficient InsufficientResourceError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected an insufficient resource error, got %s", err)
	}
	if insufficient.Resource != "fuel" {
		t.Fatalf("starved resource is %q, expected fuel", insufficient.Resource)
	}
	if len(legs) != 3 {
		t.Fatalf("completed %d legs before starving, expected 3", len(legs))
	}
	// The failing point's debit must not be applied.
	if !equalsRel(ch.FuelWeight, 60.30796239500046) {
		t.Fatalf("fuel after halt is %.10f lb, expected 60.3079623950 lb", ch.FuelWeight)
	}
	if !strings.Contains(err.Error(), "point 3") {
		t.Fatalf("error does not name the failing point: %s", err)
	}
}

func TestMissionUnloadTooHeavy(t *testing.T) {
	ch := projectChopper()
	mission := NewMission(ch, []MissionPoint{
		{Maneuver: Unload, Duration: 5, Speed: 2000},
	})
	legs, err := mission.Fly()
	if err == nil {
		t.Fatal("unloading more than the carried payload succeeded")
	}
	var insufficient InsufficientResourceError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected an insufficient resource error, got %s", err)
	}
	if insufficient.Resource != "payload" {
		t.Fatalf("starved resource is %q, expected payload", insufficient.Resource)
	}
	if len(legs) != 0 {
		t.Fatalf("recorded %d legs from a failed first point", len(legs))
	}
	// Neither the payload nor the idle burn may be applied.
	if ch.PayloadWeight != 1278 {
		t.Fatalf("payload is %.1f lb after the failed drop, expected 1278", ch.PayloadWeight)
	}
	if ch.FuelWeight != 869 {
		t.Fatalf("fuel is %.1f lb after the failed drop, expected 869", ch.FuelWeight)
	}
}

func TestMissionClimbBurnsMoreThanHover(t *testing.T) {
	hoverLeg := func(points []MissionPoint) MissionLeg {
		ch := projectChopper()
		legs, err := NewMission(ch, points).Fly()
		if err != nil {
			t.Fatalf("mission failed: %s", err)
		}
		return legs[0]
	}
	hover := hoverLeg([]MissionPoint{{Maneuver: Hover, Duration: 1}})
	climb := hoverLeg([]MissionPoint{{Maneuver: Climb, Duration: 1, Speed: 500}})
	if climb.FuelUsed <= hover.FuelUsed {
		t.Fatalf("a 500 ft/min climb burned %.4f lb, not more than the %.4f lb hover", climb.FuelUsed, hover.FuelUsed)
	}
}

func TestMissionUnknownManeuver(t *testing.T) {
	ch := projectChopper()
	mission := NewMission(ch, []MissionPoint{{Maneuver: Maneuver(42), Duration: 1}})
	if _, err := mission.Fly(); err == nil {
		t.Fatal("an unknown maneuver kind did not error")
	}
}

func TestManeuverString(t *testing.T) {
	for m, exp := range map[Maneuver]string{
		Idle: "idle", Hover: "hover", Loiter: "loiter", IRP: "IRP",
		MCP: "MCP", Flight: "flight", Climb: "climb", Unload: "unload",
	} {
		if m.String() != exp {
			t.Fatalf("maneuver %d stringifies as %q, expected %q", m, m, exp)
		}
		parsed, err := ParseManeuver(exp)
		if err != nil {
			t.Fatalf("could not parse %q back: %s", exp, err)
		}
		if parsed != m {
			t.Fatalf("%q parsed as %s", exp, parsed)
		}
	}
	if _, err := ParseManeuver("teleport"); err == nil {
		t.Fatal("parsing an unknown maneuver name did not error")
	}
	assertPanic(t, func() {
		_ = Maneuver(0).String()
	})
}
