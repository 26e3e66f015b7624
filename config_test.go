package helipypter

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "heli.toml"), []byte(body), 0644); err != nil {
		t.Fatalf("could not write config: %s", err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
[chopper]
name = "TestBird"

[chopper.mr]
diameter = 35.0
blades = 4

[chopper.airframe]
empty_weight = 2853.0
fuel_weight = 869.0
payload_weight = 1278.0

[chopper.engine]
fuel_curve = [1.0, 0.0, 0.0, 0.0, 0.0, 0.0]

[[mission.points]]
maneuver = "idle"
duration = 1.0

[[mission.points]]
maneuver = "flight"
altitude = 5000.0
duration = 160.0
speed = 110.0
`)
	ch, points, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("could not load config: %s", err)
	}
	if ch.Name != "TestBird" {
		t.Fatalf("name is %q", ch.Name)
	}
	if ch.MR.Diameter != 35 || ch.MR.Blades != 4 {
		t.Fatalf("MR geometry not read: %+v", ch.MR)
	}
	// Unset keys keep the defaults.
	if ch.MR.Chord != 10.4 || ch.TR.Diameter != 2 {
		t.Fatal("unset keys did not keep the defaults")
	}
	if ch.GW() != 5000 {
		t.Fatalf("gross weight is %.1f lb, expected 5000", ch.GW())
	}
	if ch.BSFC(100) != 1 {
		t.Fatalf("custom fuel curve not read, bsfc(100)=%f", ch.BSFC(100))
	}
	if len(points) != 2 {
		t.Fatalf("read %d mission points, expected 2", len(points))
	}
	if points[0].Maneuver != Idle || points[0].Duration != 1 {
		t.Fatalf("point 0 misread: %+v", points[0])
	}
	if points[1].Maneuver != Flight || points[1].Altitude != 5000 || points[1].Duration != 160 || points[1].Speed != 110 {
		t.Fatalf("point 1 misread: %+v", points[1])
	}
}

func TestLoadConfigBadManeuver(t *testing.T) {
	dir := writeConfig(t, `
[[mission.points]]
maneuver = "teleport"
duration = 1.0
`)
	if _, _, err := LoadConfig(dir); err == nil {
		t.Fatal("an unknown maneuver name did not error")
	}
}

func TestLoadConfigBadFuelCurve(t *testing.T) {
	dir := writeConfig(t, `
[chopper.engine]
fuel_curve = [1.0, 2.0]
`)
	if _, _, err := LoadConfig(dir); err == nil {
		t.Fatal("a short fuel curve did not error")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("a missing config file did not error")
	}
}
