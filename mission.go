package helipypter

import (
	"fmt"
	"strings"
)

// Maneuver defines an enum of the mission maneuver kinds.
type Maneuver uint8

const (
	// Idle is ground idle at the default idle power setting.
	Idle Maneuver = iota + 1
	// Hover is an out of ground effect hover at the point altitude.
	Hover
	// Loiter is level flight at the point speed, credited no distance.
	Loiter
	// IRP runs the engine at the rated limit.
	IRP
	// MCP is a climb at maximum continuous power, 95% of the rated limit.
	MCP
	// Flight is forward flight; the point duration is a distance in nm.
	Flight
	// Climb is a hover climb or descent not at MCP; the point speed is
	// the vertical rate in ft/min.
	Climb
	// Unload drops the point speed, read as a weight in lb, of payload,
	// then idles for the point duration.
	Unload
)

func (m Maneuver) String() string {
	switch m {
	case Idle:
		return "idle"
	case Hover:
		return "hover"
	case Loiter:
		return "loiter"
	case IRP:
		return "IRP"
	case MCP:
		return "MCP"
	case Flight:
		return "flight"
	case Climb:
		return "climb"
	case Unload:
		return "unload"
	}
	panic("cannot stringify unknown maneuver")
}

// ParseManeuver returns the maneuver kind named by the given string, as
// found in mission configuration files.
func ParseManeuver(name string) (Maneuver, error) {
	switch strings.ToLower(name) {
	case "idle":
		return Idle, nil
	case "hover":
		return Hover, nil
	case "loiter":
		return Loiter, nil
	case "irp":
		return IRP, nil
	case "mcp":
		return MCP, nil
	case "flight":
		return Flight, nil
	case "climb":
		return Climb, nil
	case "unload":
		return Unload, nil
	}
	return 0, fmt.Errorf("unknown maneuver %q", name)
}

// mcpCruiseSpeed is the fixed speed, in kts, credited to MCP climb
// segments. This is a documented approximation of the climb-out ground
// speed, not a climb performance calculation.
const mcpCruiseSpeed = 120.0

// MissionPoint defines one maneuver of a mission: what to do, at which
// altitude (ft), for how long, and how fast. Duration is in minutes,
// except for Flight where it is a distance in nm. Speed is in kts, except
// for Climb (ft/min) and Unload (lb of payload).
type MissionPoint struct {
	Maneuver Maneuver
	Altitude float64
	Duration float64
	Speed    float64
}

// MissionLeg records the outcome of one flown mission point.
type MissionLeg struct {
	Point    MissionPoint
	FuelUsed float64 // lb
	FuelLeft float64 // lb, after the point
	Distance float64 // nm credited to this point
}

// Mission defines an ordered sequence of maneuvers flown by a vehicle.
// Flying the mission mutates the vehicle fuel and payload state.
type Mission struct {
	Vehicle *Chopper
	Points  []MissionPoint
	Range   float64 // nm accumulated by Fly
}

// NewMission returns a new mission for the provided vehicle.
func NewMission(ch *Chopper, points []MissionPoint) *Mission {
	return &Mission{Vehicle: ch, Points: points}
}

// Fly runs the mission points strictly in order, burning fuel and
// unloading payload as each maneuver dictates, and returns one leg record
// per completed point. On any error the mission halts at the failing
// point with that point's debit unapplied, returning the legs completed
// so far along with the error.
func (m *Mission) Fly() ([]MissionLeg, error) {
	ch := m.Vehicle
	legs := make([]MissionLeg, 0, len(m.Points))
	for i, pt := range m.Points {
		var fuel, dist float64
		switch pt.Maneuver {
		case Idle:
			fuel = ch.Idle() / 60 * pt.Duration
		case Hover:
			perf, err := ch.HOGE(NewAtmosphere(pt.Altitude))
			if err != nil {
				return legs, fmt.Errorf("point %d (%s): %w", i, pt.Maneuver, err)
			}
			fuel = perf.SFC * perf.SHPUnins * pt.Duration / 60
		case Loiter:
			row := ch.FlightAt(NewAtmosphere(pt.Altitude), pt.Speed)
			fuel = row.SHPUnins * row.BSFC / 60 * pt.Duration
		case IRP:
			fuel = ch.BSFC(100) * ch.RatedPower / 60 * pt.Duration
		case MCP:
			fuel = ch.BSFC(95) * 0.95 * ch.RatedPower / 60 * pt.Duration
			dist = mcpCruiseSpeed * pt.Duration / 60
		case Flight:
			row := ch.FlightAt(NewAtmosphere(pt.Altitude), pt.Speed)
			fuel = pt.Duration / row.SR
			dist = pt.Duration
		case Climb:
			spec := DefaultHoverSpec()
			spec.Vroc = pt.Speed
			perf, err := ch.HOGEWith(NewAtmosphere(pt.Altitude), spec)
			if err != nil {
				return legs, fmt.Errorf("point %d (%s): %w", i, pt.Maneuver, err)
			}
			fuel = perf.SFC * perf.SHPUnins * pt.Duration / 60
		case Unload:
			if err := ch.Unload(pt.Speed); err != nil {
				return legs, fmt.Errorf("point %d (%s): %w", i, pt.Maneuver, err)
			}
			fuel = ch.Idle() / 60 * pt.Duration
		default:
			return legs, fmt.Errorf("point %d: unknown maneuver kind %d", i, pt.Maneuver)
		}

		if err := ch.Burn(fuel); err != nil {
			return legs, fmt.Errorf("point %d (%s): %w", i, pt.Maneuver, err)
		}
		m.Range += dist
		legs = append(legs, MissionLeg{Point: pt, FuelUsed: fuel, FuelLeft: ch.FuelWeight, Distance: dist})
		ch.logger.Log("level", "info", "subsys", "mission", "maneuver", pt.Maneuver, "fuel(lb)", fmt.Sprintf("%.2f", fuel), "remaining(lb)", fmt.Sprintf("%.2f", ch.FuelWeight), "gw(lb)", fmt.Sprintf("%.2f", ch.GW()), "dist(nm)", fmt.Sprintf("%.1f", dist))
	}
	ch.logger.Log("level", "notice", "subsys", "mission", "status", "complete", "range(nm)", fmt.Sprintf("%.1f", m.Range), "fuel(lb)", fmt.Sprintf("%.2f", ch.FuelWeight))
	return legs, nil
}
