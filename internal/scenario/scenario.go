// Package scenario loads game setups from YAML: the terrain chart, the
// boat's starting position, and the status record behind the panels. A
// default scenario is embedded so the game runs with no files on disk.
// Scenarios are read-only — nothing is ever written back.
package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkessler/lone-uboat/internal/game"
	"github.com/mkessler/lone-uboat/internal/hexgrid"
)

//go:embed default.yaml
var defaultYAML []byte

// Scenario is a validated game setup.
type Scenario struct {
	Name  string
	Chart *game.Chart
	Boat  game.Boat
	State game.State
}

// file is the raw YAML form of a scenario.
type file struct {
	Name  string   `yaml:"name"`
	Chart []string `yaml:"chart"`
	Boat  struct {
		Row     int `yaml:"row"`
		Col     int `yaml:"col"`
		Heading int `yaml:"heading"`
	} `yaml:"boat"`
	Detection int               `yaml:"detection_level"`
	Hull      int               `yaml:"hull_damage"`
	Tubes     []game.Tube       `yaml:"torpedo_tubes"`
	Crew      []game.CrewMember `yaml:"crew"`
	Systems   []game.System     `yaml:"systems"`
}

// Default returns the embedded scenario.
func Default() (*Scenario, error) {
	sc, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded scenario: %w", err)
	}
	return sc, nil
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	chart, err := parseChart(f.Chart)
	if err != nil {
		return nil, err
	}

	if f.Boat.Heading < 0 || f.Boat.Heading > 5 {
		return nil, fmt.Errorf("boat heading %d out of range 0-5", f.Boat.Heading)
	}
	start := hexgrid.Offset{Row: f.Boat.Row, Col: f.Boat.Col}
	if t := chart.At(start); !t.Navigable() {
		return nil, fmt.Errorf("boat start %s is %s, not water", start, t)
	}

	if f.Detection < 0 || f.Detection >= len(game.DetectionLabels) {
		return nil, fmt.Errorf("detection level %d out of range", f.Detection)
	}
	if f.Hull < 0 || f.Hull >= len(game.HullLabels) {
		return nil, fmt.Errorf("hull damage %d out of range", f.Hull)
	}
	for _, tube := range f.Tubes {
		switch tube.Status {
		case game.TubeLoaded, game.TubeEmpty, game.TubeDamaged:
		default:
			return nil, fmt.Errorf("tube %s: unknown status %q", tube.Number, tube.Status)
		}
	}
	for _, sys := range f.Systems {
		switch sys.Status {
		case "OK", "damaged":
		default:
			return nil, fmt.Errorf("system %s: unknown status %q", sys.Name, sys.Status)
		}
	}

	return &Scenario{
		Name:  f.Name,
		Chart: chart,
		Boat: game.Boat{
			Pos:     start,
			Heading: hexgrid.Heading(f.Boat.Heading),
		},
		State: game.State{
			Detection: f.Detection,
			Hull:      f.Hull,
			Tubes:     f.Tubes,
			Crew:      f.Crew,
			Systems:   f.Systems,
		},
	}, nil
}

func parseChart(rows []string) (*game.Chart, error) {
	cells := make([][]game.Terrain, 0, len(rows))
	for i, row := range rows {
		line := make([]game.Terrain, 0, len(row))
		for j, ch := range row {
			if ch < '0' || ch > '3' {
				return nil, fmt.Errorf("chart row %d col %d: bad terrain digit %q", i, j, ch)
			}
			line = append(line, game.Terrain(ch-'0'))
		}
		cells = append(cells, line)
	}
	chart, err := game.NewChart(cells)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return chart, nil
}
