package game

// Label tracks for the stepped status panels.
var (
	DetectionLabels = [4]string{"Silent", "Aware", "Traced", "Locked"}
	HullLabels      = [5]string{"OK", "DeepX", "MedX", "PeriX", "Dead"}
)

// TubeStatus is the load state of a torpedo tube.
type TubeStatus string

const (
	TubeLoaded  TubeStatus = "loaded"
	TubeEmpty   TubeStatus = "empty"
	TubeDamaged TubeStatus = "damaged"
)

// Tube is a single numbered torpedo tube.
type Tube struct {
	Number string     `yaml:"number"`
	Status TubeStatus `yaml:"status"`
}

// CrewMember is one crew role and its condition. Anything other than "OK"
// counts as lost.
type CrewMember struct {
	Role   string `yaml:"role"`
	Status string `yaml:"status"`
}

// OK reports whether the crew member is fit for duty.
func (m CrewMember) OK() bool { return m.Status == "OK" }

// System is one boat system and its condition.
type System struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

// Damaged reports whether the system is out of action.
func (s System) Damaged() bool { return s.Status != "OK" }

// State is the boat's status record as shown by the panels. It is display
// data: initialized from the scenario and never mutated afterwards — no rule
// in this prototype drives transitions.
type State struct {
	Detection int          `yaml:"detection_level"` // index into DetectionLabels
	Hull      int          `yaml:"hull_damage"`     // index into HullLabels
	Tubes     []Tube       `yaml:"torpedo_tubes"`
	Crew      []CrewMember `yaml:"crew"`
	Systems   []System     `yaml:"systems"`
}
