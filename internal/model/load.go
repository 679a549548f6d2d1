package model

// LoadKind tags the Load variant. Consumers switch on it; the variant
// pointer matching the kind is the only one set.
type LoadKind string

const (
	LoadGravity  LoadKind = "gravity"
	LoadPressure LoadKind = "pressure"
)

// OwnerGlobal is the owner id of a load no single step selects.
const OwnerGlobal = "global"

// Vec is a direction vector as written in the record, not normalized.
type Vec [3]float64

// Gravity is a GRAV body load: acceleration magnitude along a
// direction vector.
type Gravity struct {
	CID   int     `yaml:"cid"`
	Accel float64 `yaml:"accel"`
	N     Vec     `yaml:"n,flow"`
}

// Pressure is a PLOAD4 surface load on a target element set or face.
// Dir is nil when the record relies on the face normal.
type Pressure struct {
	Target Ref     `yaml:"target"`
	Value  float64 `yaml:"value"`
	Dir    *Vec    `yaml:"dir,omitempty,flow"`
}

// Load is one load record. Owner is the id of the step whose LOAD
// selector picks this load's set, or OwnerGlobal.
type Load struct {
	Kind     LoadKind  `yaml:"kind"`
	SID      string    `yaml:"sid"`
	Owner    string    `yaml:"owner"`
	Gravity  *Gravity  `yaml:"gravity,omitempty"`
	Pressure *Pressure `yaml:"pressure,omitempty"`
}

// ComboTerm is one scaled member of a load combination.
type ComboTerm struct {
	Factor float64 `yaml:"factor"`
	Load   Ref     `yaml:"load"`
}

// LoadCombo is a LOAD combination record: an overall scale applied to
// a list of factored load sets.
type LoadCombo struct {
	SID   string      `yaml:"sid"`
	Scale float64     `yaml:"scale"`
	Terms []ComboTerm `yaml:"terms"`
}
