package model

// PropKind tags the Property variant.
type PropKind string

const (
	PropShell PropKind = "shell"
	PropSolid PropKind = "solid"
	PropBeam  PropKind = "beam"
	PropTruss PropKind = "truss"
)

// ShellProp holds PSHELL geometry.
type ShellProp struct {
	Thickness float64 `yaml:"thickness"`
}

// SolidProp holds PSOLID settings.
type SolidProp struct {
	Integration string `yaml:"integration"`
}

// BeamProp holds PBEAM cross-section constants.
type BeamProp struct {
	Area float64 `yaml:"area"`
	I1   float64 `yaml:"i1"`
	I2   float64 `yaml:"i2"`
	J    float64 `yaml:"j"`
}

// TrussProp holds PTRUSS (embedded truss / rock bolt) constants.
type TrussProp struct {
	Area      float64 `yaml:"area"`
	Prestress float64 `yaml:"prestress"`
}

// Property is one element property record. Name comes from the
// exporter's $$ annotation block when present. Exactly the variant
// pointer matching Kind is set.
type Property struct {
	Kind     PropKind   `yaml:"kind"`
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name,omitempty"`
	Material Ref        `yaml:"material"`
	Shell    *ShellProp `yaml:"shell,omitempty"`
	Solid    *SolidProp `yaml:"solid,omitempty"`
	Beam     *BeamProp  `yaml:"beam,omitempty"`
	Truss    *TrussProp `yaml:"truss,omitempty"`
}
