package model

// Constraint is one single-point constraint (SPC/SPC1): degrees of
// freedom fixed or prescribed on one or more targets. DOFs is the
// digit string as written, e.g. "123". Value defaults to zero
// (a fixity); SPC records may prescribe a non-zero displacement.
type Constraint struct {
	SID     string  `yaml:"sid"`
	DOFs    string  `yaml:"dofs"`
	Targets []Ref   `yaml:"targets"`
	Value   float64 `yaml:"value"`
}
