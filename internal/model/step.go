package model

// SubcaseFrag is the SUBCASE contribution to an analysis step: the
// case-control directives selecting solution, loads and constraints.
// Sol and UseStage are 0 when the directive was absent.
type SubcaseFrag struct {
	Sol      int    `yaml:"sol,omitempty"`
	Label    string `yaml:"label,omitempty"`
	Load     *Ref   `yaml:"load,omitempty"`
	SPC      *Ref   `yaml:"spc,omitempty"`
	NLParm   *Ref   `yaml:"nlparm,omitempty"`
	UseStage int    `yaml:"use_stage,omitempty"`
}

// StageFrag is the STGCONF contribution: staged-construction
// sequencing for the step.
type StageFrag struct {
	Stage    int     `yaml:"stage"`
	LoadStep float64 `yaml:"load_step"`
	NLParm   *Ref    `yaml:"nlparm,omitempty"`
	Active   bool    `yaml:"active"`
}

// GeoFrag is the GEOPARM contribution: geometric nonlinearity and
// initial-stress settings for the step.
type GeoFrag struct {
	LargeDisp  bool    `yaml:"large_disp"`
	StressInit string  `yaml:"stress_init"`
	K0         float64 `yaml:"k0,omitempty"`
}

// Step is one analysis step, unified from the SUBCASE, STGCONF and
// GEOPARM fragments sharing its id. At least one fragment is always
// present; a step never materializes otherwise.
//
// NLParm is the effective nonlinear-control selector: when both the
// SUBCASE and STGCONF fragments carry one, the later record in file
// order wins (with an aggregation warning).
type Step struct {
	ID      string       `yaml:"id"`
	Subcase *SubcaseFrag `yaml:"subcase,omitempty"`
	Stage   *StageFrag   `yaml:"stage,omitempty"`
	Geo     *GeoFrag     `yaml:"geo,omitempty"`
	NLParm  *Ref         `yaml:"nlparm,omitempty"`
}

// Label returns the step's display label: the SUBCASE label when set,
// else the id.
func (s *Step) Label() string {
	if s.Subcase != nil && s.Subcase.Label != "" {
		return s.Subcase.Label
	}
	return s.ID
}
