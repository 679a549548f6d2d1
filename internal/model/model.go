// Package model defines the typed, read-only data model a parsed MEC
// file is turned into. Everything here is built once by the parser and
// never mutated afterwards; callers that want a new Model parse again.
package model

import "github.com/fea-tools/mecheck/internal/diag"

// Info holds the MODEL record contents plus header metadata.
type Info struct {
	Title       string            `yaml:"title,omitempty"`
	Nodes       int               `yaml:"nodes"`
	Elements    int               `yaml:"elements"`
	Constraints int               `yaml:"constraints"`
	Extra       map[string]string `yaml:"extra,omitempty"`
}

// Param is one PARAM entry. Values are kept verbatim; the solver owns
// their interpretation.
type Param struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// NLParam is one NLPARM nonlinear-solution control set.
type NLParam struct {
	SID     string  `yaml:"sid"`
	NInc    int     `yaml:"ninc"`
	Method  string  `yaml:"method"`
	MaxIter int     `yaml:"max_iter"`
	Conv    int     `yaml:"conv"`
	EpsU    float64 `yaml:"eps_u"`
	EpsP    float64 `yaml:"eps_p"`
}

// SetDef is a named node/element set defined in the deck itself.
type SetDef struct {
	Name    string `yaml:"name"`
	Members []int  `yaml:"members"`
}

// Model is the root aggregate: one per parsed file.
//
// Properties, Materials, NLParams and Sets are keyed by id; Steps,
// Loads, LoadCombos and Constraints keep file order. Params keep
// insertion order for display fidelity.
type Model struct {
	Info        Info                 `yaml:"info"`
	Params      []Param              `yaml:"params,omitempty"`
	NLParams    map[string]*NLParam  `yaml:"nlparams,omitempty"`
	Steps       []*Step              `yaml:"steps,omitempty"`
	Loads       []*Load              `yaml:"loads,omitempty"`
	LoadCombos  []*LoadCombo         `yaml:"load_combos,omitempty"`
	Properties  map[string]*Property `yaml:"properties,omitempty"`
	Materials   map[string]*Material `yaml:"materials,omitempty"`
	Sets        map[string]*SetDef   `yaml:"sets,omitempty"`
	Constraints []*Constraint        `yaml:"constraints,omitempty"`
	Report      *diag.Report         `yaml:"report"`
}

// Param returns the value of a named PARAM entry.
func (m *Model) Param(name string) (string, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Step returns the analysis step with the given id, or nil.
func (m *Model) Step(id string) *Step {
	for _, s := range m.Steps {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Property returns the property with the given id, or nil.
func (m *Model) Property(id string) *Property {
	return m.Properties[id]
}

// Material returns the material with the given id, or nil.
func (m *Model) Material(id string) *Material {
	return m.Materials[id]
}
