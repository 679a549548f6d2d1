package mec

import (
	"fmt"

	"github.com/fea-tools/mecheck/internal/model"
)

// newProperty reads the pid/mid fields common to every property family.
func newProperty(r *fieldReader, kind model.PropKind) *model.Property {
	return &model.Property{
		Kind:     kind,
		ID:       r.ID(1, "pid"),
		Material: model.NewRef(model.RefMaterial, r.ID(2, "mid")),
	}
}

// decodePshell decodes a PSHELL shell property.
func decodePshell(rec RawRecord) (*model.Property, error) {
	r := newReader(rec)
	p := newProperty(r, model.PropShell)
	p.Shell = &model.ShellProp{Thickness: r.Float(3, "t")}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if p.Shell.Thickness <= 0 {
		return nil, fmt.Errorf("field 3 (t): thickness must be positive, got %g", p.Shell.Thickness)
	}
	return p, nil
}

// decodePsolid decodes a PSOLID solid property.
func decodePsolid(rec RawRecord) (*model.Property, error) {
	r := newReader(rec)
	p := newProperty(r, model.PropSolid)
	p.Solid = &model.SolidProp{Integration: r.Enum(3, "integ", "FULL", "FULL", "REDUCED")}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// decodePbeam decodes a PBEAM beam property.
func decodePbeam(rec RawRecord) (*model.Property, error) {
	r := newReader(rec)
	p := newProperty(r, model.PropBeam)
	p.Beam = &model.BeamProp{
		Area: r.Float(3, "a"),
		I1:   r.Float(4, "i1"),
		I2:   r.Float(5, "i2"),
		J:    r.OptFloat(6, "j", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	b := p.Beam
	if b.Area <= 0 {
		return nil, fmt.Errorf("field 3 (a): area must be positive, got %g", b.Area)
	}
	if b.I1 < 0 || b.I2 < 0 || b.J < 0 {
		return nil, fmt.Errorf("section constants must be non-negative")
	}
	return p, nil
}

// decodePtruss decodes a PTRUSS embedded-truss property.
func decodePtruss(rec RawRecord) (*model.Property, error) {
	r := newReader(rec)
	p := newProperty(r, model.PropTruss)
	p.Truss = &model.TrussProp{
		Area:      r.Float(3, "a"),
		Prestress: r.OptFloat(4, "prestress", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if p.Truss.Area <= 0 {
		return nil, fmt.Errorf("field 3 (a): area must be positive, got %g", p.Truss.Area)
	}
	return p, nil
}
