package mec

import (
	"fmt"

	"github.com/fea-tools/mecheck/internal/model"
)

func checkPoisson(name string, nu float64) error {
	if nu <= -1 || nu >= 0.5 {
		return fmt.Errorf("%s: Poisson ratio must be in (-1, 0.5), got %g", name, nu)
	}
	return nil
}

// decodeMat1 decodes a MAT1 linear-elastic material. Field 3 (shear
// modulus) is accepted and ignored; the solver derives it.
func decodeMat1(rec RawRecord) (*model.Material, error) {
	r := newReader(rec)
	m := &model.Material{Kind: model.MatElastic, ID: r.ID(1, "mid")}
	m.Elastic = &model.ElasticMat{
		E:   r.Float(2, "e"),
		Nu:  r.Float(4, "nu"),
		Rho: r.OptFloat(5, "rho", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	e := m.Elastic
	if e.E <= 0 {
		return nil, fmt.Errorf("field 2 (e): modulus must be positive, got %g", e.E)
	}
	if err := checkPoisson("field 4 (nu)", e.Nu); err != nil {
		return nil, err
	}
	if e.Rho < 0 {
		return nil, fmt.Errorf("field 5 (rho): density must be non-negative, got %g", e.Rho)
	}
	return m, nil
}

// decodeMatDmn decodes a MATDMN D-min material.
func decodeMatDmn(rec RawRecord) (*model.Material, error) {
	r := newReader(rec)
	m := &model.Material{Kind: model.MatDmin, ID: r.ID(1, "mid")}
	m.Dmin = &model.DminMat{
		E0:   r.Float(2, "e0"),
		ECr:  r.Float(3, "ecr"),
		Nu0:  r.Float(4, "nu0"),
		NuCr: r.Float(5, "nucr"),
		TauF: r.OptFloat(6, "tauf", 0),
		SigT: r.OptFloat(7, "sigt", 0),
		Phi:  r.OptFloat(8, "phi", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	d := m.Dmin
	if d.E0 <= 0 || d.ECr <= 0 {
		return nil, fmt.Errorf("moduli must be positive")
	}
	if err := checkPoisson("field 4 (nu0)", d.Nu0); err != nil {
		return nil, err
	}
	if err := checkPoisson("field 5 (nucr)", d.NuCr); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeMatMC decodes a MATMC Mohr-Coulomb material.
func decodeMatMC(rec RawRecord) (*model.Material, error) {
	r := newReader(rec)
	m := &model.Material{Kind: model.MatMohrCoulomb, ID: r.ID(1, "mid")}
	m.MohrCoulomb = &model.MohrCoulombMat{
		E:        r.Float(2, "e"),
		Nu:       r.Float(3, "nu"),
		Cohesion: r.Float(4, "c"),
		Phi:      r.Float(5, "phi"),
		Rho:      r.OptFloat(6, "rho", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	mc := m.MohrCoulomb
	if mc.E <= 0 {
		return nil, fmt.Errorf("field 2 (e): modulus must be positive, got %g", mc.E)
	}
	if err := checkPoisson("field 3 (nu)", mc.Nu); err != nil {
		return nil, err
	}
	if mc.Cohesion < 0 {
		return nil, fmt.Errorf("field 4 (c): cohesion must be non-negative, got %g", mc.Cohesion)
	}
	if mc.Phi < 0 || mc.Phi >= 90 {
		return nil, fmt.Errorf("field 5 (phi): friction angle must be in [0, 90), got %g", mc.Phi)
	}
	return m, nil
}
