package model

// MatKind tags the Material variant.
type MatKind string

const (
	MatElastic     MatKind = "elastic"
	MatDmin        MatKind = "dmin"
	MatMohrCoulomb MatKind = "mohr-coulomb"
)

// ElasticMat holds MAT1 linear-elastic constants.
type ElasticMat struct {
	E   float64 `yaml:"e"`
	Nu  float64 `yaml:"nu"`
	Rho float64 `yaml:"rho"`
}

// DminMat holds MATDMN constants for the D-min non-linear rock model:
// initial and critical moduli and Poisson ratios plus strength limits.
type DminMat struct {
	E0   float64 `yaml:"e0"`
	ECr  float64 `yaml:"e_cr"`
	Nu0  float64 `yaml:"nu0"`
	NuCr float64 `yaml:"nu_cr"`
	TauF float64 `yaml:"tau_f,omitempty"`
	SigT float64 `yaml:"sig_t,omitempty"`
	Phi  float64 `yaml:"phi,omitempty"`
}

// MohrCoulombMat holds MATMC elasto-plastic constants.
type MohrCoulombMat struct {
	E        float64 `yaml:"e"`
	Nu       float64 `yaml:"nu"`
	Cohesion float64 `yaml:"cohesion"`
	Phi      float64 `yaml:"phi"`
	Rho      float64 `yaml:"rho"`
}

// Material is one material record. Exactly the variant pointer
// matching Kind is set.
type Material struct {
	Kind        MatKind         `yaml:"kind"`
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name,omitempty"`
	Elastic     *ElasticMat     `yaml:"elastic,omitempty"`
	Dmin        *DminMat        `yaml:"dmin,omitempty"`
	MohrCoulomb *MohrCoulombMat `yaml:"mohr_coulomb,omitempty"`
}
