package model

// RefKind names the id namespace a reference points into.
type RefKind string

const (
	RefMaterial RefKind = "material"
	RefLoadSet  RefKind = "load-set"
	RefSPCSet   RefKind = "spc-set"
	RefNLParm   RefKind = "nlparm"
	RefSet      RefKind = "set"
)

// RefStatus is the outcome of reference resolution.
type RefStatus string

const (
	// RefUnresolved is the state before the resolver has run.
	RefUnresolved RefStatus = "unresolved"
	// RefResolved means the target record exists in the file.
	RefResolved RefStatus = "resolved"
	// RefExternal marks a named mesh region that the deck does not
	// define itself; the companion mesh file owns it. Not a warning.
	RefExternal RefStatus = "external"
	// RefDangling means the target must exist in the file and does not.
	RefDangling RefStatus = "dangling"
)

// Ref is a typed identifier reference into one of the Model's owning
// maps. Forward references are legal in the source format, so refs are
// resolved in a pass after all records are decoded.
type Ref struct {
	Kind   RefKind   `yaml:"kind"`
	ID     string    `yaml:"id"`
	Status RefStatus `yaml:"status"`
}

// NewRef returns an unresolved reference.
func NewRef(kind RefKind, id string) Ref {
	return Ref{Kind: kind, ID: id, Status: RefUnresolved}
}

// Resolved reports whether the reference points at something usable
// (an in-file record or an external mesh region).
func (r Ref) Resolved() bool {
	return r.Status == RefResolved || r.Status == RefExternal
}
