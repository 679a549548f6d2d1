package mec

import (
	"fmt"
	"strconv"

	"github.com/fea-tools/mecheck/internal/model"
)

// decodeGrav decodes a GRAV body load: sid, cid, acceleration
// magnitude, direction vector.
func decodeGrav(rec RawRecord) (*model.Load, error) {
	r := newReader(rec)
	g := &model.Gravity{
		CID:   r.OptInt(2, "cid", 0),
		Accel: r.Float(3, "a"),
		N: model.Vec{
			r.Float(4, "n1"),
			r.Float(5, "n2"),
			r.Float(6, "n3"),
		},
	}
	sid := r.ID(1, "sid")
	if err := r.Err(); err != nil {
		return nil, err
	}
	if g.N == (model.Vec{}) {
		return nil, fmt.Errorf("direction vector must be non-zero")
	}
	return &model.Load{Kind: model.LoadGravity, SID: sid, Owner: model.OwnerGlobal, Gravity: g}, nil
}

// decodePload4 decodes a PLOAD4 surface pressure: sid, target set,
// pressure, optional direction (all three components or none).
func decodePload4(rec RawRecord) (*model.Load, error) {
	r := newReader(rec)
	sid := r.ID(1, "sid")
	p := &model.Pressure{
		Target: model.NewRef(model.RefSet, canonID(r.String(2, "target"))),
		Value:  r.Float(3, "pressure"),
	}
	switch {
	case r.has(4) || r.has(5) || r.has(6):
		if !r.has(4) || !r.has(5) || !r.has(6) {
			return nil, fmt.Errorf("direction requires all of n1, n2, n3")
		}
		p.Dir = &model.Vec{
			r.Float(4, "n1"),
			r.Float(5, "n2"),
			r.Float(6, "n3"),
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if p.Dir != nil && *p.Dir == (model.Vec{}) {
		return nil, fmt.Errorf("direction vector must be non-zero")
	}
	return &model.Load{Kind: model.LoadPressure, SID: sid, Owner: model.OwnerGlobal, Pressure: p}, nil
}

// decodeLoadCombo decodes a LOAD combination: sid, overall scale, then
// factor/set-id pairs.
func decodeLoadCombo(rec RawRecord) (*model.LoadCombo, error) {
	r := newReader(rec)
	c := &model.LoadCombo{
		SID:   r.ID(1, "sid"),
		Scale: r.Float(2, "scale"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	pairs := r.rest(3)
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, fmt.Errorf("expected factor/set pairs after scale, got %d trailing fields", len(pairs))
	}
	for i := 0; i < len(pairs); i += 2 {
		factor, err := strconv.ParseFloat(pairs[i], 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (factor): expected number, got %q", i+3, pairs[i])
		}
		if pairs[i+1] == "" {
			return nil, fmt.Errorf("field %d (set) is required", i+4)
		}
		c.Terms = append(c.Terms, model.ComboTerm{
			Factor: factor,
			Load:   model.NewRef(model.RefLoadSet, canonID(pairs[i+1])),
		})
	}
	return c, nil
}
