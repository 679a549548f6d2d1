package mec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fea-tools/mecheck/internal/model"
)

// checkDOFs validates an SPC component string: unique digits 1-6.
func checkDOFs(s string) error {
	if s == "" {
		return fmt.Errorf("dof string is empty")
	}
	seen := [7]bool{}
	for _, c := range s {
		if c < '1' || c > '6' {
			return fmt.Errorf("dof string %q: %q is not a degree of freedom (1-6)", s, string(c))
		}
		if seen[c-'0'] {
			return fmt.Errorf("dof string %q: duplicate degree of freedom %q", s, string(c))
		}
		seen[c-'0'] = true
	}
	return nil
}

// decodeSPC1 decodes an SPC1 fixity: sid, dofs, then one or more
// targets (node ids or named mesh regions). Prescribed value is zero.
func decodeSPC1(rec RawRecord) (*model.Constraint, error) {
	r := newReader(rec)
	c := &model.Constraint{
		SID:  r.ID(1, "sid"),
		DOFs: r.String(2, "dofs"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := checkDOFs(c.DOFs); err != nil {
		return nil, err
	}
	targets := r.rest(3)
	if len(targets) == 0 {
		return nil, fmt.Errorf("at least one target is required")
	}
	for i, t := range targets {
		if t == "" {
			return nil, fmt.Errorf("field %d (target) is blank", i+3)
		}
		c.Targets = append(c.Targets, model.NewRef(model.RefSet, canonID(t)))
	}
	return c, nil
}

// decodeSPC decodes an SPC with a prescribed value: sid, target, dofs,
// optional displacement (default zero).
func decodeSPC(rec RawRecord) (*model.Constraint, error) {
	r := newReader(rec)
	c := &model.Constraint{
		SID:   r.ID(1, "sid"),
		DOFs:  r.String(3, "dofs"),
		Value: r.OptFloat(4, "value", 0),
	}
	target := r.String(2, "target")
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := checkDOFs(c.DOFs); err != nil {
		return nil, err
	}
	c.Targets = []model.Ref{model.NewRef(model.RefSet, canonID(target))}
	return c, nil
}

// decodeSet decodes a SET definition: a name and its member ids, with
// THRU expanding inclusive ranges ("1, THRU, 5").
func decodeSet(rec RawRecord) (*model.SetDef, error) {
	r := newReader(rec)
	s := &model.SetDef{Name: r.String(1, "name")}
	if err := r.Err(); err != nil {
		return nil, err
	}
	members := r.rest(2)
	if len(members) == 0 {
		return nil, fmt.Errorf("at least one member is required")
	}
	for i := 0; i < len(members); i++ {
		f := members[i]
		pos := i + 2
		if strings.EqualFold(f, "THRU") {
			if len(s.Members) == 0 || i+1 >= len(members) {
				return nil, fmt.Errorf("field %d: THRU needs a member before and after", pos)
			}
			lo := s.Members[len(s.Members)-1]
			hi, err := strconv.Atoi(members[i+1])
			if err != nil || hi <= lo {
				return nil, fmt.Errorf("field %d: THRU upper bound must be an integer above %d, got %q", pos+1, lo, members[i+1])
			}
			for v := lo + 1; v <= hi; v++ {
				s.Members = append(s.Members, v)
			}
			i++
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("field %d (member): expected positive integer, got %q", pos, f)
		}
		s.Members = append(s.Members, n)
	}
	return s, nil
}
