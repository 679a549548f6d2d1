package mec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fea-tools/mecheck/internal/model"
)

// decodeModel decodes the MODEL header record. Fields are keyed
// (NODES=100); NODES, ELEMENTS and CONSTRAINTS are required, anything
// else is retained as free-form header metadata.
func decodeModel(rec RawRecord) (*model.Info, error) {
	info := &model.Info{}
	have := map[string]bool{}
	for i, f := range rec.Fields {
		if f == "" {
			continue
		}
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("field %d: expected KEY=VALUE, got %q", i+1, f)
		}
		k = strings.ToUpper(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		switch k {
		case "NODES", "ELEMENTS", "CONSTRAINTS":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("field %d (%s): expected non-negative integer, got %q", i+1, strings.ToLower(k), v)
			}
			switch k {
			case "NODES":
				info.Nodes = n
			case "ELEMENTS":
				info.Elements = n
			case "CONSTRAINTS":
				info.Constraints = n
			}
			have[k] = true
		default:
			if info.Extra == nil {
				info.Extra = make(map[string]string)
			}
			info.Extra[k] = v
		}
	}
	for _, k := range []string{"NODES", "ELEMENTS", "CONSTRAINTS"} {
		if !have[k] {
			return nil, fmt.Errorf("%s is required", k)
		}
	}
	return info, nil
}

// decodeTitle returns the analysis title text.
func decodeTitle(rec RawRecord) (string, error) {
	var parts []string
	for _, f := range rec.Fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("title text is required")
	}
	return strings.Join(parts, ", "), nil
}

// decodeParam decodes one PARAM entry. The value is kept verbatim.
func decodeParam(rec RawRecord) (model.Param, error) {
	r := newReader(rec)
	p := model.Param{
		Name:  strings.ToUpper(r.String(1, "name")),
		Value: r.String(2, "value"),
	}
	return p, r.Err()
}

// decodeNLParm decodes one NLPARM nonlinear-control set. Field 3 (dt)
// is accepted and ignored, as in the solver.
func decodeNLParm(rec RawRecord) (*model.NLParam, error) {
	r := newReader(rec)
	p := &model.NLParam{
		SID:     r.ID(1, "sid"),
		NInc:    r.Int(2, "ninc"),
		Method:  r.Enum(4, "method", "AUTO", "AUTO", "SEMI", "ITER"),
		MaxIter: r.OptInt(5, "maxiter", 25),
		Conv:    r.OptInt(6, "conv", 2),
		EpsU:    r.OptFloat(7, "epsu", 1e-2),
		EpsP:    r.OptFloat(8, "epsp", 1e-3),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if p.NInc <= 0 {
		return nil, fmt.Errorf("field 2 (ninc): must be positive, got %d", p.NInc)
	}
	if p.MaxIter <= 0 {
		return nil, fmt.Errorf("field 5 (maxiter): must be positive, got %d", p.MaxIter)
	}
	if p.EpsU <= 0 || p.EpsP <= 0 {
		return nil, fmt.Errorf("convergence tolerances must be positive")
	}
	return p, nil
}
