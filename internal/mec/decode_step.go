package mec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

// fragFamily names the three record families that merge into a step.
const (
	famSubcase = "SUBCASE"
	famStgconf = "STGCONF"
	famGeoparm = "GEOPARM"
)

// stepFrag is one decoded SUBCASE/STGCONF/GEOPARM record before
// aggregation. Exactly one of the fragment pointers is set.
type stepFrag struct {
	sid    string
	family string
	lines  diag.LineRange
	sub    *model.SubcaseFrag
	stg    *model.StageFrag
	geo    *model.GeoFrag
}

// decodeSubcase decodes a SUBCASE block: the step id followed by
// case-control directives in any order. Directives not in the known
// set are an error; an unknown SUBCASE directive means the record was
// mis-split, not a forward extension.
func decodeSubcase(rec RawRecord) (stepFrag, error) {
	r := newReader(rec)
	sid := canonID(r.String(1, "sid"))
	if err := r.Err(); err != nil {
		return stepFrag{}, err
	}

	sub := &model.SubcaseFrag{}
	fields := rec.Fields[1:]
	for i := 0; i < len(fields); i++ {
		dir := strings.ToUpper(fields[i])
		if dir == "" {
			continue
		}
		if i+1 >= len(fields) || fields[i+1] == "" {
			return stepFrag{}, fmt.Errorf("directive %s: missing value", dir)
		}
		val := fields[i+1]
		i++
		switch dir {
		case "SOL":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return stepFrag{}, fmt.Errorf("directive SOL: expected positive integer, got %q", val)
			}
			sub.Sol = n
		case "LABEL":
			sub.Label = val
		case "LOAD":
			ref := model.NewRef(model.RefLoadSet, canonID(val))
			sub.Load = &ref
		case "SPC":
			ref := model.NewRef(model.RefSPCSet, canonID(val))
			sub.SPC = &ref
		case "NLPARM":
			ref := model.NewRef(model.RefNLParm, canonID(val))
			sub.NLParm = &ref
		case "USE(STAGE)":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return stepFrag{}, fmt.Errorf("directive USE(STAGE): expected positive integer, got %q", val)
			}
			sub.UseStage = n
		default:
			return stepFrag{}, fmt.Errorf("unknown directive %q", fields[i-1])
		}
	}
	return stepFrag{sid: sid, family: famSubcase, lines: rec.Lines, sub: sub}, nil
}

// decodeStgconf decodes one STGCONF staged-construction record.
func decodeStgconf(rec RawRecord) (stepFrag, error) {
	r := newReader(rec)
	stg := &model.StageFrag{
		Stage:    r.Int(2, "stage"),
		LoadStep: r.OptFloat(3, "lodstep", 1.0),
		Active:   r.Enum(5, "active", "YES", "YES", "NO") == "YES",
	}
	sid := canonID(r.String(1, "sid"))
	if r.has(4) {
		ref := model.NewRef(model.RefNLParm, r.ID(4, "nlparm"))
		stg.NLParm = &ref
	}
	if err := r.Err(); err != nil {
		return stepFrag{}, err
	}
	if stg.Stage < 0 {
		return stepFrag{}, fmt.Errorf("field 2 (stage): must be non-negative, got %d", stg.Stage)
	}
	if stg.LoadStep <= 0 {
		return stepFrag{}, fmt.Errorf("field 3 (lodstep): must be positive, got %g", stg.LoadStep)
	}
	return stepFrag{sid: sid, family: famStgconf, lines: rec.Lines, stg: stg}, nil
}

// decodeGeoparm decodes one GEOPARM geometric-setting record.
func decodeGeoparm(rec RawRecord) (stepFrag, error) {
	r := newReader(rec)
	sid := canonID(r.String(1, "sid"))
	lgdisp := r.OptInt(2, "lgdisp", 0)
	geo := &model.GeoFrag{
		StressInit: r.Enum(3, "stressinit", "NONE", "NONE", "K0", "FIELD"),
		K0:         r.OptFloat(4, "k0", 0),
	}
	if err := r.Err(); err != nil {
		return stepFrag{}, err
	}
	if lgdisp != 0 && lgdisp != 1 {
		return stepFrag{}, fmt.Errorf("field 2 (lgdisp): must be 0 or 1, got %d", lgdisp)
	}
	geo.LargeDisp = lgdisp == 1
	if geo.StressInit == "K0" && !r.has(4) {
		return stepFrag{}, fmt.Errorf("field 4 (k0) is required when stressinit is K0")
	}
	return stepFrag{sid: sid, family: famGeoparm, lines: rec.Lines, geo: geo}, nil
}
