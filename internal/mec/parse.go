package mec

import (
	"fmt"
	"strings"

	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

// Parse turns a complete MEC file into a Model plus its report. The
// whole parse is best-effort: individual bad records become decode
// errors in the report and the rest of the file still loads. The
// returned error is non-nil only for fatal input — empty text or text
// that yields no records at all — in which case there is no Model.
//
// The returned Model is owned by the caller and read-only; Parse keeps
// no state between calls, so independent callers may parse
// concurrently.
func Parse(text string) (*model.Model, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("mec: empty input")
	}

	rep := diag.NewReport()
	records := tokenize(text, rep)
	if len(records) == 0 {
		return nil, fmt.Errorf("mec: no records found")
	}

	m := &model.Model{
		NLParams:   make(map[string]*model.NLParam),
		Properties: make(map[string]*model.Property),
		Materials:  make(map[string]*model.Material),
		Sets:       make(map[string]*model.SetDef),
		Report:     rep,
	}
	var info *model.Info
	var frags []stepFrag

	for _, rec := range records {
		kw := rec.Keyword
		t := classify(kw)
		switch t {
		case targetUnknown:
			rep.CountUnparsed(kw)
			continue
		case targetTallyGrid:
			rep.Observed.Grids++
			continue
		case targetTallyElement:
			rep.Observed.Elements++
			continue
		}

		switch t {
		case targetModel:
			v, err := decodeModel(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if info != nil {
				rep.Decodef(kw, rec.Lines, "duplicate MODEL record; the file allows one")
				continue
			}
			info = v

		case targetTitle:
			v, err := decodeTitle(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if m.Info.Title != "" {
				rep.Warnf(diag.KindAggregation, "duplicate TITLE (%s); first record wins", rec.Lines)
				continue
			}
			m.Info.Title = v

		case targetParam:
			v, err := decodeParam(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			m.Params = append(m.Params, v)

		case targetNLParm:
			v, err := decodeNLParm(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if m.NLParams[v.SID] != nil {
				rep.Decodef(kw, rec.Lines, "duplicate set id %s", v.SID)
				continue
			}
			m.NLParams[v.SID] = v

		case targetSubcase, targetStgconf, targetGeoparm:
			var f stepFrag
			var err error
			switch t {
			case targetSubcase:
				f, err = decodeSubcase(rec)
			case targetStgconf:
				f, err = decodeStgconf(rec)
			default:
				f, err = decodeGeoparm(rec)
			}
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			frags = append(frags, f)

		case targetGrav, targetPload4:
			var v *model.Load
			var err error
			if t == targetGrav {
				v, err = decodeGrav(rec)
			} else {
				v, err = decodePload4(rec)
			}
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			m.Loads = append(m.Loads, v)

		case targetLoadCombo:
			v, err := decodeLoadCombo(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			m.LoadCombos = append(m.LoadCombos, v)

		case targetPShell, targetPSolid, targetPBeam, targetPTruss:
			var v *model.Property
			var err error
			switch t {
			case targetPShell:
				v, err = decodePshell(rec)
			case targetPSolid:
				v, err = decodePsolid(rec)
			case targetPBeam:
				v, err = decodePbeam(rec)
			default:
				v, err = decodePtruss(rec)
			}
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if m.Properties[v.ID] != nil {
				rep.Warnf(diag.KindAggregation, "duplicate property id %s (%s); later record wins", v.ID, rec.Lines)
			}
			m.Properties[v.ID] = v

		case targetMat1, targetMatDmn, targetMatMC:
			var v *model.Material
			var err error
			switch t {
			case targetMat1:
				v, err = decodeMat1(rec)
			case targetMatDmn:
				v, err = decodeMatDmn(rec)
			default:
				v, err = decodeMatMC(rec)
			}
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if m.Materials[v.ID] != nil {
				rep.Warnf(diag.KindAggregation, "duplicate material id %s (%s); later record wins", v.ID, rec.Lines)
			}
			m.Materials[v.ID] = v

		case targetSPC1, targetSPC:
			rep.Observed.Constraints++
			var v *model.Constraint
			var err error
			if t == targetSPC1 {
				v, err = decodeSPC1(rec)
			} else {
				v, err = decodeSPC(rec)
			}
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			m.Constraints = append(m.Constraints, v)

		case targetSet:
			v, err := decodeSet(rec)
			if err != nil {
				rep.Decodef(kw, rec.Lines, "%v", err)
				continue
			}
			if m.Sets[v.Name] != nil {
				rep.Warnf(diag.KindAggregation, "duplicate set %s (%s); later record wins", v.Name, rec.Lines)
			}
			m.Sets[v.Name] = v
		}
		rep.CountRecord(kw)
	}

	if info != nil {
		title := m.Info.Title
		m.Info = *info
		m.Info.Title = title
	}

	m.Steps = aggregateSteps(frags, rep)
	applyNames(m, text)
	assignOwners(m)
	checkCounts(m, info != nil)
	resolve(m)
	return m, nil
}

// applyNames attaches harvested $$ annotation names to their records
// and warns about annotations with no matching record.
func applyNames(m *model.Model, text string) {
	propNames, matNames := harvestNames(text)
	for _, id := range sortedKeys(propNames) {
		if p := m.Properties[id]; p != nil {
			p.Name = propNames[id]
		} else {
			m.Report.Warnf(diag.KindAnnotation, "annotation names property %s but no property record exists", id)
		}
	}
	for _, id := range sortedKeys(matNames) {
		if mat := m.Materials[id]; mat != nil {
			mat.Name = matNames[id]
		} else {
			m.Report.Warnf(diag.KindAnnotation, "annotation names material %s but no material record exists", id)
		}
	}
}

// assignOwners marks each load with the step whose LOAD selector picks
// its set, when exactly one step does; otherwise the load stays global.
func assignOwners(m *model.Model) {
	owners := make(map[string][]string)
	for _, st := range m.Steps {
		if st.Subcase != nil && st.Subcase.Load != nil {
			sid := st.Subcase.Load.ID
			owners[sid] = append(owners[sid], st.ID)
		}
	}
	for _, l := range m.Loads {
		if ids := owners[l.SID]; len(ids) == 1 {
			l.Owner = ids[0]
		}
	}
}

// checkCounts compares the MODEL record's declared counts with the
// tallied mesh lines. The cross-check needs both sides: a deck without
// a MODEL record declares nothing, and setup-only decks carry no GRID
// lines (the mesh lives in the companion file). A disagreement is
// worth flagging but never an error.
func checkCounts(m *model.Model, declared bool) {
	obs := m.Report.Observed
	if !declared || obs.Grids == 0 {
		return
	}
	if m.Info.Nodes != obs.Grids {
		m.Report.Warnf(diag.KindConsistency, "MODEL declares %d nodes but the file contains %d GRID records", m.Info.Nodes, obs.Grids)
	}
	if m.Info.Elements != obs.Elements {
		m.Report.Warnf(diag.KindConsistency, "MODEL declares %d elements but the file contains %d element records", m.Info.Elements, obs.Elements)
	}
	if m.Info.Constraints != obs.Constraints {
		m.Report.Warnf(diag.KindConsistency, "MODEL declares %d constraints but the file contains %d SPC records", m.Info.Constraints, obs.Constraints)
	}
}
